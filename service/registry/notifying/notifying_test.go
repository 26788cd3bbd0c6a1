package notifying

import (
	"context"
	"testing"

	"github.com/dkrizic/nbmem/notifier"
	"github.com/dkrizic/nbmem/service/registry"
	"github.com/dkrizic/nbmem/service/registry/inmemory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var _ registry.Registry = (*NotifyingRegistry)(nil)

// MockNotifier is a mock for notifier.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n notifier.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func action(t notifier.ActionType) interface{} {
	return mock.MatchedBy(func(n notifier.Notification) bool {
		return n.Action.Type == t
	})
}

func TestNotifyOnSave(t *testing.T) {
	ctx := context.Background()
	n := &MockNotifier{}
	n.On("Notify", mock.Anything, action(notifier.ActionUpdate)).Return(nil)
	r := NewNotifyingRegistry(inmemory.NewRegistry(), n)

	err := r.Save(ctx, registry.Notebook{Name: "a.ipynb", Content: []byte(`{}`)})
	require.NoError(t, err)

	n.AssertExpectations(t)
}

func TestNotifyOnCreate(t *testing.T) {
	ctx := context.Background()
	n := &MockNotifier{}
	n.On("Notify", mock.Anything, action(notifier.ActionCreate)).Return(nil)
	r := NewNotifyingRegistry(inmemory.NewRegistry(), n)

	nb, err := r.Create(ctx, "", "Untitled")
	require.NoError(t, err)
	assert.Equal(t, "Untitled0.ipynb", nb.Name)

	n.AssertExpectations(t)
}

func TestNotifyOnRenameAndDelete(t *testing.T) {
	ctx := context.Background()
	n := &MockNotifier{}
	n.On("Notify", mock.Anything, action(notifier.ActionUpdate)).Return(nil)
	n.On("Notify", mock.Anything, action(notifier.ActionRename)).Return(nil)
	n.On("Notify", mock.Anything, action(notifier.ActionDelete)).Return(nil)
	r := NewNotifyingRegistry(inmemory.NewRegistry(), n)

	err := r.Save(ctx, registry.Notebook{Name: "a.ipynb", Content: []byte(`{}`)})
	require.NoError(t, err)
	err = r.Rename(ctx, "", "a.ipynb", "", "b.ipynb")
	require.NoError(t, err)
	err = r.Delete(ctx, "", "b.ipynb")
	require.NoError(t, err)

	n.AssertExpectations(t)
}

func TestNoNotifyOnReads(t *testing.T) {
	ctx := context.Background()
	n := &MockNotifier{}
	r := NewNotifyingRegistry(inmemory.NewRegistry(), n)

	_, err := r.List(ctx, "")
	require.NoError(t, err)
	_, err = r.Get(ctx, "", "a.ipynb")
	assert.ErrorIs(t, err, registry.ErrNotFound)
	_, err = r.Count(ctx)
	require.NoError(t, err)
	err = r.Seed(ctx, registry.Notebook{Name: "a.ipynb", Content: []byte(`{}`)})
	require.NoError(t, err)

	n.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestNoNotifyOnFailedDelete(t *testing.T) {
	ctx := context.Background()
	n := &MockNotifier{}
	r := NewNotifyingRegistry(inmemory.NewRegistry(), n)

	err := r.Delete(ctx, "", "missing.ipynb")
	assert.ErrorIs(t, err, registry.ErrNotFound)

	n.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}
