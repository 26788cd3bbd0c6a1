package inmemory

// Test in-memory registry implementation

import (
	"context"
	"testing"

	"github.com/dkrizic/nbmem/service/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ registry.Registry = (*Registry)(nil)

func TestRegistryRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	content := []byte(`{"cells":[{"cell_type":"code","source":"1+1"}]}`)
	err := r.Save(ctx, registry.Notebook{Name: "a.ipynb", Content: content})
	require.NoError(t, err)

	nb, err := r.Get(ctx, "", "a.ipynb")
	require.NoError(t, err)
	assert.Equal(t, content, nb.Content)
	assert.Equal(t, "a.ipynb", nb.Name)
	assert.False(t, nb.Created.IsZero())
	assert.False(t, nb.LastModified.IsZero())

	// Overwriting replaces the content in place and keeps the creation date
	created := nb.Created
	err = r.Save(ctx, registry.Notebook{Name: "a.ipynb", Content: []byte(`{"cells":[]}`)})
	require.NoError(t, err)

	nb, err = r.Get(ctx, "", "a.ipynb")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"cells":[]}`), nb.Content)
	assert.Equal(t, created, nb.Created)

	count, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegistryNotFound(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	_, err := r.Get(ctx, "", "missing.ipynb")
	assert.ErrorIs(t, err, registry.ErrNotFound)

	err = r.Delete(ctx, "", "missing.ipynb")
	assert.ErrorIs(t, err, registry.ErrNotFound)

	err = r.Rename(ctx, "", "missing.ipynb", "", "other.ipynb")
	assert.ErrorIs(t, err, registry.ErrNotFound)

	// Even when source and target are the same name
	err = r.Rename(ctx, "", "missing.ipynb", "", "missing.ipynb")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestRegistryDelete(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	err := r.Save(ctx, registry.Notebook{Name: "a.ipynb", Content: []byte(`{}`)})
	require.NoError(t, err)

	err = r.Delete(ctx, "", "a.ipynb")
	require.NoError(t, err)

	_, err = r.Get(ctx, "", "a.ipynb")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestRegistryList(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	for _, name := range []string{"c.ipynb", "a.ipynb", "b.ipynb"} {
		err := r.Save(ctx, registry.Notebook{Name: name, Content: []byte(`{}`)})
		require.NoError(t, err)
	}
	err := r.Save(ctx, registry.Notebook{Path: "work", Name: "d.ipynb", Content: []byte(`{}`)})
	require.NoError(t, err)

	notebooks, err := r.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, notebooks, 3)
	assert.Equal(t, "a.ipynb", notebooks[0].Name)
	assert.Equal(t, "b.ipynb", notebooks[1].Name)
	assert.Equal(t, "c.ipynb", notebooks[2].Name)
	for _, nb := range notebooks {
		assert.Nil(t, nb.Content)
	}

	notebooks, err = r.List(ctx, "work")
	require.NoError(t, err)
	assert.Len(t, notebooks, 1)

	// Unknown directories list empty
	notebooks, err = r.List(ctx, "nowhere")
	require.NoError(t, err)
	assert.Empty(t, notebooks)
}

func TestRegistrySeed(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	err := r.Seed(ctx, registry.Notebook{Name: "a.ipynb", Content: []byte(`{"v":1}`)})
	require.NoError(t, err)

	// Seeding an existing name must not overwrite
	err = r.Seed(ctx, registry.Notebook{Name: "a.ipynb", Content: []byte(`{"v":2}`)})
	require.NoError(t, err)

	nb, err := r.Get(ctx, "", "a.ipynb")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), nb.Content)
}

func TestRegistryCreate(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	nb, err := r.Create(ctx, "", "Untitled")
	require.NoError(t, err)
	assert.Equal(t, "Untitled0.ipynb", nb.Name)
	assert.NotEmpty(t, nb.Content)

	nb, err = r.Create(ctx, "", "Untitled")
	require.NoError(t, err)
	assert.Equal(t, "Untitled1.ipynb", nb.Name)

	// Freed names are reused
	err = r.Delete(ctx, "", "Untitled0.ipynb")
	require.NoError(t, err)

	nb, err = r.Create(ctx, "", "Untitled")
	require.NoError(t, err)
	assert.Equal(t, "Untitled0.ipynb", nb.Name)

	// Creating in a fresh directory starts from zero
	nb, err = r.Create(ctx, "work", "Untitled")
	require.NoError(t, err)
	assert.Equal(t, "Untitled0.ipynb", nb.Name)
	assert.Equal(t, "work", nb.Path)
}

func TestRegistryRename(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	content := []byte(`{"cells":[]}`)
	err := r.Save(ctx, registry.Notebook{Path: "work", Name: "a.ipynb", Content: content})
	require.NoError(t, err)

	err = r.Rename(ctx, "work", "a.ipynb", "", "b.ipynb")
	require.NoError(t, err)

	_, err = r.Get(ctx, "work", "a.ipynb")
	assert.ErrorIs(t, err, registry.ErrNotFound)

	nb, err := r.Get(ctx, "", "b.ipynb")
	require.NoError(t, err)
	assert.Equal(t, content, nb.Content)

	// The emptied directory is pruned
	notebooks, err := r.List(ctx, "work")
	require.NoError(t, err)
	assert.Empty(t, notebooks)

	// Renaming to the same location is a no-op
	err = r.Rename(ctx, "", "b.ipynb", "", "b.ipynb")
	require.NoError(t, err)

	_, err = r.Get(ctx, "", "b.ipynb")
	assert.NoError(t, err)
}

func TestRegistryCount(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	count, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	err = r.Save(ctx, registry.Notebook{Name: "a.ipynb", Content: []byte(`{}`)})
	require.NoError(t, err)
	err = r.Save(ctx, registry.Notebook{Path: "work", Name: "b.ipynb", Content: []byte(`{}`)})
	require.NoError(t, err)

	count, err = r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
