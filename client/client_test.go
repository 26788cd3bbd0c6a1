package client

// Exercises the client against the real handlers.

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkrizic/nbmem/service"
	"github.com/dkrizic/nbmem/service/registry/inmemory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Client {
	t.Helper()
	s, err := service.NewServer(":0", inmemory.NewRegistry())
	require.NoError(t, err)
	mux := http.NewServeMux()
	s.RegisterHandlers(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return New(ts.URL)
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestService(t)

	content := json.RawMessage(`{"cells":[]}`)
	saved, err := c.Save(ctx, "a.ipynb", content)
	require.NoError(t, err)
	assert.Equal(t, "a.ipynb", saved.Name)

	got, err := c.Get(ctx, "a.ipynb")
	require.NoError(t, err)
	assert.JSONEq(t, string(content), string(got.Content))

	listing, err := c.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, listing.Content, 1)
	assert.Equal(t, "a.ipynb", listing.Content[0].Name)

	err = c.Delete(ctx, "a.ipynb")
	require.NoError(t, err)

	_, err = c.Get(ctx, "a.ipynb")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientCreateAndRename(t *testing.T) {
	ctx := context.Background()
	c := newTestService(t)

	created, err := c.Create(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Untitled0.ipynb", created.Name)

	renamed, err := c.Rename(ctx, "Untitled0.ipynb", "work/notes.ipynb")
	require.NoError(t, err)
	assert.Equal(t, "notes.ipynb", renamed.Name)
	assert.Equal(t, "work", renamed.Path)

	_, err = c.Get(ctx, "Untitled0.ipynb")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientVersion(t *testing.T) {
	ctx := context.Background()
	c := newTestService(t)

	version, err := c.Version(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, version.Service)
	assert.NotEmpty(t, version.Version)
}

func TestClientNotFound(t *testing.T) {
	ctx := context.Background()
	c := newTestService(t)

	err := c.Delete(ctx, "missing.ipynb")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Rename(ctx, "missing.ipynb", "other.ipynb")
	assert.ErrorIs(t, err, ErrNotFound)
}
