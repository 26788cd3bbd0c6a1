package registry

import (
	"context"
	"errors"
	"time"
)

// Extension is the filename extension every notebook name carries.
const Extension = ".ipynb"

// ErrNotFound is returned when an operation references a notebook that is
// not in the registry.
var ErrNotFound = errors.New("notebook not found")

// Notebook is a single registry entry. Content holds the raw notebook
// document; the registry never interprets it.
type Notebook struct {
	Name         string
	Path         string
	Created      time.Time
	LastModified time.Time
	Content      []byte
}

// Registry is the notebook storage contract of the host server.
type Registry interface {
	// List returns the notebooks of a directory without content, sorted
	// by name. An unknown directory lists empty.
	List(ctx context.Context, path string) ([]Notebook, error)
	// Get returns a notebook including its content.
	Get(ctx context.Context, path, name string) (Notebook, error)
	// Save stores or overwrites a notebook.
	Save(ctx context.Context, notebook Notebook) error
	// Seed stores a notebook only if the name is still unused.
	Seed(ctx context.Context, notebook Notebook) error
	// Create stores an empty notebook under the first unused
	// "{basename}{i}.ipynb" name of the directory and returns it.
	Create(ctx context.Context, path, basename string) (Notebook, error)
	// Rename moves a notebook to a new path and name.
	Rename(ctx context.Context, path, name, newPath, newName string) error
	// Delete removes a notebook.
	Delete(ctx context.Context, path, name string) error
	// Count returns the total number of notebooks.
	Count(ctx context.Context) (int, error)
}
