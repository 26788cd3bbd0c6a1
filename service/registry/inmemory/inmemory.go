package inmemory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/dkrizic/nbmem/service/registry"
	"go.opentelemetry.io/otel"
)

const tracerName = "service/registry/inmemory"

// emptyNotebook is the document stored for freshly created notebooks.
const emptyNotebook = `{"cells":[],"metadata":{},"nbformat":4,"nbformat_minor":5}`

type entry struct {
	created      time.Time
	lastModified time.Time
	content      []byte
}

// Registry keeps all notebooks in a tree of directory path -> name -> entry.
// The root directory "" always exists. Everything is gone when the process
// exits. The host serves requests concurrently, so access goes through the
// mutex.
type Registry struct {
	mu   sync.RWMutex
	tree map[string]map[string]*entry
}

func NewRegistry() *Registry {
	return &Registry{
		tree: map[string]map[string]*entry{"": {}},
	}
}

func (r *Registry) List(ctx context.Context, path string) ([]registry.Notebook, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "List")
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	dir, ok := r.tree[path]
	if !ok {
		slog.DebugContext(ctx, "Listing unknown directory", "path", path)
		return nil, nil
	}
	notebooks := make([]registry.Notebook, 0, len(dir))
	for name, e := range dir {
		notebooks = append(notebooks, registry.Notebook{
			Name:         name,
			Path:         path,
			Created:      e.created,
			LastModified: e.lastModified,
		})
	}
	sort.Slice(notebooks, func(i, j int) bool {
		return notebooks[i].Name < notebooks[j].Name
	})
	slog.DebugContext(ctx, "Listing", "path", path, "count", len(notebooks))
	return notebooks, nil
}

func (r *Registry) Get(ctx context.Context, path, name string) (registry.Notebook, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Get")
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.tree[path][name]
	if !ok {
		return registry.Notebook{}, fmt.Errorf("get %q in %q: %w", name, path, registry.ErrNotFound)
	}
	slog.DebugContext(ctx, "Getting", "path", path, "name", name)
	return registry.Notebook{
		Name:         name,
		Path:         path,
		Created:      e.created,
		LastModified: e.lastModified,
		Content:      append([]byte(nil), e.content...),
	}, nil
}

func (r *Registry) Save(ctx context.Context, nb registry.Notebook) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Save")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(nb.Path, nb.Name, nb.Content)
	slog.DebugContext(ctx, "Saving", "path", nb.Path, "name", nb.Name, "bytes", len(nb.Content))
	return nil
}

// Seed stores the notebook only if the name is still unused.
func (r *Registry) Seed(ctx context.Context, nb registry.Notebook) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Seed")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tree[nb.Path][nb.Name]; ok {
		slog.InfoContext(ctx, "Notebook already exists, not seeding", "path", nb.Path, "name", nb.Name)
		return nil
	}
	slog.DebugContext(ctx, "Seeding", "path", nb.Path, "name", nb.Name)
	r.put(nb.Path, nb.Name, nb.Content)
	return nil
}

func (r *Registry) Create(ctx context.Context, path, basename string) (registry.Notebook, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Create")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := r.tree[path]
	var name string
	for i := 0; ; i++ {
		name = fmt.Sprintf("%s%d%s", basename, i, registry.Extension)
		if _, ok := dir[name]; !ok {
			break
		}
	}
	r.put(path, name, []byte(emptyNotebook))
	e := r.tree[path][name]
	slog.DebugContext(ctx, "Creating", "path", path, "name", name)
	return registry.Notebook{
		Name:         name,
		Path:         path,
		Created:      e.created,
		LastModified: e.lastModified,
		Content:      append([]byte(nil), e.content...),
	}, nil
}

func (r *Registry) Rename(ctx context.Context, path, name, newPath, newName string) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Rename")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.tree[path][name]
	if !ok {
		return fmt.Errorf("rename %q in %q: %w", name, path, registry.ErrNotFound)
	}
	if path == newPath && name == newName {
		return nil
	}
	dir, ok := r.tree[newPath]
	if !ok {
		dir = map[string]*entry{}
		r.tree[newPath] = dir
	}
	dir[newName] = e
	delete(r.tree[path], name)
	r.prune(path)
	slog.DebugContext(ctx, "Renaming", "path", path, "name", name, "newPath", newPath, "newName", newName)
	return nil
}

func (r *Registry) Delete(ctx context.Context, path, name string) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Delete")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tree[path][name]; !ok {
		return fmt.Errorf("delete %q in %q: %w", name, path, registry.ErrNotFound)
	}
	delete(r.tree[path], name)
	r.prune(path)
	slog.DebugContext(ctx, "Deleting", "path", path, "name", name)
	return nil
}

func (r *Registry) Count(ctx context.Context) (int, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Count")
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, dir := range r.tree {
		count += len(dir)
	}
	slog.DebugContext(ctx, "Counting", "count", count)
	return count, nil
}

// put stores content under path/name, creating the directory entry if
// needed. The caller must hold the write lock.
func (r *Registry) put(path, name string, content []byte) {
	dir, ok := r.tree[path]
	if !ok {
		dir = map[string]*entry{}
		r.tree[path] = dir
	}
	e, ok := dir[name]
	if !ok {
		e = &entry{created: time.Now().UTC()}
		dir[name] = e
	}
	e.content = append([]byte(nil), content...)
	e.lastModified = time.Now().UTC()
}

// prune drops a directory that became empty. The root directory stays.
func (r *Registry) prune(path string) {
	if path == "" {
		return
	}
	if len(r.tree[path]) == 0 {
		delete(r.tree, path)
	}
}
