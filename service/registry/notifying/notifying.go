package notifying

// implements the registry interface and wraps another registry to send
// notifications on changes

import (
	"context"

	"github.com/dkrizic/nbmem/notifier"
	"github.com/dkrizic/nbmem/service/registry"
)

type NotifyingRegistry struct {
	wrapped  registry.Registry
	notifier notifier.Notifier
}

func NewNotifyingRegistry(wrapped registry.Registry, notifier notifier.Notifier) *NotifyingRegistry {
	return &NotifyingRegistry{
		wrapped:  wrapped,
		notifier: notifier,
	}
}

func (r *NotifyingRegistry) List(ctx context.Context, path string) ([]registry.Notebook, error) {
	return r.wrapped.List(ctx, path)
}

func (r *NotifyingRegistry) Get(ctx context.Context, path, name string) (registry.Notebook, error) {
	return r.wrapped.Get(ctx, path, name)
}

func (r *NotifyingRegistry) Seed(ctx context.Context, nb registry.Notebook) error {
	return r.wrapped.Seed(ctx, nb)
}

func (r *NotifyingRegistry) Count(ctx context.Context) (int, error) {
	return r.wrapped.Count(ctx)
}

func (r *NotifyingRegistry) Save(ctx context.Context, nb registry.Notebook) error {
	err := r.wrapped.Save(ctx, nb)
	if err != nil {
		return err
	}

	notification := notifier.UpdateNotification(nb.Path, nb.Name)
	return r.notifier.Notify(ctx, notification)
}

func (r *NotifyingRegistry) Create(ctx context.Context, path, basename string) (registry.Notebook, error) {
	nb, err := r.wrapped.Create(ctx, path, basename)
	if err != nil {
		return registry.Notebook{}, err
	}

	notification := notifier.CreateNotification(nb.Path, nb.Name)
	return nb, r.notifier.Notify(ctx, notification)
}

func (r *NotifyingRegistry) Rename(ctx context.Context, path, name, newPath, newName string) error {
	err := r.wrapped.Rename(ctx, path, name, newPath, newName)
	if err != nil {
		return err
	}

	notification := notifier.RenameNotification(path, name, newPath, newName)
	return r.notifier.Notify(ctx, notification)
}

func (r *NotifyingRegistry) Delete(ctx context.Context, path, name string) error {
	err := r.wrapped.Delete(ctx, path, name)
	if err != nil {
		return err
	}

	notification := notifier.DeleteNotification(path, name)
	return r.notifier.Notify(ctx, notification)
}
