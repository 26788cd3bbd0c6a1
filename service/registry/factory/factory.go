package factory

import (
	"errors"

	"github.com/dkrizic/nbmem/constant"
	nf "github.com/dkrizic/nbmem/notifier/factory"
	"github.com/dkrizic/nbmem/service/registry"
	"github.com/dkrizic/nbmem/service/registry/inmemory"
	"github.com/dkrizic/nbmem/service/registry/notifying"
	"github.com/urfave/cli/v3"

	"context"
	"log/slog"
)

func NewRegistry(ctx context.Context, cmd *cli.Command) (registry.Registry, error) {
	stype := cmd.String(constant.StorageType)

	notifier, err := nf.NewNotifier(ctx, cmd)
	if err != nil {
		return nil, err
	}

	switch stype {
	case constant.StorageTypeInMemory:
		slog.InfoContext(ctx, "In-memory storage selected")
		return notifying.NewNotifyingRegistry(
			inmemory.NewRegistry(), notifier,
		), nil
	default:
		slog.ErrorContext(ctx, "Invalid storage type", "type", stype)
		return nil, errors.New("invalid storage type")
	}
}
