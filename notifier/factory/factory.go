package factory

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dkrizic/nbmem/constant"
	"github.com/dkrizic/nbmem/notifier"
	"github.com/dkrizic/nbmem/notifier/log"
	"github.com/dkrizic/nbmem/notifier/none"
	"github.com/urfave/cli/v3"
)

func NewNotifier(ctx context.Context, cmd *cli.Command) (notifier.Notifier, error) {
	ntype := cmd.String(constant.NotifierType)

	switch ntype {
	case constant.NotifierTypeLog:
		slog.DebugContext(ctx, "Log notifier selected")
		return log.NewLogNotifier(), nil
	case constant.NotifierTypeNone:
		slog.DebugContext(ctx, "None notifier selected")
		return none.NewNoneNotifier(), nil
	default:
		slog.ErrorContext(ctx, "Invalid notifier type", "type", ntype)
		return nil, errors.New("invalid notifier type")
	}
}
