package log

// implements a Notifier that logs notifications using slog.

import (
	"context"
	"log/slog"

	"github.com/dkrizic/nbmem/notifier"
	"go.opentelemetry.io/otel"
)

type LogNotifier struct {
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, notification notifier.Notification) error {
	ctx, span := otel.Tracer("notifier/log").Start(ctx, "Notify")
	defer span.End()

	slog.InfoContext(ctx, "Notification",
		"id", notification.ID,
		"action_type", notification.Action.Type,
		"path", notification.Action.Path,
		"name", notification.Action.Name,
		"newPath", notification.Action.NewPath,
		"newName", notification.Action.NewName)
	return nil
}
