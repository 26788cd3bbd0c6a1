package rename

import (
	"context"
	"log/slog"

	"github.com/dkrizic/nbmem/command"
	"github.com/urfave/cli/v3"
)

func Rename(ctx context.Context, cmd *cli.Command) error {
	c := command.Client(cmd)
	ref := cmd.StringArg("notebook")
	newRef := cmd.StringArg("target")

	model, err := c.Rename(ctx, ref, newRef)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "Notebook renamed", "path", model.Path, "name", model.Name)
	return nil
}
