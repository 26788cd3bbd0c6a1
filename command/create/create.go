package create

import (
	"context"
	"log/slog"

	"github.com/dkrizic/nbmem/command"
	"github.com/urfave/cli/v3"
)

func Create(ctx context.Context, cmd *cli.Command) error {
	c := command.Client(cmd)
	path := cmd.StringArg("path")
	basename := cmd.String("basename")

	model, err := c.Create(ctx, path, basename)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "Notebook created", "path", model.Path, "name", model.Name)
	cmd.Writer.Write([]byte(model.Name + "\n"))
	return nil
}
