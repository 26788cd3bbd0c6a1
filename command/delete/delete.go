package delete

import (
	"context"
	"log/slog"

	"github.com/dkrizic/nbmem/command"
	"github.com/urfave/cli/v3"
)

func Delete(ctx context.Context, cmd *cli.Command) error {
	c := command.Client(cmd)
	ref := cmd.StringArg("notebook")

	if err := c.Delete(ctx, ref); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Notebook deleted", "notebook", ref)
	return nil
}
