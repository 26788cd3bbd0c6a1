package get

import (
	"context"
	"log/slog"

	"github.com/dkrizic/nbmem/command"
	"github.com/urfave/cli/v3"
)

func Get(ctx context.Context, cmd *cli.Command) error {
	c := command.Client(cmd)
	ref := cmd.StringArg("notebook")

	slog.DebugContext(ctx, "Getting notebook", "notebook", ref)
	model, err := c.Get(ctx, ref)
	if err != nil {
		return err
	}
	cmd.Writer.Write(append(model.Content, '\n'))
	return nil
}
