package put

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dkrizic/nbmem/command"
	"github.com/urfave/cli/v3"
)

// Put saves a notebook from a file, or from stdin when no file is given.
func Put(ctx context.Context, cmd *cli.Command) error {
	c := command.Client(cmd)
	ref := cmd.StringArg("notebook")
	file := cmd.StringArg("file")

	var content []byte
	var err error
	if file == "" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(file)
	}
	if err != nil {
		return err
	}

	model, err := c.Save(ctx, ref, content)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "Notebook saved", "path", model.Path, "name", model.Name)
	return nil
}
