package version

import (
	"context"
	"log/slog"

	"github.com/dkrizic/nbmem/command"
	"github.com/dkrizic/nbmem/constant"
	"github.com/dkrizic/nbmem/meta"
	"github.com/urfave/cli/v3"
)

func Version(ctx context.Context, cmd *cli.Command) error {
	slog.Info("Notebook Service", "name", meta.Service, "version", meta.Version)
	if !cmd.Bool(constant.Remote) {
		return nil
	}

	c := command.Client(cmd)
	remote, err := c.Version(ctx)
	if err != nil {
		return err
	}
	slog.Info("Remote Notebook Service", "name", remote.Service, "version", remote.Version)
	return nil
}
