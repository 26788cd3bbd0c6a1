package list

import (
	"context"
	"time"

	"github.com/dkrizic/nbmem/command"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

func List(ctx context.Context, cmd *cli.Command) error {
	c := command.Client(cmd)
	path := cmd.StringArg("path")

	listing, err := c.List(ctx, path)
	if err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.Writer)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Name", "Path", "Last Modified"})
	for _, m := range listing.Content {
		tw.AppendRow(table.Row{m.Name, m.Path, m.LastModified.Format(time.RFC3339)})
	}
	tw.Render()
	return nil
}
