package command

import (
	"github.com/dkrizic/nbmem/client"
	"github.com/dkrizic/nbmem/constant"
	"github.com/urfave/cli/v3"
)

// Client builds a contents API client from the command flags.
func Client(cmd *cli.Command) *client.Client {
	return client.New(cmd.String(constant.Endpoint))
}

// Flags returns the connection flags shared by all client commands.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     constant.Endpoint,
			Value:    "http://localhost:8080",
			Category: "connection",
			Usage:    "Notebook service endpoint",
			Sources:  cli.EnvVars("ENDPOINT"),
		},
	}
}
