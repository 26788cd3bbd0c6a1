package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dkrizic/nbmem/command"
	"github.com/dkrizic/nbmem/command/create"
	"github.com/dkrizic/nbmem/command/delete"
	"github.com/dkrizic/nbmem/command/get"
	"github.com/dkrizic/nbmem/command/list"
	"github.com/dkrizic/nbmem/command/put"
	"github.com/dkrizic/nbmem/command/rename"
	"github.com/dkrizic/nbmem/command/version"
	"github.com/dkrizic/nbmem/constant"
	"github.com/dkrizic/nbmem/service"
	"github.com/dkrizic/nbmem/telemetry/otelslog"
	"github.com/urfave/cli/v3" // imports as package "cli"
)

func main() {
	cmd := &cli.Command{
		Name:  "nbmem",
		Usage: "In-memory notebook service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     constant.LogFormat,
				Value:    constant.LogFormatText,
				Category: "logging",
				Usage:    "Log format: text or json",
				Sources:  cli.EnvVars("LOG_FORMAT"),
				Action: func(ctx context.Context, command *cli.Command, s string) error {
					if s != constant.LogFormatText && s != constant.LogFormatJSON {
						return fmt.Errorf("invalid log format: %s", s)
					}
					return nil
				},
			},
			&cli.StringFlag{
				Name:     constant.LogLevel,
				Value:    constant.LogLevelInfo,
				Category: "logging",
				Usage:    "Log level: debug, info, warn, error",
				Sources:  cli.EnvVars("LOG_LEVEL"),
				Action: func(ctx context.Context, command *cli.Command, s string) error {
					if s != constant.LogLevelDebug && s != constant.LogLevelInfo && s != constant.LogLevelWarn && s != constant.LogLevelError {
						return fmt.Errorf("invalid log level: %s", s)
					}
					return nil
				},
			},
		},
		Before: beforeAction,
		Commands: []*cli.Command{
			&cli.Command{
				Name:   "version",
				Usage:  "Print the version number of the notebook service",
				Action: version.Version,
				Flags: append(command.Flags(),
					&cli.BoolFlag{
						Name:     constant.Remote,
						Value:    false,
						Category: "connection",
						Usage:    "Also report the version of the running service",
					},
				),
			},
			&cli.Command{
				Name:   "service",
				Usage:  "Start the notebook service",
				Before: service.Before,
				Action: service.Service,
				After:  service.After,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     constant.Port,
						Value:    8080,
						Category: "service",
						Usage:    "Port to run the service on",
						Sources:  cli.EnvVars("PORT"),
					},
					&cli.BoolFlag{
						Name:     constant.OpenTelemetryEnabled,
						Value:    false,
						Category: "observability",
						Usage:    "Enable OpenTelemetry tracing",
						Sources:  cli.EnvVars("OPENTELEMETRY_ENABLED"),
					},
					&cli.StringFlag{
						Name:     constant.OpenTelemetryEndpoint,
						Value:    "",
						Category: "observability",
						Usage:    "OTLP endpoint for OpenTelemetry",
						Sources:  cli.EnvVars("OPENTELEMETRY_ENDPOINT"),
					},
					&cli.StringFlag{
						Name:    constant.StorageType,
						Value:   constant.StorageTypeInMemory,
						Usage:   "Type of storage to use: inmemory",
						Sources: cli.EnvVars("STORAGE_TYPE"),
						Action: func(ctx context.Context, cmd *cli.Command, s string) error {
							if s != constant.StorageTypeInMemory {
								return fmt.Errorf("invalid storage type: %s", s)
							}
							return nil
						},
					},
					&cli.StringFlag{
						Name:    constant.NotifierType,
						Value:   constant.NotifierTypeLog,
						Usage:   "Notifier for registry changes: log, none",
						Sources: cli.EnvVars("NOTIFIER"),
						Action: func(ctx context.Context, cmd *cli.Command, s string) error {
							if s != constant.NotifierTypeLog && s != constant.NotifierTypeNone {
								return fmt.Errorf("invalid notifier type: %s", s)
							}
							return nil
						},
					},
					&cli.StringSliceFlag{
						Name:    constant.PreSet,
						Usage:   "Seed notebooks in the format name=content before starting the service",
						Sources: cli.EnvVars("PRESET"),
					},
				},
			},
			&cli.Command{
				Name:   "list",
				Usage:  "List notebooks in a directory",
				Action: list.List,
				Flags:  command.Flags(),
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
			},
			&cli.Command{
				Name:   "get",
				Usage:  "Print the content of a notebook",
				Action: get.Get,
				Flags:  command.Flags(),
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "notebook",
					},
				},
			},
			&cli.Command{
				Name:   "put",
				Usage:  "Save a notebook from a file or stdin",
				Action: put.Put,
				Flags:  command.Flags(),
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "notebook",
					},
					&cli.StringArg{
						Name: "file",
					},
				},
			},
			&cli.Command{
				Name:   "create",
				Usage:  "Create a fresh notebook in a directory",
				Action: create.Create,
				Flags: append(command.Flags(),
					&cli.StringFlag{
						Name:  "basename",
						Usage: "Base name for the new notebook",
					}),
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
			},
			&cli.Command{
				Name:   "rename",
				Usage:  "Move a notebook to a new path and name",
				Action: rename.Rename,
				Flags:  command.Flags(),
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "notebook",
					},
					&cli.StringArg{
						Name: "target",
					},
				},
			},
			&cli.Command{
				Name:   "delete",
				Usage:  "Delete a notebook",
				Action: delete.Delete,
				Flags:  command.Flags(),
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "notebook",
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func beforeAction(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logFormat := cmd.String(constant.LogFormat)
	logLevel := cmd.String(constant.LogLevel)

	level := slog.LevelInfo
	switch logLevel {
	case constant.LogLevelDebug:
		level = slog.LevelDebug
	case constant.LogLevelInfo:
		level = slog.LevelInfo
	case constant.LogLevelWarn:
		level = slog.LevelWarn
	case constant.LogLevelError:
		level = slog.LevelError
	default:
		return ctx, fmt.Errorf("invalid log level: %s", logLevel)
	}

	var handler slog.Handler
	if logFormat == constant.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	logger := slog.New(otelslog.NewHandler(handler))
	slog.SetDefault(logger)

	return ctx, nil
}
