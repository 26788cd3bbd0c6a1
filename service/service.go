package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dkrizic/nbmem/constant"
	metaversion "github.com/dkrizic/nbmem/meta"
	"github.com/dkrizic/nbmem/service/registry"
	"github.com/dkrizic/nbmem/service/registry/factory"
	"github.com/dkrizic/nbmem/telemetry"
	"github.com/urfave/cli/v3"
)

var otelShutdown func(ctx context.Context) error = nil

func Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	slog.Info("Starting service", "version", metaversion.Version)

	otelEnabled := cmd.Bool(constant.OpenTelemetryEnabled)
	otelEndpoint := cmd.String(constant.OpenTelemetryEndpoint)

	if otelEnabled {
		slog.InfoContext(ctx, "OpenTelemetry enabled", "endpoint", otelEndpoint)
		if otelEndpoint == "" {
			slog.Error("OTLP endpoint is required when OpenTelemetry is enabled")
			return ctx, fmt.Errorf("otlp endpoint is required when OpenTelemetry is enabled")
		}
		shutdown, err := telemetry.OpenTelemetryConfig{
			ServiceName:    metaversion.Service,
			ServiceVersion: metaversion.Version,
			OTLPEndpoint:   otelEndpoint,
		}.InitOpenTelemetry(ctx)
		if err != nil {
			slog.Error("Failed to initialize OpenTelemetry", "error", err)
			return ctx, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
		}
		otelShutdown = shutdown
	} else {
		slog.InfoContext(ctx, "OpenTelemetry disabled")
	}

	return ctx, nil
}

func After(ctx context.Context, cmd *cli.Command) error {
	if otelShutdown != nil {
		slog.InfoContext(ctx, "Shutting down OpenTelemetry")
		err := otelShutdown(ctx)
		if err != nil {
			slog.Error("Failed to shut down OpenTelemetry", "error", err)
			return fmt.Errorf("failed to shut down OpenTelemetry: %w", err)
		}
	}
	slog.Info("Shutting down service", "version", metaversion.Version)
	return nil
}

// Service is the CLI entrypoint for starting the notebook service.
func Service(ctx context.Context, cmd *cli.Command) error {
	port := cmd.Int(constant.Port)
	slog.InfoContext(ctx, "Configuration", "port", port)

	// configure the registry based on storage type
	reg, err := factory.NewRegistry(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to create registry: %w", err)
	}

	// seed notebooks given on the command line
	preset := cmd.StringSlice(constant.PreSet)
	for _, kv := range preset {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			slog.WarnContext(ctx, "Invalid preset format, expected name=content", "preset", kv)
			continue
		}
		path, name := splitName(parts[0])
		slog.InfoContext(ctx, "Seeding notebook", "path", path, "name", name)
		err := reg.Seed(ctx, registry.Notebook{
			Path:    path,
			Name:    name,
			Content: []byte(parts[1]),
		})
		if err != nil {
			slog.ErrorContext(ctx, "Failed to seed notebook", "path", path, "name", name, "error", err)
			return fmt.Errorf("failed to seed notebook: %w", err)
		}
	}

	server, err := NewServer(fmt.Sprintf(":%d", port), reg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	mux := http.NewServeMux()
	server.RegisterHandlers(mux)

	server.httpServer = &http.Server{
		Addr:    server.address,
		Handler: mux,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "HTTP server listening", "address", server.address)
		if err := server.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-ctx.Done():
		slog.InfoContext(ctx, "Context canceled, shutting down")
	case sig := <-cancelChan:
		slog.InfoContext(ctx, "Received signal, shutting down", "signal", sig)
	case err := <-errChan:
		slog.ErrorContext(ctx, "HTTP server error", "error", err)
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	slog.InfoContext(ctx, "Shutting down HTTP server gracefully")
	if err := server.httpServer.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "Failed to shutdown HTTP server gracefully", "error", err)
		return err
	}

	slog.InfoContext(ctx, "Notebook service stopped")
	return nil
}

// splitName splits "work/a.ipynb" into directory path and notebook name.
func splitName(ref string) (path, name string) {
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[:idx], ref[idx+1:]
	}
	return "", ref
}
