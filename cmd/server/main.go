// Package main runs the Task API: a REST service for tasks backed by
// PostgreSQL and Redis, plus a gRPC analytics endpoint.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/logger"
)

func main() {
	os.Exit(run())
}

// run starts the service and blocks until a shutdown signal arrives or a
// server fails. It returns the process exit code.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return 1
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logger: %v\n", err)
		return 1
	}
	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.Int("grpc_port", cfg.Server.GRPCPort),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("events_driver", cfg.Events.Driver))

	ctx := context.Background()
	infra, err := connectInfrastructure(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect infrastructure", slog.Any("error", err))
		return 1
	}

	app, err := newApplication(cfg, log, infra)
	if err != nil {
		log.Error("failed to initialize application", slog.Any("error", err))
		_ = infra.close()
		return 1
	}

	httpLis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Error("failed to listen for HTTP", slog.Any("error", err))
		_ = infra.close()
		return 1
	}
	grpcLis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		log.Error("failed to listen for gRPC", slog.Any("error", err))
		_ = httpLis.Close()
		_ = infra.close()
		return 1
	}

	serveErr := app.serve(httpLis, grpcLis)

	wait := gfshutdown.GracefulShutdown(ctx, cfg.Server.ShutdownTimeout, map[string]gfshutdown.Operation{
		"task-api": func(ctx context.Context) error {
			log.Info("graceful shutdown initiated")
			return app.stop(ctx)
		},
	})

	select {
	case exitCode := <-wait:
		return exitCode
	case err := <-serveErr:
		log.Error("server failed", slog.Any("error", err))
		stopCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
		defer cancel()
		_ = app.stop(stopCtx)
		return 1
	}
}
