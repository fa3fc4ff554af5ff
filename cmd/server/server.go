package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
)

// serve starts the REST and gRPC servers on the given listeners. The returned
// channel receives the first error from either server; it stays silent after
// a clean stop.
func (app *application) serve(httpLis, grpcLis net.Listener) <-chan error {
	errCh := make(chan error, 2)

	go func() {
		app.logger.Info("HTTP server listening", slog.String("addr", httpLis.Addr().String()))
		if err := app.httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	go func() {
		if err := app.grpcServer.Serve(grpcLis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	return errCh
}

// stop drains the servers and then closes the infrastructure clients. Both
// servers are stopped before any client is closed so in-flight requests can
// finish.
func (app *application) stop(ctx context.Context) error {
	var errs []error

	if err := app.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := app.grpcServer.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("grpc shutdown: %w", err))
	}
	if err := app.infra.close(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		app.logger.Error("shutdown completed with errors", slog.Any("error", err))
		return err
	}
	app.logger.Info("shutdown completed")
	return nil
}
