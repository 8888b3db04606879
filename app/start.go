package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Start serves HTTP until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func (app *App) Start(ctx context.Context) error {
	logger := app.Observability.Logger

	app.server = &http.Server{
		Addr:    app.Config.HTTP.Addr,
		Handler: app.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", slog.String("addr", app.server.Addr))
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
