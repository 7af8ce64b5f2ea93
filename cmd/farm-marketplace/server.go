package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

const shutdownTimeout = 5 * time.Second

// serve runs server until it fails or stop fires, then shuts it down
// gracefully. A listen failure is returned instead of waiting for a signal.
func serve(server *http.Server, stop <-chan os.Signal) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("listening on %s: %w", server.Addr, err)
	case <-stop:
	}

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
		return nil
	}

	slog.Info("✅ Server shut down gracefully. All connections closed.")

	return nil
}
