package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsPath is where the exposition endpoint is mounted.
const MetricsPath = "/metrics"

const shutdownTimeout = 5 * time.Second

// Handler returns the exposition endpoint wrapped in the request metrics
// middleware.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(MetricsPath, Middleware(promhttp.Handler()))
	return mux
}

// Serve exposes the metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
