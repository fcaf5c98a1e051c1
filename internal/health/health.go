// Package health exposes a minimal liveness endpoint on its own port so
// orchestrators can probe the process independently of the bot transport.
package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bruske/smashbot/internal/logger"
)

// Server wraps the liveness HTTP server.
type Server struct {
	srv *http.Server
}

// New builds a server listening on the given port. The /health route
// answers 200 with a plain body, matching what uptime checkers expect.
func New(port int) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start serves until the listener fails or Stop is called. Errors other
// than a clean shutdown are logged, not fatal: the bot keeps running
// without its probe endpoint.
func (s *Server) Start() {
	go func() {
		ctx := logger.Background()
		logger.Info(ctx, "health", "health.listen",
			slog.String("addr", s.srv.Addr),
		)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "health", "health.listen",
				slog.String("err", err.Error()),
			)
		}
	}()
}

// Stop drains the server with a short deadline.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
