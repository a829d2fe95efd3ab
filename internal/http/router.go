package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/depth-chart-service/internal/http/handlers"
	"github.com/preston-bernstein/depth-chart-service/internal/http/middleware"
	"github.com/preston-bernstein/depth-chart-service/internal/metrics"
)

// NewRouter registers HTTP routes behind request logging and panic recovery.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))
	r.Use(chimiddleware.Recoverer)
	handler.Register(r)
	return r
}
