package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aigrade/submit-api/pkg/httpserver"
)

// Router mounts the submission endpoint and the health probe.
// The submit handler is registered for all methods because method gating
// (including the OPTIONS pre-flight) is part of its pipeline.
func Router(h *SubmitHandler, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), log))
	r.Handle("/submit", h)

	return r
}
