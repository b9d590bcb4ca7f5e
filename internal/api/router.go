package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/uia-collective/compass/internal/catalog"
	"github.com/uia-collective/compass/internal/scoring"
)

func NewRouter(engine *scoring.Engine, cat *catalog.Catalog, metrics *Metrics, rateLimitRPM int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	if rateLimitRPM > 0 {
		r.Use(RateLimitMiddleware(rateLimitRPM))
	}

	assessments := NewAssessmentsHandler(engine, metrics, logger)
	reference := NewCatalogHandler(cat)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/assessments", assessments.Create)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/sdgs", reference.SDGs)
			r.Get("/questions", reference.Questions)
			r.Get("/tiers", reference.Tiers)
			r.Get("/certifications", reference.Certifications)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
