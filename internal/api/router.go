package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blade-dss/blade/internal/events"
	"github.com/blade-dss/blade/internal/store"
)

func NewRouter(s store.Store, ec events.Client, adminToken string, rateLimitPerMinute int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(rateLimitPerMinute))

	decisions := NewDecisionsHandler(s, ec, logger)
	catalog := NewCatalogHandler(s, ec)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/decisions", decisions.Create)
		r.Get("/decisions", decisions.List)
		r.Get("/decisions/{id}", decisions.Get)

		r.Get("/attributes", catalog.ListAttributes)
		r.Get("/alternatives", catalog.ListAlternatives)
		r.Get("/lookup", catalog.GetLookup)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Post("/attributes", catalog.CreateAttribute)
			r.Post("/alternatives", catalog.CreateAlternative)
			r.Put("/lookup/{label}", catalog.UpsertLookupEntry)
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
