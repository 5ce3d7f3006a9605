package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iciso/iciso-z6/internal/config"
	"github.com/iciso/iciso-z6/internal/metrics"
	"github.com/iciso/iciso-z6/internal/transport/middleware"
)

// RouterDeps collects everything the HTTP surface is built from. Metrics and
// SubmitLimit are optional.
type RouterDeps struct {
	Applications *ApplicationHandler
	Catalog      *CatalogHandler
	Health       *HealthHandler
	Metrics      *metrics.Metrics
	MetricsPath  string
	SubmitLimit  middleware.Middleware
	CORS         config.CORSConfig
	TrustProxy   bool
	Logger       *slog.Logger
}

// NewRouter wires handlers and the middleware stack.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	var instrument middleware.Middleware
	if deps.Metrics != nil {
		instrument = deps.Metrics.Instrument
	}
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(deps.TrustProxy),
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		instrument,
		middleware.CORS(deps.CORS),
	))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)
	if deps.Metrics != nil && deps.MetricsPath != "" {
		r.Method(http.MethodGet, deps.MetricsPath, deps.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/applications", func(r chi.Router) {
			r.Method(http.MethodPost, "/", middleware.Chain(deps.SubmitLimit)(http.HandlerFunc(deps.Applications.Submit)))
			r.Get("/", deps.Applications.List)
			r.Get("/export", deps.Applications.Export)
			r.Get("/summary", deps.Applications.Summary)
			r.Patch("/{id}/status", deps.Applications.UpdateStatus)
		})

		r.Get("/organizations", deps.Catalog.Organizations)
		r.Get("/themes", deps.Catalog.Themes)
	})

	return r
}
