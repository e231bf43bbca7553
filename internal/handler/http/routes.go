package http

import (
	"net/http"

	"github.com/geo-waqf/geowaqf/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRecover)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	if h.cfg.RateLimitRequests > 0 && h.cfg.RateLimitWindow > 0 {
		router.Use(httprate.Limit(
			h.cfg.RateLimitRequests,
			h.cfg.RateLimitWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(h.tooManyRequests),
		))
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withTimeout)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.Get("/", h.index)
	router.Get("/metrics", metrics.Handler().ServeHTTP)
	router.Get("/api/version/", h.getServerVersion)

	router.Get("/api/get-analysis-layers", h.getAnalysisLayers)
	router.Get("/api/get-mce-layer", h.getMCELayer)
	router.Get("/api/get-desa-bengkalis", h.getBoundary)
	router.Get("/api/get-ndvi-layer", h.getNDVILayers)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

func (h *Handler) allowedOrigins() []string {
	if len(h.cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return h.cfg.CORSAllowedOrigins
}
