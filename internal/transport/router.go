package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/apilooter/gateway/internal/catalog"
	"github.com/apilooter/gateway/internal/config"
	"github.com/apilooter/gateway/internal/dispatch"
	"github.com/apilooter/gateway/internal/observability"
	"github.com/apilooter/gateway/internal/policy"
)

// Dependencies holds all injected dependencies for the HTTP transport layer.
type Dependencies struct {
	Config  *config.Config
	Logger  *zap.Logger
	Catalog *catalog.Registry
	Engine  *dispatch.Engine
	Limiter *policy.ClientLimiter
	Metrics *observability.Metrics
}

// NewRouter creates a chi.Router with the full middleware pipeline and all
// route registrations. Health, readiness, and metrics endpoints bypass the
// heavier request middleware; the invoke route alone carries the rate
// limiter.
func NewRouter(deps Dependencies) chi.Router {
	r := chi.NewRouter()

	// Global middleware: applied to all routes including health.
	r.Use(Recovery(deps.Logger))
	r.Use(CORS(deps.Config.Server.CORS))
	r.Use(RequestID)
	r.Use(SecurityHeaders)

	// Operational endpoints.
	r.Get("/health", observability.HandleHealth())
	r.Get("/ready", observability.HandleReady(observability.ReadinessChecks{
		CatalogLoaded: func() bool { return deps.Catalog.Len() > 0 },
	}))
	if deps.Config.Observability.Metrics.Enabled {
		r.Method(http.MethodGet, deps.Config.Observability.Metrics.Path, observability.Handler())
	}

	// API routes.
	r.Group(func(r chi.Router) {
		r.Use(observability.TracingMiddleware)
		r.Use(HandlerTimeout(deps.Config.Server.HandlerTimeout))
		r.Use(RequestLogging(deps.Logger))
		if deps.Metrics != nil {
			r.Use(deps.Metrics.MetricsMiddleware)
		}

		r.Get("/api/providers", handleListProviders(deps.Catalog))
		r.Get("/api/providers/{providerId}", handleGetProvider(deps.Catalog))
		r.Get("/api/categories", handleListCategories(deps.Catalog))

		r.Group(func(r chi.Router) {
			r.Use(RateLimit(deps.Limiter, deps.Metrics, deps.Logger))
			r.Post("/api/providers/{providerId}/invoke", handleInvoke(deps.Engine))
		})
	})

	return r
}
