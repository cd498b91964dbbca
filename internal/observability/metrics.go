package observability

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Histogram bucket definitions.
var (
	httpDurationBuckets     = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	dispatchDurationBuckets = []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	bodySizeBuckets         = []float64{100, 1024, 10240, 102400, 1048576}
)

// Metrics holds all Prometheus metric instruments for the gateway.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPResponseSizeBytes *prometheus.HistogramVec

	// Dispatch metrics
	DispatchesTotal  *prometheus.CounterVec
	DispatchDuration *prometheus.HistogramVec

	// Rate limiting
	RateLimitRejectionsTotal prometheus.Counter

	// Catalog metrics
	ProvidersLoaded    prometheus.Gauge
	CatalogLoadsTotal  *prometheus.CounterVec
	ValidationFindings *prometheus.GaugeVec
}

// InitMetrics creates and registers all Prometheus metric instruments.
func InitMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		// HTTP
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path_pattern", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: httpDurationBuckets,
		}, []string{"method", "path_pattern"}),
		HTTPResponseSizeBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_http_response_size_bytes",
			Help:    "HTTP response body size in bytes.",
			Buckets: bodySizeBuckets,
		}, []string{"method", "path_pattern"}),

		// Dispatch
		DispatchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_dispatches_total",
			Help: "Total number of provider dispatches by result kind.",
		}, []string{"provider", "kind"}),
		DispatchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_dispatch_duration_seconds",
			Help:    "Provider dispatch duration in seconds, upstream call included.",
			Buckets: dispatchDurationBuckets,
		}, []string{"provider"}),

		// Rate limiting
		RateLimitRejectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gateway_rate_limit_rejections_total",
			Help: "Total number of invocations rejected by the rate limiter.",
		}),

		// Catalog
		ProvidersLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gateway_providers_loaded",
			Help: "Number of providers in the active catalog snapshot.",
		}),
		CatalogLoadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_catalog_loads_total",
			Help: "Total catalog loads by status.",
		}, []string{"status"}),
		ValidationFindings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gateway_catalog_validation_findings",
			Help: "Findings from the last catalog validation by severity.",
		}, []string{"severity"}),
	}

	reg.MustRegister(
		// HTTP
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPResponseSizeBytes,
		// Dispatch
		m.DispatchesTotal,
		m.DispatchDuration,
		// Rate limiting
		m.RateLimitRejectionsTotal,
		// Catalog
		m.ProvidersLoaded,
		m.CatalogLoadsTotal,
		m.ValidationFindings,
	)

	return m
}

// --- Recording helpers ---

// RecordHTTPRequest records HTTP request metrics.
func (m *Metrics) RecordHTTPRequest(method, pathPattern string, status int, duration time.Duration, respSize int) {
	statusStr := strconv.Itoa(status)
	m.HTTPRequestsTotal.WithLabelValues(method, pathPattern, statusStr).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, pathPattern).Observe(duration.Seconds())
	m.HTTPResponseSizeBytes.WithLabelValues(method, pathPattern).Observe(float64(respSize))
}

// RecordDispatch records one provider dispatch.
func (m *Metrics) RecordDispatch(provider, kind string, duration time.Duration) {
	m.DispatchesTotal.WithLabelValues(provider, kind).Inc()
	m.DispatchDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordRateLimitRejection records one rate-limited invocation.
func (m *Metrics) RecordRateLimitRejection() {
	m.RateLimitRejectionsTotal.Inc()
}

// RecordCatalogLoad records a catalog load attempt.
func (m *Metrics) RecordCatalogLoad(status string) {
	m.CatalogLoadsTotal.WithLabelValues(status).Inc()
}

// SetProvidersLoaded sets the number of providers in the active snapshot.
func (m *Metrics) SetProvidersLoaded(count float64) {
	m.ProvidersLoaded.Set(count)
}

// SetValidationFindings records the error and warning counts of the last
// catalog validation.
func (m *Metrics) SetValidationFindings(errors, warnings int) {
	m.ValidationFindings.WithLabelValues("error").Set(float64(errors))
	m.ValidationFindings.WithLabelValues("warning").Set(float64(warnings))
}

// --- HTTP Middleware ---

// MetricsMiddleware returns HTTP middleware that records request metrics using
// chi's route pattern (not the actual URL path) to avoid label cardinality
// explosion.
func (m *Metrics) MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &metricsResponseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		duration := time.Since(start)
		m.RecordHTTPRequest(r.Method, routePattern(r), sw.status, duration, sw.bytes)
	})
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// routePattern extracts chi's route pattern from the request context.
// Falls back to the raw URL path if no pattern is found.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path
	}
	pattern := strings.Join(rctx.RoutePatterns, "")
	// chi route patterns have trailing /*, remove it.
	pattern = strings.TrimSuffix(pattern, "/*")
	if pattern == "" {
		return r.URL.Path
	}
	return pattern
}

// metricsResponseWriter wraps http.ResponseWriter to capture status and bytes.
type metricsResponseWriter struct {
	http.ResponseWriter
	status  int
	bytes   int
	written bool
}

func (w *metricsResponseWriter) WriteHeader(code int) {
	if !w.written {
		w.status = code
		w.written = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *metricsResponseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.written = true
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}
