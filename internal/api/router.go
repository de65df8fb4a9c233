package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/greethub/greeting-service/internal/api/handler"
	apimw "github.com/greethub/greeting-service/internal/api/middleware"
	"github.com/greethub/greeting-service/internal/metrics"
	"github.com/greethub/greeting-service/internal/ratelimiter"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
//
// Unmatched paths and unregistered methods keep chi's defaults (404 and
// 405): the greeting contract defines no custom behavior for either.
func NewRouter(
	m *metrics.Metrics,
	reg prometheus.Gatherer,
	limiter *ratelimiter.Limiter,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)          // recover panics, return 500
	r.Use(chimw.RealIP)             // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(1<<20)) // 1 MB max request body
	r.Use(apimw.RequestID)          // X-Request-ID inject / echo
	r.Use(apimw.RequestLogger(logger))
	r.Use(apimw.HTTPMetrics(m))
	if limiter.Enabled() {
		r.Use(apimw.Throttle(limiter))
	}

	// --- handler instances ---
	gh := handler.NewGreetingHandler(m.GreetingHook())
	hh := handler.NewHealthHandler()

	// --- routes ---
	r.Get("/", gh.Greet)
	r.Get("/health", hh.Health)

	// Raw Prometheus scrape endpoint (for Prometheus server / Grafana)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}
