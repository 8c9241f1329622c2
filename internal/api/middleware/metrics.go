package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tenantDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tenant_router_decisions_total",
		Help: "Tenant routing decisions by outcome.",
	}, []string{"decision"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Metrics records request latency labelled by the matched chi route pattern,
// so tenant paths do not explode label cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		requestDuration.WithLabelValues(r.Method, route, strconv.Itoa(rw.status)).Observe(time.Since(start).Seconds())
	})
}
