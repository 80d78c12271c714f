package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var rpcRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "housesplit",
	Subsystem: "rpc",
	Name:      "requests_total",
	Help:      "Total Connect RPCs by procedure and result code.",
}, []string{"procedure", "code"})

var rpcDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "housesplit",
	Subsystem: "rpc",
	Name:      "duration_seconds",
	Help:      "Connect RPC latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"procedure"})

var httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "housesplit",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total REST requests by route pattern, method and status.",
}, []string{"route", "method", "status"})

var httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "housesplit",
	Subsystem: "http",
	Name:      "duration_seconds",
	Help:      "REST request latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method"})

// MetricsInterceptor returns a Connect interceptor that counts RPCs and
// records their latency.
func MetricsInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			rpcRequests.WithLabelValues(procedure, code).Inc()
			rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

// HTTPMetrics records REST request counts and latency labelled by the chi
// route pattern, so IDs in the path do not explode cardinality.
func HTTPMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
