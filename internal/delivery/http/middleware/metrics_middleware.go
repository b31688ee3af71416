package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsMiddleware struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewMetricsMiddleware() *MetricsMiddleware {
	registry := prometheus.NewRegistry()
	m := &MetricsMiddleware{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "status"},
		),
	}

	registry.MustRegister(
		m.requestDuration,
		m.requestTotal,
		m.errorTotal,
	)

	return m
}

func (m *MetricsMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		// label by route template so ids do not explode cardinality
		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				path = tmpl
			}
		}
		status := strconv.Itoa(rec.status)

		m.requestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		m.requestTotal.WithLabelValues(r.Method, path, status).Inc()
		if rec.status >= 400 {
			m.errorTotal.WithLabelValues(r.Method, path, status).Inc()
		}
	})
}

// Handler exposes the registry in the Prometheus text format
func (m *MetricsMiddleware) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
