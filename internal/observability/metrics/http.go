package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpOnce         sync.Once
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
)

// HTTPMetricsMiddleware records request metrics on the provided registry:
//
//   - devhome_http_requests_total            (CounterVec)   — method, route, status
//   - devhome_http_request_duration_seconds  (HistogramVec) — method, route, status
//   - devhome_http_requests_in_flight        (Gauge)
//
// The route label uses c.FullPath() (route template) to keep label
// cardinality bounded. A nil registry yields a no-op middleware.
func HTTPMetricsMiddleware(reg *prometheus.Registry) gin.HandlerFunc {
	if reg == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	// Registration happens once per process; repeated Setup calls (tests)
	// reuse the same collectors.
	httpOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "devhome_http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "route", "status"},
		)

		requestDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "devhome_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		)

		requestsInFlight = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "devhome_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		)

		reg.MustRegister(requestsTotal, requestDuration, requestsInFlight)
	})

	return func(c *gin.Context) {
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()
		start := time.Now()

		c.Next()

		elapsed := time.Since(start).Seconds()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		requestsTotal.WithLabelValues(method, route, status).Inc()
		requestDuration.WithLabelValues(method, route, status).Observe(elapsed)
	}
}
