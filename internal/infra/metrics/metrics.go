// Package metrics provides Prometheus instrumentation for the HTTP surface
// and the search pipeline. Mount Middleware on the echo instance and
// Handler on GET /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nearbuy",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nearbuy",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "nearbuy",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// SearchResultSize tracks how many entries each catalog evaluation
	// returned after filtering and truncation.
	SearchResultSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "nearbuy",
			Subsystem: "search",
			Name:      "result_size",
			Help:      "Number of entries returned per search.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 200},
		},
	)

	// SearchTotal counts catalog evaluations by whether radius filtering
	// was active.
	SearchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nearbuy",
			Subsystem: "search",
			Name:      "evaluations_total",
			Help:      "Total catalog search evaluations.",
		},
		[]string{"radius"}, // "active" | "inactive"
	)
)

// DefaultRegistry is the Prometheus registry used by the service.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		SearchResultSize,
		SearchTotal,
	)
}

// RecordSearch records the outcome of one catalog evaluation.
func RecordSearch(radiusActive bool, resultSize int) {
	label := "inactive"
	if radiusActive {
		label = "active"
	}
	SearchTotal.WithLabelValues(label).Inc()
	SearchResultSize.Observe(float64(resultSize))
}

// Middleware returns an echo middleware that records request metrics.
// The route template is used as the path label to keep cardinality bounded.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			duration := time.Since(start).Seconds()
			statusLabel := strconv.Itoa(status)

			RequestDuration.WithLabelValues(c.Request().Method, path, statusLabel).Observe(duration)
			RequestTotal.WithLabelValues(c.Request().Method, path, statusLabel).Inc()

			return err
		}
	}
}

// Handler returns the echo handler exposing the metrics page.
func Handler() echo.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})

	return echo.WrapHandler(h)
}
