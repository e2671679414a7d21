package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Path is where the metrics handler is mounted
const Path = "/metrics"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ticket_ledger",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ticket_ledger",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ticket_ledger",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	sessionsOpen = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ticket_ledger",
			Subsystem: "sessions",
			Name:      "open",
			Help:      "Editing sessions currently held in memory.",
		},
	)

	sessionsExpired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ticket_ledger",
			Subsystem: "sessions",
			Name:      "expired_total",
			Help:      "Editing sessions dropped after sitting idle past their TTL.",
		},
	)

	reportsSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ticket_ledger",
			Subsystem: "reports",
			Name:      "saved_total",
			Help:      "Draw reports written, by draw slot.",
		},
		[]string{"slot"},
	)

	extractions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ticket_ledger",
			Subsystem: "results",
			Name:      "extractions_total",
			Help:      "Result sheet extractions, by source and outcome.",
		},
		[]string{"source", "success"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		sessionsOpen,
		sessionsExpired,
		reportsSaved,
		extractions,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latencies per route template.
// Unmatched routes share the "unmatched" path label.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == Path {
			c.Next()
			return
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// SetOpenSessions records how many editing sessions are open
func SetOpenSessions(n int) {
	sessionsOpen.Set(float64(n))
}

// RecordSessionsExpired counts sessions dropped by a sweep
func RecordSessionsExpired(n int) {
	if n > 0 {
		sessionsExpired.Add(float64(n))
	}
}

// RecordReportSaved counts one report write for slot
func RecordReportSaved(slot string) {
	reportsSaved.WithLabelValues(slot).Inc()
}

// RecordExtraction counts one result extraction from source ("text" or "image")
func RecordExtraction(source string, success bool) {
	extractions.WithLabelValues(source, strconv.FormatBool(success)).Inc()
}
