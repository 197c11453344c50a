// Package metrics provides Prometheus instrumentation for the storefront.
//
// Wire it up once in the server bootstrap:
//
//	r.Use(metrics.Middleware())
//	r.Get("/metrics", "metrics", metrics.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ─────────────────────────────────────────────
// HTTP metrics
// ─────────────────────────────────────────────

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shalabia",
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
			Namespace: "shalabia",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "shalabia",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})
)

// ─────────────────────────────────────────────
// Storefront metrics
// ─────────────────────────────────────────────

var (
	// SignupsTotal counts successful account registrations.
	SignupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shalabia",
		Subsystem: "identity",
		Name:      "signups_total",
		Help:      "Total successful sign-ups.",
	})

	// SigninsTotal counts successful sign-ins.
	SigninsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shalabia",
		Subsystem: "identity",
		Name:      "signins_total",
		Help:      "Total successful sign-ins.",
	})

	// OrdersTotal counts confirmed checkout submissions.
	OrdersTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shalabia",
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Total orders placed.",
	})

	// OrderValue tracks order totals in EGP.
	OrderValue = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "shalabia",
		Subsystem: "orders",
		Name:      "value_egp",
		Help:      "Order totals in EGP.",
		Buckets:   []float64{500, 1_000, 2_500, 5_000, 10_000, 25_000},
	})

	// CartAdds counts cart additions by result: "added" or "out_of_stock".
	CartAdds = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shalabia",
		Subsystem: "cart",
		Name:      "adds_total",
		Help:      "Cart add attempts by result.",
	}, []string{"result"})

	// WishlistToggles counts wishlist flips by direction: "added" or "removed".
	WishlistToggles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shalabia",
		Subsystem: "wishlist",
		Name:      "toggles_total",
		Help:      "Wishlist toggles by direction.",
	}, []string{"direction"})

	// NotificationsEvicted counts log entries dropped by the FIFO cap.
	NotificationsEvicted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shalabia",
		Subsystem: "notifications",
		Name:      "evicted_total",
		Help:      "Notification log entries evicted by the length cap.",
	})

	// StoreReads / StoreWrites track key-value store traffic per key.
	StoreReads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shalabia",
		Subsystem: "store",
		Name:      "reads_total",
		Help:      "Key-value store reads by key.",
	}, []string{"key"})

	StoreWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shalabia",
		Subsystem: "store",
		Name:      "writes_total",
		Help:      "Key-value store writes by key.",
	}, []string{"key"})

	// QueueJobsProcessed counts processed background jobs by status.
	QueueJobsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shalabia",
		Subsystem: "queue",
		Name:      "jobs_processed_total",
		Help:      "Total queue jobs processed.",
	}, []string{"status"})
)

// ─────────────────────────────────────────────
// Registry
// ─────────────────────────────────────────────

// DefaultRegistry is the Prometheus registry used by the storefront.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		SignupsTotal,
		SigninsTotal,
		OrdersTotal,
		OrderValue,
		CartAdds,
		WishlistToggles,
		NotificationsEvicted,
		StoreReads,
		StoreWrites,
		QueueJobsProcessed,
	)
}

// MustRegister adds custom collectors to the storefront registry.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

// ─────────────────────────────────────────────
// HTTP middleware
// ─────────────────────────────────────────────

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records duration, total count, and in-flight gauge per request.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			status := strconv.Itoa(rr.status)
			RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler exposes the Prometheus metrics page. Mount on GET /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}

// RecordQueueJob records a background job result.
func RecordQueueJob(status string) {
	QueueJobsProcessed.WithLabelValues(status).Inc()
}
