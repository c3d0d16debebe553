package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the auction service's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "auction",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "auction",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "auction",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	bidsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "auction",
			Subsystem: "bids",
			Name:      "submitted_total",
			Help:      "Bid submissions by outcome.",
		},
		[]string{"result"},
	)

	rankingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "auction",
			Subsystem: "ranking",
			Name:      "compute_duration_seconds",
			Help:      "Time spent computing a ranking.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 100us to ~200ms
		},
	)

	rankingSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "auction",
			Subsystem: "ranking",
			Name:      "skipped_records_total",
			Help:      "Bid records excluded from rankings as malformed.",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "auction",
			Subsystem: "lifecycle",
			Name:      "status_transitions_total",
			Help:      "Auction status changes applied by the scheduler.",
		},
		[]string{"from", "to"},
	)

	liveClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "auction",
			Subsystem: "live",
			Name:      "connected_clients",
			Help:      "WebSocket clients subscribed to auction updates.",
		},
	)

	liveDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "auction",
			Subsystem: "live",
			Name:      "dropped_clients_total",
			Help:      "WebSocket clients disconnected for falling behind.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		bidsTotal,
		rankingDuration,
		rankingSkipped,
		statusTransitions,
		liveClients,
		liveDropped,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per route template.
func Middleware(c *gin.Context) {
	if c.Request.URL.Path == "/metrics" {
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
	method := strings.ToUpper(c.Request.Method)

	httpRequests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
	httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
}

// RecordBid counts a bid submission. result is "accepted" or the rejection reason.
func RecordBid(result string) {
	if result == "" {
		result = "unknown"
	}
	bidsTotal.WithLabelValues(result).Inc()
}

// ObserveRanking records one ranking computation.
func ObserveRanking(duration time.Duration, skipped int) {
	rankingDuration.Observe(duration.Seconds())
	if skipped > 0 {
		rankingSkipped.Add(float64(skipped))
	}
}

func RecordStatusTransition(from, to string) {
	statusTransitions.WithLabelValues(from, to).Inc()
}

func LiveClientConnected() {
	liveClients.Inc()
}

func LiveClientDisconnected() {
	liveClients.Dec()
}

func RecordLiveDrop() {
	liveDropped.Inc()
}
