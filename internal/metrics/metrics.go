package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paircode",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received",
	}, []string{"method", "path", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "paircode",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "paircode",
		Name:      "http_in_flight_requests",
		Help:      "Current number of in-flight HTTP requests",
	})

	activeRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "paircode",
		Name:      "active_rooms",
		Help:      "Rooms with at least one live connection",
	})

	connectedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "paircode",
		Name:      "connected_clients",
		Help:      "Live WebSocket connections across all rooms",
	})

	// EditsApplied counts code updates accepted into the document cache.
	EditsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "paircode",
		Name:      "edits_applied_total",
		Help:      "Code updates applied to the in-memory document cache",
	})

	// BroadcastFailures counts recipients dropped during fan-out.
	BroadcastFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "paircode",
		Name:      "broadcast_failures_total",
		Help:      "Fan-out deliveries that failed and removed the recipient",
	})

	// StoreWriteFailures counts write-behind persistence errors.
	StoreWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "paircode",
		Name:      "store_write_failures_total",
		Help:      "Room store writes that failed after an in-memory update",
	})
)

// SetSessionGauges records the current room and connection counts.
func SetSessionGauges(rooms, clients int) {
	activeRooms.Set(float64(rooms))
	connectedClients.Set(float64(clients))
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack keeps WebSocket upgrades working behind the middleware.
func (r *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if h, ok := r.ResponseWriter.(http.Hijacker); ok {
		return h.Hijack()
	}
	return nil, nil, fmt.Errorf("metrics: underlying ResponseWriter does not support hijacking")
}

// Middleware records request metrics with Prometheus labels.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		labels := prometheus.Labels{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": strconv.Itoa(rec.status),
		}
		httpRequests.With(labels).Inc()
		httpLatency.With(labels).Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the default Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
