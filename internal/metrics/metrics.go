package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "foodorder"

// Metrics holds collectors for order flow, notifications, backlog and HTTP traffic.
type Metrics struct {
	ordersPlaced     prometheus.Counter
	numberCollisions prometheus.Counter
	statusChanges    *prometheus.CounterVec
	notifications    *prometheus.CounterVec

	backlog       *prometheus.GaugeVec
	oldestPending prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers collectors in the given registerer. Repeated registration reuses
// existing collectors.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		ordersPlaced: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Total number of orders accepted.",
		})),
		numberCollisions: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_number_collisions_total",
			Help:      "Generated order numbers that were already taken.",
		})),
		statusChanges: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_changes_total",
			Help:      "Status transitions applied, by target status.",
		}, []string{"status"})),
		notifications: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Customer notifications by kind and result.",
		}, []string{"kind", "result"})),
		backlog: register(registerer, prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders",
			Help:      "Number of stored orders by status.",
		}, []string{"status"})),
		oldestPending: register(registerer, prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "oldest_pending_order_age_seconds",
			Help:      "Age of the oldest pending order, zero when none are waiting.",
		})),
		httpRequests: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed.",
		}, []string{"method", "route", "status"})),
		httpDuration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Request latency in seconds.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "route"})),
	}
}

func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) T {
	if err := registerer.Register(collector); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := already.ExistingCollector.(T)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type %T", already.ExistingCollector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}

func (m *Metrics) OrderPlaced() {
	m.ordersPlaced.Inc()
}

func (m *Metrics) NumberCollision() {
	m.numberCollisions.Inc()
}

func (m *Metrics) StatusChanged(status string) {
	m.statusChanges.WithLabelValues(status).Inc()
}

// Notification records a notification attempt; kind is "placed" or "ready".
func (m *Metrics) Notification(kind string, delivered bool) {
	result := "failed"
	if delivered {
		result = "sent"
	}
	m.notifications.WithLabelValues(kind, result).Inc()
}

// SetBacklog publishes per-status counts. Statuses missing from counts are reset to zero.
func (m *Metrics) SetBacklog(counts map[string]int, statuses []string) {
	for _, s := range statuses {
		m.backlog.WithLabelValues(s).Set(float64(counts[s]))
	}
}

func (m *Metrics) SetOldestPendingAge(age time.Duration) {
	if age < 0 {
		age = 0
	}
	m.oldestPending.Set(age.Seconds())
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, fmt.Sprint(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
