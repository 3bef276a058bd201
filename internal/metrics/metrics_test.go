package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestOrderCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.OrderPlaced()
	m.OrderPlaced()
	m.NumberCollision()
	m.StatusChanged("completed")

	if got := testutil.ToFloat64(m.ordersPlaced); got != 2 {
		t.Fatalf("expected 2 placed orders, got %v", got)
	}
	if got := testutil.ToFloat64(m.numberCollisions); got != 1 {
		t.Fatalf("expected 1 collision, got %v", got)
	}
	if got := testutil.ToFloat64(m.statusChanges.WithLabelValues("completed")); got != 1 {
		t.Fatalf("expected 1 completed transition, got %v", got)
	}
}

func TestNotificationResults(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Notification("placed", true)
	m.Notification("ready", false)
	m.Notification("ready", false)

	if got := testutil.ToFloat64(m.notifications.WithLabelValues("placed", "sent")); got != 1 {
		t.Fatalf("expected 1 sent placed notification, got %v", got)
	}
	if got := testutil.ToFloat64(m.notifications.WithLabelValues("ready", "failed")); got != 2 {
		t.Fatalf("expected 2 failed ready notifications, got %v", got)
	}
}

func TestBacklogGauges(t *testing.T) {
	m := New(prometheus.NewRegistry())
	statuses := []string{"pending", "in_progress", "completed"}

	m.SetBacklog(map[string]int{"pending": 4, "completed": 9}, statuses)
	if got := testutil.ToFloat64(m.backlog.WithLabelValues("pending")); got != 4 {
		t.Fatalf("expected 4 pending, got %v", got)
	}
	if got := testutil.ToFloat64(m.backlog.WithLabelValues("in_progress")); got != 0 {
		t.Fatalf("expected 0 in progress, got %v", got)
	}

	m.SetBacklog(map[string]int{}, statuses)
	if got := testutil.ToFloat64(m.backlog.WithLabelValues("pending")); got != 0 {
		t.Fatalf("expected pending reset, got %v", got)
	}

	m.SetOldestPendingAge(90 * time.Second)
	if got := testutil.ToFloat64(m.oldestPending); got != 90 {
		t.Fatalf("expected 90s, got %v", got)
	}
	m.SetOldestPendingAge(-time.Second)
	if got := testutil.ToFloat64(m.oldestPending); got != 0 {
		t.Fatalf("expected negative age clamped, got %v", got)
	}
}

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("GET", "/api/orders", 200, 10*time.Millisecond)
	m.ObserveRequest("GET", "", 404, time.Millisecond)

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/orders", "200")); got != 1 {
		t.Fatalf("expected 1 request, got %v", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Fatalf("expected unmatched route label, got %v", got)
	}
	if got := testutil.CollectAndCount(m.httpDuration); got != 2 {
		t.Fatalf("expected 2 duration series, got %d", got)
	}
}

func TestNewReusesRegisteredCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := New(registry)
	second := New(registry)

	first.OrderPlaced()
	if got := testutil.ToFloat64(second.ordersPlaced); got != 1 {
		t.Fatalf("expected shared counter, got %v", got)
	}
}

func TestNewRegistryGathers(t *testing.T) {
	registry := newRegistry()
	New(registry).OrderPlaced()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "foodorder_orders_placed_total" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected service metric in registry")
	}
}
