package test

import "sync"

// OrderMetricsStub counts order flow events.
type OrderMetricsStub struct {
	mu            sync.Mutex
	Placed        int
	Collisions    int
	StatusChanges map[string]int
	Notifications map[string]int
}

func (m *OrderMetricsStub) OrderPlaced() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Placed++
}

func (m *OrderMetricsStub) NumberCollision() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Collisions++
}

func (m *OrderMetricsStub) StatusChanged(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StatusChanges == nil {
		m.StatusChanges = make(map[string]int)
	}
	m.StatusChanges[status]++
}

// Notification records results under "kind/sent" or "kind/failed".
func (m *OrderMetricsStub) Notification(kind string, delivered bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Notifications == nil {
		m.Notifications = make(map[string]int)
	}
	result := "failed"
	if delivered {
		result = "sent"
	}
	m.Notifications[kind+"/"+result]++
}
