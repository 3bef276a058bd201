package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/foodorder/internal/domain/model"
)

// BacklogFacade exposes the subset of application functionality required by the monitor.
type BacklogFacade interface {
	OrderBacklog(ctx context.Context) (*model.Backlog, error)
}

// BacklogGauges receives the sampled backlog.
type BacklogGauges interface {
	SetBacklog(counts map[string]int, statuses []string)
	SetOldestPendingAge(age time.Duration)
}

// BacklogMonitor periodically samples the order queue and publishes it as gauges.
type BacklogMonitor struct {
	facade   BacklogFacade
	gauges   BacklogGauges
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewBacklogMonitor constructs the monitor. Non-positive intervals default to 30s.
func NewBacklogMonitor(facade BacklogFacade, gauges BacklogGauges, interval time.Duration, logger *slog.Logger) *BacklogMonitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &BacklogMonitor{
		facade:   facade,
		gauges:   gauges,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Start samples once and then keeps sampling on every tick until Stop.
func (m *BacklogMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.cancel = cancel

	m.wg.Add(1)
	go m.run(runCtx)
}

// Stop terminates sampling and waits for the loop to exit.
func (m *BacklogMonitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *BacklogMonitor) run(ctx context.Context) {
	defer m.wg.Done()
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.sample(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sample(ctx)
		}
	}
}

func (m *BacklogMonitor) sample(ctx context.Context) {
	backlog, err := m.facade.OrderBacklog(ctx)
	if err != nil {
		if ctx.Err() == nil {
			m.logger.Error("sample order backlog failed", slog.String("error", err.Error()))
		}
		return
	}

	counts := make(map[string]int, len(backlog.Counts))
	for status, n := range backlog.Counts {
		counts[string(status)] = n
	}
	statuses := make([]string, 0, len(model.AllStatuses))
	for _, s := range model.AllStatuses {
		statuses = append(statuses, string(s))
	}
	m.gauges.SetBacklog(counts, statuses)

	var age time.Duration
	if backlog.OldestPending != nil {
		age = m.now().Sub(*backlog.OldestPending)
	}
	m.gauges.SetOldestPendingAge(age)

	if pending := counts[string(model.OrderStatusPending)]; pending > 0 {
		m.logger.Debug("order backlog sampled",
			slog.Int("pending", pending),
			slog.Int("in_progress", counts[string(model.OrderStatusInProgress)]),
			slog.Duration("oldest_pending_age", age))
	}
}
