package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/foodorder/internal/domain/errors"
	"github.com/polkiloo/foodorder/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn   func(context.Context, model.OrderDraft) (*model.Order, error)
	UpdateFn  func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	ByNumFn   func(context.Context, string) (*model.Order, error)
	ActiveFn  func(context.Context, bool) ([]model.Order, error)
	DisplayFn func(context.Context) ([]model.DisplayOrder, error)
	HistoryFn func(context.Context) ([]model.Order, error)
}

// PlaceOrder delegates to provided function or echoes the draft as a pending order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, draft)
	}
	return &model.Order{
		ID:           1,
		Number:       "AB12CD",
		CustomerName: draft.CustomerName,
		Items:        draft.Items,
		TotalPrice:   draft.TotalPrice,
		Status:       model.OrderStatusPending,
		OrderTime:    time.Unix(0, 0).UTC(),
	}, nil
}

// UpdateOrderStatus returns the order with the requested status.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, status)
	}
	return &model.Order{ID: id, Number: "AB12CD", Status: status}, nil
}

// OrderByNumber returns a pending order for any number.
func (s OrderFacadeStub) OrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.ByNumFn != nil {
		return s.ByNumFn(ctx, number)
	}
	return &model.Order{ID: 1, Number: number, Status: model.OrderStatusPending}, nil
}

// ActiveOrders returns predefined active orders.
func (s OrderFacadeStub) ActiveOrders(ctx context.Context, includeRecent bool) ([]model.Order, error) {
	if s.ActiveFn != nil {
		return s.ActiveFn(ctx, includeRecent)
	}
	return []model.Order{{ID: 1, Number: "AB12CD", Status: model.OrderStatusPending}}, nil
}

// DisplayOrders returns predefined display entries.
func (s OrderFacadeStub) DisplayOrders(ctx context.Context) ([]model.DisplayOrder, error) {
	if s.DisplayFn != nil {
		return s.DisplayFn(ctx)
	}
	return []model.DisplayOrder{{Order: model.Order{ID: 1, Number: "AB12CD", Status: model.OrderStatusPending}, TimeInfo: "0 min ago"}}, nil
}

// OrderHistory returns predefined completed orders.
func (s OrderFacadeStub) OrderHistory(ctx context.Context) ([]model.Order, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx)
	}
	return nil, nil
}

// MenuFacadeStub simulates menu catalog operations.
type MenuFacadeStub struct {
	ActiveFn func(context.Context) ([]model.MenuItem, error)
	AllFn    func(context.Context) ([]model.MenuItem, error)
	CreateFn func(context.Context, model.MenuItemDraft) (*model.MenuItem, error)
	UpdateFn func(context.Context, int64, model.MenuItemDraft) (*model.MenuItem, error)
	ToggleFn func(context.Context, int64) (*model.MenuItem, error)
	DeleteFn func(context.Context, int64) error
}

func (s MenuFacadeStub) ActiveMenu(ctx context.Context) ([]model.MenuItem, error) {
	if s.ActiveFn != nil {
		return s.ActiveFn(ctx)
	}
	return []model.MenuItem{{ID: 1, Name: "Burger", Category: "Mains", Active: true}}, nil
}

func (s MenuFacadeStub) AllMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	if s.AllFn != nil {
		return s.AllFn(ctx)
	}
	return s.ActiveMenu(ctx)
}

func (s MenuFacadeStub) CreateMenuItem(ctx context.Context, draft model.MenuItemDraft) (*model.MenuItem, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, draft)
	}
	return &model.MenuItem{ID: 1, Name: draft.Name, Category: draft.Category, BasePrice: draft.BasePrice, Active: true}, nil
}

func (s MenuFacadeStub) UpdateMenuItem(ctx context.Context, id int64, draft model.MenuItemDraft) (*model.MenuItem, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, draft)
	}
	return &model.MenuItem{ID: id, Name: draft.Name, Category: draft.Category, BasePrice: draft.BasePrice, Active: true}, nil
}

func (s MenuFacadeStub) ToggleMenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.ToggleFn != nil {
		return s.ToggleFn(ctx, id)
	}
	return &model.MenuItem{ID: id, Active: false}, nil
}

func (s MenuFacadeStub) DeleteMenuItem(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// StaffFacadeStub accepts Password and the "token" session by default.
type StaffFacadeStub struct {
	Password    string
	LoginFn     func(context.Context, string) (string, error)
	AuthorizeFn func(string) error
}

func (s StaffFacadeStub) StaffLogin(ctx context.Context, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, password)
	}
	if password != s.Password {
		return "", domainErrors.ErrUnauthorized
	}
	return "token", nil
}

func (s StaffFacadeStub) AuthorizeStaff(token string) error {
	if s.AuthorizeFn != nil {
		return s.AuthorizeFn(token)
	}
	if token != "token" {
		return domainErrors.ErrUnauthorized
	}
	return nil
}

// OrderingFacadeStub aggregates facade dependencies for HTTP layer tests.
type OrderingFacadeStub struct {
	OrderFacadeStub
	MenuFacadeStub
	StaffFacadeStub
	ReadyErr error
}

// Ready reports the configured health check result.
func (s OrderingFacadeStub) Ready(context.Context) error {
	return s.ReadyErr
}

// BacklogFacadeStub returns a fixed backlog snapshot.
type BacklogFacadeStub struct {
	mu      sync.Mutex
	Backlog *model.Backlog
	Err     error
	Calls   int
}

func (s *BacklogFacadeStub) OrderBacklog(context.Context) (*model.Backlog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Backlog == nil {
		return &model.Backlog{Counts: map[model.OrderStatus]int{}}, nil
	}
	return s.Backlog, nil
}

// BacklogGaugesStub records the last published backlog.
type BacklogGaugesStub struct {
	mu       sync.Mutex
	counts   map[string]int
	statuses []string
	age      time.Duration
	samples  int
}

func (g *BacklogGaugesStub) SetBacklog(counts map[string]int, statuses []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counts = counts
	g.statuses = statuses
	g.samples++
}

func (g *BacklogGaugesStub) SetOldestPendingAge(age time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.age = age
}

// Snapshot returns the last published values and the number of backlog samples.
func (g *BacklogGaugesStub) Snapshot() (map[string]int, []string, time.Duration, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counts, g.statuses, g.age, g.samples
}
