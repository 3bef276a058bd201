package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/foodorder/internal/domain/errors"
	"github.com/polkiloo/foodorder/internal/domain/model"
	"github.com/polkiloo/foodorder/internal/domain/repository"
)

// OrderRepositoryStub keeps orders in memory. Fn fields override the default behaviour.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	Orders map[int64]*model.Order
	Next   int64
	Err    error

	CreateFn       func(context.Context, *model.Order) error
	NumberExistsFn func(context.Context, string) (bool, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, model.OrderStatus, *time.Time) error
}

// NewOrderRepositoryStub constructs stub repository with initialized storage.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), Next: 1}
}

// Put stores an order as is, assigning an ID when missing.
func (s *OrderRepositoryStub) Put(order model.Order) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.init()
	if order.ID == 0 {
		order.ID = s.Next
		s.Next++
	} else if order.ID >= s.Next {
		s.Next = order.ID + 1
	}
	stored := order
	s.Orders[order.ID] = &stored
	return &stored
}

func (s *OrderRepositoryStub) init() {
	if s.Orders == nil {
		s.Orders = make(map[int64]*model.Order)
	}
	if s.Next == 0 {
		s.Next = 1
	}
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.init()
	for _, existing := range s.Orders {
		if existing.Number == order.Number {
			return domainErrors.ErrAlreadyExists
		}
	}
	order.ID = s.Next
	s.Next++
	stored := *order
	s.Orders[order.ID] = &stored
	return nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if o, ok := s.Orders[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, o := range s.Orders {
		if o.Number == number {
			copied := *o
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) NumberExists(ctx context.Context, number string) (bool, error) {
	if s.NumberExistsFn != nil {
		return s.NumberExistsFn(ctx, number)
	}
	_, err := s.GetByNumber(ctx, number)
	switch err {
	case nil:
		return true, nil
	case domainErrors.ErrNotFound:
		return false, nil
	default:
		return false, err
	}
}

func (s *OrderRepositoryStub) selectOrders(keep func(*model.Order) bool, less func(a, b model.Order) bool) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		if keep(o) {
			result = append(result, *o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return less(result[i], result[j]) })
	return result, nil
}

func byOrderTime(a, b model.Order) bool {
	return a.OrderTime.Before(b.OrderTime)
}

func (s *OrderRepositoryStub) ListByStatus(ctx context.Context, statuses []model.OrderStatus) ([]model.Order, error) {
	return s.selectOrders(func(o *model.Order) bool {
		for _, st := range statuses {
			if o.Status == st {
				return true
			}
		}
		return false
	}, byOrderTime)
}

func (s *OrderRepositoryStub) ListDisplay(ctx context.Context, completedSince time.Time) ([]model.Order, error) {
	return s.selectOrders(func(o *model.Order) bool {
		if o.Status.IsActive() {
			return true
		}
		return o.Status == model.OrderStatusCompleted && o.CompletedAt != nil && !o.CompletedAt.Before(completedSince)
	}, byOrderTime)
}

func (s *OrderRepositoryStub) ListCompleted(ctx context.Context, limit int) ([]model.Order, error) {
	result, err := s.selectOrders(func(o *model.Order) bool {
		return o.Status == model.OrderStatusCompleted
	}, func(a, b model.Order) bool {
		return a.CompletedAt != nil && b.CompletedAt != nil && a.CompletedAt.After(*b.CompletedAt)
	})
	if err != nil {
		return nil, err
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, from, to model.OrderStatus, completedAt *time.Time) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, from, to, completedAt)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	o, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if o.Status != from {
		return domainErrors.ErrStatusConflict
	}
	o.Status = to
	o.CompletedAt = completedAt
	return nil
}

func (s *OrderRepositoryStub) CountByStatus(ctx context.Context) (map[model.OrderStatus]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	counts := make(map[model.OrderStatus]int)
	for _, o := range s.Orders {
		counts[o.Status]++
	}
	return counts, nil
}

func (s *OrderRepositoryStub) OldestPendingTime(ctx context.Context) (*time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var oldest *time.Time
	for _, o := range s.Orders {
		if o.Status != model.OrderStatusPending {
			continue
		}
		if oldest == nil || o.OrderTime.Before(*oldest) {
			ts := o.OrderTime
			oldest = &ts
		}
	}
	return oldest, nil
}

// MenuRepositoryStub keeps menu items in memory and counts list calls.
type MenuRepositoryStub struct {
	mu        sync.Mutex
	Items     map[int64]*model.MenuItem
	Next      int64
	Err       error
	ListCalls int
}

func NewMenuRepositoryStub() *MenuRepositoryStub {
	return &MenuRepositoryStub{Items: make(map[int64]*model.MenuItem), Next: 1}
}

func (s *MenuRepositoryStub) Create(ctx context.Context, item *model.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.Items == nil {
		s.Items = make(map[int64]*model.MenuItem)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	item.ID = s.Next
	s.Next++
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = item.CreatedAt
	stored := *item
	s.Items[item.ID] = &stored
	return nil
}

func (s *MenuRepositoryStub) Update(ctx context.Context, item *model.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.Items[item.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	item.Active = existing.Active
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	stored := *item
	s.Items[item.ID] = &stored
	return nil
}

func (s *MenuRepositoryStub) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if item, ok := s.Items[id]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *MenuRepositoryStub) List(ctx context.Context, onlyActive bool) ([]model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.MenuItem
	for _, item := range s.Items {
		if onlyActive && !item.Active {
			continue
		}
		result = append(result, *item)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (s *MenuRepositoryStub) SetActive(ctx context.Context, id int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	item, ok := s.Items[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	item.Active = active
	return nil
}

func (s *MenuRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

var (
	_ repository.OrderRepository = (*OrderRepositoryStub)(nil)
	_ repository.MenuRepository  = (*MenuRepositoryStub)(nil)
)
