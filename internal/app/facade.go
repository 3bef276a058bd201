package app

import (
	"context"

	"github.com/polkiloo/foodorder/internal/domain/model"
	"github.com/polkiloo/foodorder/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// OrderingFacade is the single entry point used by the HTTP layer and background workers.
type OrderingFacade struct {
	orders *usecase.OrderUseCase
	menu   *usecase.MenuUseCase
	staff  *usecase.StaffUseCase
	health HealthChecker
}

func NewOrderingFacade(orders *usecase.OrderUseCase, menu *usecase.MenuUseCase, staff *usecase.StaffUseCase, health HealthChecker) *OrderingFacade {
	return &OrderingFacade{orders: orders, menu: menu, staff: staff, health: health}
}

func (f *OrderingFacade) PlaceOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	return f.orders.Place(ctx, draft)
}

func (f *OrderingFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *OrderingFacade) OrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	return f.orders.ByNumber(ctx, number)
}

func (f *OrderingFacade) ActiveOrders(ctx context.Context, includeRecent bool) ([]model.Order, error) {
	if includeRecent {
		return f.orders.ActiveWithRecent(ctx)
	}
	return f.orders.Active(ctx)
}

func (f *OrderingFacade) DisplayOrders(ctx context.Context) ([]model.DisplayOrder, error) {
	return f.orders.Display(ctx)
}

func (f *OrderingFacade) OrderHistory(ctx context.Context) ([]model.Order, error) {
	return f.orders.History(ctx)
}

func (f *OrderingFacade) OrderBacklog(ctx context.Context) (*model.Backlog, error) {
	return f.orders.Backlog(ctx)
}

func (f *OrderingFacade) ActiveMenu(ctx context.Context) ([]model.MenuItem, error) {
	return f.menu.ActiveItems(ctx)
}

func (f *OrderingFacade) AllMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	return f.menu.AllItems(ctx)
}

func (f *OrderingFacade) CreateMenuItem(ctx context.Context, draft model.MenuItemDraft) (*model.MenuItem, error) {
	return f.menu.Create(ctx, draft)
}

func (f *OrderingFacade) UpdateMenuItem(ctx context.Context, id int64, draft model.MenuItemDraft) (*model.MenuItem, error) {
	return f.menu.Update(ctx, id, draft)
}

func (f *OrderingFacade) ToggleMenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	return f.menu.Toggle(ctx, id)
}

func (f *OrderingFacade) DeleteMenuItem(ctx context.Context, id int64) error {
	return f.menu.Delete(ctx, id)
}

func (f *OrderingFacade) StaffLogin(ctx context.Context, password string) (string, error) {
	return f.staff.Login(ctx, password)
}

func (f *OrderingFacade) AuthorizeStaff(token string) error {
	return f.staff.Authorize(token)
}

// Ready pings the store.
func (f *OrderingFacade) Ready(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
