package handlers

import (
	"context"

	"github.com/polkiloo/foodorder/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	OrderByNumber(ctx context.Context, number string) (*model.Order, error)
	ActiveOrders(ctx context.Context, includeRecent bool) ([]model.Order, error)
	DisplayOrders(ctx context.Context) ([]model.DisplayOrder, error)
	OrderHistory(ctx context.Context) ([]model.Order, error)
}

// MenuFacade provides menu catalog operations.
type MenuFacade interface {
	ActiveMenu(ctx context.Context) ([]model.MenuItem, error)
	AllMenuItems(ctx context.Context) ([]model.MenuItem, error)
	CreateMenuItem(ctx context.Context, draft model.MenuItemDraft) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, draft model.MenuItemDraft) (*model.MenuItem, error)
	ToggleMenuItem(ctx context.Context, id int64) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
}

// StaffFacade describes staff session capabilities required by handlers.
type StaffFacade interface {
	StaffLogin(ctx context.Context, password string) (string, error)
	AuthorizeStaff(token string) error
}

// HealthFacade reports readiness of backing services.
type HealthFacade interface {
	Ready(ctx context.Context) error
}

// OrderingFacade aggregates the full set of operations used across handlers.
type OrderingFacade interface {
	OrderFacade
	MenuFacade
	StaffFacade
	HealthFacade
}
