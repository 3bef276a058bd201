package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes kitchen lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

// ActiveStatuses lists statuses shown on the worker dashboard.
var ActiveStatuses = []OrderStatus{OrderStatusPending, OrderStatusInProgress}

// AllStatuses lists every known status in lifecycle order.
var AllStatuses = []OrderStatus{OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted}

// ParseOrderStatus converts raw input to a known status.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch s := OrderStatus(raw); s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted:
		return s, true
	default:
		return "", false
	}
}

// IsActive reports whether the order still needs kitchen attention.
func (s OrderStatus) IsActive() bool {
	return s == OrderStatusPending || s == OrderStatusInProgress
}

// LineItem is a single structured position of an order.
type LineItem struct {
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Customizations []string        `json:"customizations,omitempty"`
}

// Order describes a customer's food order.
type Order struct {
	ID            int64
	Number        string
	CustomerName  string
	CustomerPhone *string
	Items         string
	DetailedItems []LineItem
	TotalPrice    decimal.Decimal
	Status        OrderStatus
	OrderTime     time.Time
	CompletedAt   *time.Time
}

// HasPhone reports whether the customer left a phone for notifications.
func (o *Order) HasPhone() bool {
	return o.CustomerPhone != nil && *o.CustomerPhone != ""
}

// DisplayOrder is an order enriched with data derived at query time.
type DisplayOrder struct {
	Order
	TimeInfo string
}

// Backlog is a point-in-time view of the order queue.
type Backlog struct {
	Counts        map[OrderStatus]int
	OldestPending *time.Time
}
