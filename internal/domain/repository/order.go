package repository

import (
	"context"
	"time"

	"github.com/polkiloo/foodorder/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create stores the order and fills its ID. A taken number yields ErrAlreadyExists.
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	NumberExists(ctx context.Context, number string) (bool, error)
	ListByStatus(ctx context.Context, statuses []model.OrderStatus) ([]model.Order, error)
	// ListDisplay returns active orders together with orders completed since the given time.
	ListDisplay(ctx context.Context, completedSince time.Time) ([]model.Order, error)
	ListCompleted(ctx context.Context, limit int) ([]model.Order, error)
	// UpdateStatus moves the order from one status to another. It returns ErrStatusConflict
	// when the stored status no longer matches from.
	UpdateStatus(ctx context.Context, id int64, from, to model.OrderStatus, completedAt *time.Time) error
	CountByStatus(ctx context.Context) (map[model.OrderStatus]int, error)
	OldestPendingTime(ctx context.Context) (*time.Time, error)
}
