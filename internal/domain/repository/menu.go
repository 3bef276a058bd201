package repository

import (
	"context"

	"github.com/polkiloo/foodorder/internal/domain/model"
)

// MenuRepository describes persistence operations with menu items.
type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	Update(ctx context.Context, item *model.MenuItem) error
	GetByID(ctx context.Context, id int64) (*model.MenuItem, error)
	List(ctx context.Context, onlyActive bool) ([]model.MenuItem, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}
