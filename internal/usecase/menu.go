package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/polkiloo/foodorder/internal/config"
	"github.com/polkiloo/foodorder/internal/domain/model"
	"github.com/polkiloo/foodorder/internal/domain/repository"
)

const activeMenuKey = "menu:active"

// MenuUseCase manages the menu catalog. Active listings are cached.
type MenuUseCase struct {
	menu   repository.MenuRepository
	cache  *cache.Cache
	logger *slog.Logger
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(menu repository.MenuRepository, cfg *config.Config, logger *slog.Logger) *MenuUseCase {
	ttl := cfg.MenuCacheTTL
	return &MenuUseCase{
		menu:   menu,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// ActiveItems lists items offered to customers by category then name.
func (u *MenuUseCase) ActiveItems(ctx context.Context) ([]model.MenuItem, error) {
	if cached, ok := u.cache.Get(activeMenuKey); ok {
		return cached.([]model.MenuItem), nil
	}
	items, err := u.menu.List(ctx, true)
	if err != nil {
		return nil, err
	}
	u.cache.SetDefault(activeMenuKey, items)
	return items, nil
}

// AllItems lists every item including inactive ones.
func (u *MenuUseCase) AllItems(ctx context.Context) ([]model.MenuItem, error) {
	return u.menu.List(ctx, false)
}

func (u *MenuUseCase) Create(ctx context.Context, in model.MenuItemDraft) (*model.MenuItem, error) {
	item, err := buildMenuItem(in)
	if err != nil {
		return nil, err
	}
	item.Active = true
	if err := u.menu.Create(ctx, item); err != nil {
		return nil, err
	}
	u.invalidate()
	u.logger.Info("menu item created", slog.Int64("menu_item_id", item.ID), slog.String("name", item.Name))
	return item, nil
}

func (u *MenuUseCase) Update(ctx context.Context, id int64, in model.MenuItemDraft) (*model.MenuItem, error) {
	item, err := buildMenuItem(in)
	if err != nil {
		return nil, err
	}
	item.ID = id
	if err := u.menu.Update(ctx, item); err != nil {
		return nil, err
	}
	u.invalidate()
	return item, nil
}

// Toggle flips the item's availability.
func (u *MenuUseCase) Toggle(ctx context.Context, id int64) (*model.MenuItem, error) {
	item, err := u.menu.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.menu.SetActive(ctx, id, !item.Active); err != nil {
		return nil, err
	}
	item.Active = !item.Active
	item.UpdatedAt = time.Now().UTC()
	u.invalidate()
	u.logger.Info("menu item toggled", slog.Int64("menu_item_id", id), slog.Bool("active", item.Active))
	return item, nil
}

func (u *MenuUseCase) Delete(ctx context.Context, id int64) error {
	if err := u.menu.Delete(ctx, id); err != nil {
		return err
	}
	u.invalidate()
	u.logger.Info("menu item deleted", slog.Int64("menu_item_id", id))
	return nil
}

func (u *MenuUseCase) invalidate() {
	u.cache.Delete(activeMenuKey)
}

func buildMenuItem(in model.MenuItemDraft) (*model.MenuItem, error) {
	in.Name = sanitize(in.Name)
	in.Category = sanitize(in.Category)
	in.Description = sanitize(in.Description)
	in.ImageURL = sanitize(in.ImageURL)
	for i := range in.Customizations {
		in.Customizations[i].Name = sanitize(in.Customizations[i].Name)
	}

	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := validatePrice("base price", in.BasePrice); err != nil {
		return nil, err
	}

	item := &model.MenuItem{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		BasePrice:   in.BasePrice.Round(2),
		ImageURL:    in.ImageURL,
	}
	for _, c := range in.Customizations {
		if err := validatePrice("customization price", c.Price); err != nil {
			return nil, err
		}
		item.Customizations = append(item.Customizations, model.Customization{Name: c.Name, Price: c.Price.Round(2)})
	}
	return item, nil
}
