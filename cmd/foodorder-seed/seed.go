package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/polkiloo/foodorder/internal/domain/model"
)

// MenuStore is the part of the menu use case the seeder writes through.
type MenuStore interface {
	AllItems(ctx context.Context) ([]model.MenuItem, error)
	Create(ctx context.Context, in model.MenuItemDraft) (*model.MenuItem, error)
}

// OrderStore is the part of the order use case the seeder writes through.
type OrderStore interface {
	Place(ctx context.Context, in model.OrderDraft) (*model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}

// Seeder fills an empty installation with sample data.
type Seeder struct {
	menu   MenuStore
	orders OrderStore
	out    io.Writer
	logger *slog.Logger
}

func NewSeeder(menu MenuStore, orders OrderStore, out io.Writer, logger *slog.Logger) *Seeder {
	return &Seeder{menu: menu, orders: orders, out: out, logger: logger}
}

// SeedMenu writes the sample menu unless items already exist or force is set.
// It returns the number of created items.
func (s *Seeder) SeedMenu(ctx context.Context, force bool) (int, error) {
	existing, err := s.menu.AllItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("list menu: %w", err)
	}
	if len(existing) > 0 && !force {
		fmt.Fprintf(s.out, "menu already has %d items, skipping\n", len(existing))
		return 0, nil
	}

	created := 0
	for _, draft := range sampleMenu {
		item, err := s.menu.Create(ctx, draft)
		if err != nil {
			return created, fmt.Errorf("create %q: %w", draft.Name, err)
		}
		created++
		fmt.Fprintf(s.out, "added %s (%s) %s\n", item.Name, item.Category, item.BasePrice.StringFixed(2))
	}
	s.logger.Info("menu seeded", slog.Int("items", created))
	return created, nil
}

// SeedOrders places count demo orders built from the active menu and moves
// each one to the status of its demo customer.
func (s *Seeder) SeedOrders(ctx context.Context, count int) ([]model.Order, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	items, err := s.menu.AllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	items = activeOnly(items)
	if len(items) == 0 {
		return nil, fmt.Errorf("menu is empty, run the menu command first")
	}

	placed := make([]model.Order, 0, count)
	for i := 0; i < count; i++ {
		customer := demoCustomers[i%len(demoCustomers)]
		order, err := s.orders.Place(ctx, demoDraft(customer, items, i))
		if err != nil {
			return placed, fmt.Errorf("place demo order %d: %w", i+1, err)
		}
		if order, err = s.advance(ctx, order, customer.Status); err != nil {
			return placed, err
		}
		placed = append(placed, *order)
		fmt.Fprintf(s.out, "order %s for %s: %s (%s)\n",
			order.Number, order.CustomerName, order.TotalPrice.StringFixed(2), order.Status)
	}
	s.logger.Info("demo orders placed", slog.Int("orders", len(placed)))
	return placed, nil
}

func (s *Seeder) advance(ctx context.Context, order *model.Order, target model.OrderStatus) (*model.Order, error) {
	var steps []model.OrderStatus
	switch target {
	case model.OrderStatusInProgress:
		steps = []model.OrderStatus{model.OrderStatusInProgress}
	case model.OrderStatusCompleted:
		steps = []model.OrderStatus{model.OrderStatusInProgress, model.OrderStatusCompleted}
	}
	for _, step := range steps {
		next, err := s.orders.UpdateStatus(ctx, order.ID, step)
		if err != nil {
			return nil, fmt.Errorf("move order %s to %s: %w", order.Number, step, err)
		}
		order = next
	}
	return order, nil
}

func activeOnly(items []model.MenuItem) []model.MenuItem {
	out := items[:0:0]
	for _, item := range items {
		if item.Active {
			out = append(out, item)
		}
	}
	return out
}

// demoDraft picks one to three menu items for the n-th demo order. The first
// customization of an item is added on odd orders.
func demoDraft(customer demoCustomer, menu []model.MenuItem, n int) model.OrderDraft {
	draft := model.OrderDraft{CustomerName: customer.Name, CustomerPhone: customer.Phone}
	for j := 0; j < n%3+1; j++ {
		item := menu[(n+j*3)%len(menu)]
		line := model.LineItemDraft{Name: item.Name, Price: item.BasePrice, Quantity: 1}
		if n%2 == 1 && len(item.Customizations) > 0 {
			extra := item.Customizations[0]
			line.Customizations = []string{extra.Name}
			line.Price = line.Price.Add(extra.Price)
		}
		draft.DetailedItems = append(draft.DetailedItems, line)
	}
	return draft
}
