package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/polkiloo/foodorder/internal/adapter/sms"
	"github.com/polkiloo/foodorder/internal/config"
	domainErrors "github.com/polkiloo/foodorder/internal/domain/errors"
	"github.com/polkiloo/foodorder/internal/domain/model"
	"github.com/polkiloo/foodorder/internal/domain/repository"
)

const (
	notificationPlaced = "placed"
	notificationReady  = "ready"
)

// OrderMetrics receives order flow events.
type OrderMetrics interface {
	OrderPlaced()
	NumberCollision()
	StatusChanged(status string)
	Notification(kind string, delivered bool)
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders        repository.OrderRepository
	notifier      sms.Notifier
	metrics       OrderMetrics
	logger        *slog.Logger
	displayWindow time.Duration
	historyLimit  int

	now      func() time.Time
	generate numberGenerator
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	notifier sms.Notifier,
	metrics OrderMetrics,
	cfg *config.Config,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:        orders,
		notifier:      notifier,
		metrics:       metrics,
		logger:        logger,
		displayWindow: cfg.DisplayWindow,
		historyLimit:  cfg.HistoryLimit,
		now:           time.Now,
		generate:      GenerateOrderNumber,
	}
}

// Place validates the input, allocates a unique number and stores a pending order.
// The confirmation text is sent when a phone number is present; delivery problems
// never fail the order.
func (u *OrderUseCase) Place(ctx context.Context, in model.OrderDraft) (*model.Order, error) {
	order, err := u.buildOrder(in)
	if err != nil {
		return nil, err
	}

	if err := u.allocate(ctx, order); err != nil {
		return nil, err
	}

	u.metrics.OrderPlaced()
	u.logger.Info("order placed",
		slog.Int64("order_id", order.ID),
		slog.String("order_number", order.Number),
		slog.String("total", order.TotalPrice.StringFixed(2)))

	if order.HasPhone() {
		msg := fmt.Sprintf("Thank you %s! Your order #%s has been placed. Total: $%s. We'll text you when it's ready!",
			order.CustomerName, order.Number, order.TotalPrice.StringFixed(2))
		u.notify(ctx, notificationPlaced, order, msg)
	}

	return order, nil
}

func (u *OrderUseCase) buildOrder(in model.OrderDraft) (*model.Order, error) {
	in.CustomerName = sanitize(in.CustomerName)
	in.CustomerPhone = sanitize(in.CustomerPhone)
	in.Items = sanitize(in.Items)
	for i := range in.DetailedItems {
		in.DetailedItems[i].Name = sanitize(in.DetailedItems[i].Name)
		in.DetailedItems[i].Customizations = sanitizeAll(in.DetailedItems[i].Customizations)
	}

	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if len(in.DetailedItems) == 0 && in.Items == "" {
		return nil, domainErrors.Invalid("items is required")
	}

	order := &model.Order{
		CustomerName: in.CustomerName,
		Items:        in.Items,
		TotalPrice:   in.TotalPrice,
		Status:       model.OrderStatusPending,
		OrderTime:    u.now().UTC(),
	}
	if in.CustomerPhone != "" {
		phone := in.CustomerPhone
		order.CustomerPhone = &phone
	}

	if len(in.DetailedItems) > 0 {
		order.DetailedItems = make([]model.LineItem, 0, len(in.DetailedItems))
		for _, item := range in.DetailedItems {
			if err := validatePrice("item price", item.Price); err != nil {
				return nil, err
			}
			order.DetailedItems = append(order.DetailedItems, model.LineItem{
				Name:           item.Name,
				Price:          item.Price.Round(2),
				Quantity:       item.Quantity,
				Customizations: item.Customizations,
			})
		}
		order.Items, order.TotalPrice = SummarizeItems(order.DetailedItems)
	}

	if err := validatePrice("total price", order.TotalPrice); err != nil {
		return nil, err
	}
	order.TotalPrice = order.TotalPrice.Round(2)

	return order, nil
}

func (u *OrderUseCase) allocate(ctx context.Context, order *model.Order) error {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number, err := u.generate()
		if err != nil {
			return fmt.Errorf("generate order number: %w", err)
		}

		exists, err := u.orders.NumberExists(ctx, number)
		if err != nil {
			return err
		}
		if exists {
			u.metrics.NumberCollision()
			continue
		}

		order.Number = number
		err = u.orders.Create(ctx, order)
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			u.metrics.NumberCollision()
			continue
		}
		if err != nil {
			return err
		}
		return nil
	}

	u.logger.Error("order number space exhausted", slog.Int("attempts", maxNumberAttempts))
	return domainErrors.ErrOrderNumberExhausted
}

// UpdateStatus moves the order along its lifecycle. Completion stamps the
// completion time and sends the pickup text after the write succeeded.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	to, ok := model.ParseOrderStatus(string(status))
	if !ok {
		return nil, domainErrors.Invalid("invalid status %q", string(status))
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(order.Status, to) {
		return nil, fmt.Errorf("%w: order %s cannot move from %s to %s",
			domainErrors.ErrInvalidTransition, order.Number, order.Status, to)
	}

	var completedAt *time.Time
	if to == model.OrderStatusCompleted {
		ts := u.now().UTC()
		completedAt = &ts
	}

	if err := u.orders.UpdateStatus(ctx, id, order.Status, to, completedAt); err != nil {
		return nil, err
	}

	u.logger.Info("order status updated",
		slog.Int64("order_id", id),
		slog.String("from", string(order.Status)),
		slog.String("to", string(to)))
	order.Status = to
	order.CompletedAt = completedAt
	u.metrics.StatusChanged(string(to))

	if to == model.OrderStatusCompleted && order.HasPhone() {
		msg := fmt.Sprintf("Hi %s! Your order #%s is ready for pickup!", order.CustomerName, order.Number)
		u.notify(ctx, notificationReady, order, msg)
	}

	return order, nil
}

func (u *OrderUseCase) notify(ctx context.Context, kind string, order *model.Order, msg string) {
	delivered := u.notifier.Notify(ctx, *order.CustomerPhone, msg)
	u.metrics.Notification(kind, delivered)
	if !delivered {
		u.logger.Warn("customer notification not delivered",
			slog.String("kind", kind),
			slog.String("order_number", order.Number))
	}
}

// ByNumber returns an order for its confirmation page.
func (u *OrderUseCase) ByNumber(ctx context.Context, number string) (*model.Order, error) {
	if !IsOrderNumber(number) {
		return nil, domainErrors.ErrNotFound
	}
	return u.orders.GetByNumber(ctx, number)
}

// Active returns pending and in-progress orders, oldest first.
func (u *OrderUseCase) Active(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListByStatus(ctx, model.ActiveStatuses)
}

// ActiveWithRecent adds orders completed within the display window to Active.
func (u *OrderUseCase) ActiveWithRecent(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListDisplay(ctx, u.now().UTC().Add(-u.displayWindow))
}

// Display returns the display board entries with elapsed time since placement.
func (u *OrderUseCase) Display(ctx context.Context) ([]model.DisplayOrder, error) {
	now := u.now().UTC()
	orders, err := u.orders.ListDisplay(ctx, now.Add(-u.displayWindow))
	if err != nil {
		return nil, err
	}

	result := make([]model.DisplayOrder, 0, len(orders))
	for _, o := range orders {
		result = append(result, model.DisplayOrder{Order: o, TimeInfo: timeInfo(now, o.OrderTime)})
	}
	return result, nil
}

// History returns completed orders, most recently completed first.
func (u *OrderUseCase) History(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListCompleted(ctx, u.historyLimit)
}

// Backlog counts orders per status and finds the oldest order still waiting.
func (u *OrderUseCase) Backlog(ctx context.Context) (*model.Backlog, error) {
	counts, err := u.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	oldest, err := u.orders.OldestPendingTime(ctx)
	if err != nil {
		return nil, err
	}
	return &model.Backlog{Counts: counts, OldestPending: oldest}, nil
}

func timeInfo(now, placed time.Time) string {
	minutes := int(now.Sub(placed).Minutes())
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d min ago", minutes)
}
