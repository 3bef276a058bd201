package usecase

import "github.com/polkiloo/foodorder/internal/domain/model"

var allowedTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:    {model.OrderStatusInProgress, model.OrderStatusCompleted},
	model.OrderStatusInProgress: {model.OrderStatusCompleted},
}

// CanTransition reports whether an order may move from one status to another.
// Completed orders are final and same-status writes are rejected.
func CanTransition(from, to model.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
