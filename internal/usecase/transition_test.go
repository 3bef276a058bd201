package usecase

import (
	"testing"

	"github.com/polkiloo/foodorder/internal/domain/model"
)

func TestCanTransition(t *testing.T) {
	pending, inProgress, completed := model.OrderStatusPending, model.OrderStatusInProgress, model.OrderStatusCompleted

	cases := []struct {
		from, to model.OrderStatus
		want     bool
	}{
		{pending, inProgress, true},
		{pending, completed, true},
		{inProgress, completed, true},
		{pending, pending, false},
		{inProgress, inProgress, false},
		{inProgress, pending, false},
		{completed, pending, false},
		{completed, inProgress, false},
		{completed, completed, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
