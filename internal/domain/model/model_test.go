package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "pending"},
		{"in progress", OrderStatusInProgress, "in_progress"},
		{"completed", OrderStatusCompleted, "completed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, raw := range []string{"pending", "in_progress", "completed"} {
		if _, ok := ParseOrderStatus(raw); !ok {
			t.Fatalf("expected %q to parse", raw)
		}
	}
	for _, raw := range []string{"", "PENDING", "done", "cancelled"} {
		if _, ok := ParseOrderStatus(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestOrderStatusIsActive(t *testing.T) {
	if !OrderStatusPending.IsActive() || !OrderStatusInProgress.IsActive() {
		t.Fatal("pending and in_progress must be active")
	}
	if OrderStatusCompleted.IsActive() {
		t.Fatal("completed must not be active")
	}
}

func TestOrderHasPhone(t *testing.T) {
	empty := ""
	phone := "555-1234"
	cases := []struct {
		phone *string
		want  bool
	}{
		{nil, false},
		{&empty, false},
		{&phone, true},
	}
	for _, tc := range cases {
		o := Order{CustomerPhone: tc.phone}
		if got := o.HasPhone(); got != tc.want {
			t.Fatalf("expected %v, got %v", tc.want, got)
		}
	}
}
