package entities

import "testing"

func TestOrderStatusIsTerminal(t *testing.T) {
	if OrderStatusPending.IsTerminal() {
		t.Fatal("pending must not be terminal")
	}
	if !OrderStatusApproved.IsTerminal() {
		t.Fatal("approved must be terminal")
	}
	if !OrderStatusRejected.IsTerminal() {
		t.Fatal("rejected must be terminal")
	}
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to approved", OrderStatusPending, OrderStatusApproved, true},
		{"pending to rejected", OrderStatusPending, OrderStatusRejected, true},
		{"pending to pending", OrderStatusPending, OrderStatusPending, true},
		{"approved to approved", OrderStatusApproved, OrderStatusApproved, true},
		{"approved to rejected", OrderStatusApproved, OrderStatusRejected, false},
		{"approved to pending", OrderStatusApproved, OrderStatusPending, false},
		{"rejected to approved", OrderStatusRejected, OrderStatusApproved, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
				t.Fatalf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestPlanValid(t *testing.T) {
	if !PlanBasic.Valid() || !PlanComplete.Valid() {
		t.Fatal("known plans must be valid")
	}
	if Plan("premium").Valid() {
		t.Fatal("unknown plan must be invalid")
	}
}
