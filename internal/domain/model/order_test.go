package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"requested", OrderStatusRequested, "requested"},
		{"failed payment", OrderStatusFailedPayment, "failed_payment"},
		{"paid", OrderStatusPaid, "paid"},
		{"prepared product", OrderStatusPreparedProduct, "prepared_product"},
		{"shipped", OrderStatusShipped, "shipped"},
		{"delivered", OrderStatusDelivered, "delivered"},
		{"canceled", OrderStatusCanceled, "canceled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestOrderCanPay(t *testing.T) {
	cases := []struct {
		status  OrderStatus
		payable bool
	}{
		{OrderStatusRequested, true},
		{OrderStatusFailedPayment, true},
		{OrderStatusPaid, false},
		{OrderStatusPreparedProduct, false},
		{OrderStatusShipped, false},
		{OrderStatusDelivered, false},
		{OrderStatusCanceled, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			order := Order{Status: tc.status}
			if order.CanPay() != tc.payable {
				t.Fatalf("CanPay() for %s: expected %v", tc.status, tc.payable)
			}
		})
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusRequested, OrderStatusPaid, true},
		{OrderStatusRequested, OrderStatusFailedPayment, true},
		{OrderStatusRequested, OrderStatusCanceled, true},
		{OrderStatusRequested, OrderStatusShipped, false},
		{OrderStatusFailedPayment, OrderStatusPaid, true},
		{OrderStatusPaid, OrderStatusPreparedProduct, true},
		{OrderStatusPaid, OrderStatusRequested, false},
		{OrderStatusPreparedProduct, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusDelivered, OrderStatusCanceled, false},
		{OrderStatusCanceled, OrderStatusRequested, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusDelivered, OrderStatusCanceled} {
		if !status.Terminal() {
			t.Fatalf("expected %s to be terminal", status)
		}
	}
	for _, status := range []OrderStatus{OrderStatusRequested, OrderStatusPaid, OrderStatusShipped} {
		if status.Terminal() {
			t.Fatalf("expected %s to be non-terminal", status)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	if !OrderStatusRequested.Valid() {
		t.Fatal("expected requested to be valid")
	}
	if OrderStatus("bogus").Valid() {
		t.Fatal("expected bogus status to be invalid")
	}
}

func TestOrderName(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		order := Order{}
		if order.Name() != emptyOrderName {
			t.Fatalf("unexpected name: %q", order.Name())
		}
	})

	t.Run("single line", func(t *testing.T) {
		order := Order{Lines: []OrderLine{{Name: "커피 원두"}}}
		if order.Name() != "커피 원두" {
			t.Fatalf("unexpected name: %q", order.Name())
		}
	})

	t.Run("multiple lines", func(t *testing.T) {
		order := Order{Lines: []OrderLine{{Name: "커피 원두"}, {Name: "머그컵"}, {Name: "드리퍼"}}}
		if order.Name() != "커피 원두 외 2건" {
			t.Fatalf("unexpected name: %q", order.Name())
		}
	})
}

func TestOrderLineAmount(t *testing.T) {
	line := OrderLine{Price: 1000, Quantity: 3}
	if line.Amount() != 3000 {
		t.Fatalf("unexpected amount: %d", line.Amount())
	}
}
