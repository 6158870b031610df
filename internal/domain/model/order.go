package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus describes order lifecycle progress.
type OrderStatus string

const (
	OrderStatusRequested       OrderStatus = "requested"
	OrderStatusFailedPayment   OrderStatus = "failed_payment"
	OrderStatusPaid            OrderStatus = "paid"
	OrderStatusPreparedProduct OrderStatus = "prepared_product"
	OrderStatusShipped         OrderStatus = "shipped"
	OrderStatusDelivered       OrderStatus = "delivered"
	OrderStatusCanceled        OrderStatus = "canceled"
)

// orderTransitions lists allowed status moves. Cancellation is permitted
// from any non-terminal status; delivered and canceled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusRequested:       {OrderStatusPaid, OrderStatusFailedPayment, OrderStatusCanceled},
	OrderStatusFailedPayment:   {OrderStatusPaid, OrderStatusCanceled},
	OrderStatusPaid:            {OrderStatusPreparedProduct, OrderStatusCanceled},
	OrderStatusPreparedProduct: {OrderStatusShipped, OrderStatusCanceled},
	OrderStatusShipped:         {OrderStatusDelivered, OrderStatusCanceled},
	OrderStatusDelivered:       {},
	OrderStatusCanceled:        {},
}

// CanTransitionTo reports whether the status machine allows moving to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// Valid reports whether the status is a known one.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Order is an immutable snapshot of cart contents taken at checkout.
// TotalAmount and lines never change after creation; only status moves.
type Order struct {
	ID          int64
	UID         uuid.UUID
	UserID      int64
	TotalAmount int64
	Status      OrderStatus
	Lines       []OrderLine
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const emptyOrderName = "등록된 상품이 없습니다."

// Name builds a human-readable order summary from its first line.
func (o *Order) Name() string {
	if len(o.Lines) == 0 {
		return emptyOrderName
	}
	if len(o.Lines) == 1 {
		return o.Lines[0].Name
	}
	return fmt.Sprintf("%s 외 %d건", o.Lines[0].Name, len(o.Lines)-1)
}

// CanPay reports whether a new payment attempt is allowed.
func (o *Order) CanPay() bool {
	return o.Status == OrderStatusRequested || o.Status == OrderStatusFailedPayment
}

// OrderLine stores product name and price as they were at order time,
// decoupling historical orders from later catalog edits.
type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Name      string
	Price     int64
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Amount is the frozen line subtotal.
func (l *OrderLine) Amount() int64 {
	return l.Price * int64(l.Quantity)
}
