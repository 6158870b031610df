package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
	carts  repository.CartRepository
	logger *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, carts repository.CartRepository, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, carts: carts, logger: logger}
}

// Checkout turns the user's current cart into an order. Cart lines are read
// once; the total and the per-line name/price snapshots are fixed against
// that single read. Order creation and cart clearing happen in one
// transaction.
func (u *OrderUseCase) Checkout(ctx context.Context, userID int64) (*model.Order, error) {
	cartLines, err := u.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cartLines) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	var totalAmount int64
	lines := make([]model.OrderLine, 0, len(cartLines))
	for _, cartLine := range cartLines {
		totalAmount += cartLine.Amount()
		lines = append(lines, model.OrderLine{
			ProductID: cartLine.Product.ID,
			Name:      cartLine.Product.Name,
			Price:     cartLine.Product.Price,
			Quantity:  cartLine.Item.Quantity,
		})
	}

	order := model.Order{
		UID:         uuid.New(),
		UserID:      userID,
		TotalAmount: totalAmount,
		Status:      model.OrderStatusRequested,
	}
	return u.orders.CheckoutFromCart(ctx, order, lines)
}

// ListByUser returns orders sorted by creation time.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// GetForUser returns one order owned by the user.
func (u *OrderUseCase) GetForUser(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	return u.orders.GetByIDForUser(ctx, orderID, userID)
}

// ApplyPaymentResult reconciles a verified payment against its order.
// A settled payment moves the order to paid; a failed or canceled attempt
// moves it to failed_payment. Orders that are no longer payable are left
// untouched.
func (u *OrderUseCase) ApplyPaymentResult(ctx context.Context, payment *model.Payment) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}
	if !order.CanPay() {
		return order, nil
	}

	var next model.OrderStatus
	switch {
	case payment.IsPaidOK:
		next = model.OrderStatusPaid
	case payment.PayStatus == model.PayStatusFailed, payment.PayStatus == model.PayStatusCanceled:
		next = model.OrderStatusFailedPayment
	case payment.PayStatus == model.PayStatusPaid && !payment.IsPaidOK:
		// Settled at the gateway for the wrong amount.
		u.logger.Warn("payment amount mismatch",
			slog.Int64("order_id", order.ID),
			slog.String("merchant_uid", payment.MerchantUID()),
			slog.Int64("desired_amount", payment.DesiredAmount),
		)
		next = model.OrderStatusFailedPayment
	default:
		return order, nil
	}

	if next == order.Status {
		return order, nil
	}
	if err := u.orders.UpdateStatus(ctx, order.ID, next); err != nil {
		return nil, err
	}
	order.Status = next
	return order, nil
}

// UpdateStatus performs an administrative status transition.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if !status.Valid() {
		return domainErrors.ErrInvalidTransition
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(status) {
		return domainErrors.ErrInvalidTransition
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}

// Cancel performs an administrative cancellation, logging the reason.
// No refund is issued here.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID int64, reason string) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(model.OrderStatusCanceled) {
		return domainErrors.ErrInvalidTransition
	}
	if err := u.orders.UpdateStatus(ctx, orderID, model.OrderStatusCanceled); err != nil {
		return err
	}
	u.logger.Info("order canceled",
		slog.Int64("order_id", orderID),
		slog.String("reason", reason),
	)
	return nil
}
