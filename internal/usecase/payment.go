package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// GatewayClient is the narrow slice of the payment gateway the payment flow
// depends on. The concrete client is constructor-injected so tests can
// substitute a fake without network access.
type GatewayClient interface {
	Find(ctx context.Context, merchantUID string) (*model.GatewayPayment, error)
	IsPaid(expectedAmount int64, payment *model.GatewayPayment) bool
	ShopID() string
}

// PaymentUseCase manages payment attempts and gateway verification.
type PaymentUseCase struct {
	payments repository.PaymentRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
	gateway  GatewayClient
	logger   *slog.Logger
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(
	payments repository.PaymentRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
	gateway GatewayClient,
	logger *slog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, orders: orders, users: users, gateway: gateway, logger: logger}
}

// CreateForOrder opens a new payment attempt for a payable order, freezing
// the desired amount, the order name and the buyer fields, and generating a
// fresh merchant uid for this attempt.
func (u *PaymentUseCase) CreateForOrder(ctx context.Context, userID, orderID int64) (*model.Payment, error) {
	order, err := u.orders.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if !order.CanPay() {
		return nil, domainErrors.ErrOrderNotPayable
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	payment := model.Payment{
		UID:           uuid.New(),
		OrderID:       order.ID,
		Name:          order.Name(),
		DesiredAmount: order.TotalAmount,
		BuyerName:     user.BuyerName(),
		BuyerEmail:    user.Email,
		PayMethod:     model.PayMethodCard,
		PayStatus:     model.PayStatusReady,
	}
	return u.payments.Create(ctx, payment)
}

// ShopID exposes the gateway shop identifier used by the client-side SDK.
func (u *PaymentUseCase) ShopID() string {
	return u.gateway.ShopID()
}

// Check performs one verification round-trip against the gateway and
// overwrites the payment's gateway-derived state. On any adapter failure the
// record is left unmodified and ErrNotFound is returned; no retry happens
// here. The caller is responsible for applying the result to the order.
func (u *PaymentUseCase) Check(ctx context.Context, userID, paymentID int64) (*model.Payment, error) {
	payment, err := u.payments.GetByIDForUser(ctx, paymentID, userID)
	if err != nil {
		return nil, err
	}

	gatewayPayment, err := u.gateway.Find(ctx, payment.MerchantUID())
	if err != nil {
		u.logger.Error("gateway lookup failed",
			slog.String("merchant_uid", payment.MerchantUID()),
			slog.String("error", err.Error()),
		)
		return nil, domainErrors.ErrNotFound
	}

	payment.PayStatus = gatewayPayment.Status
	payment.IsPaidOK = u.gateway.IsPaid(payment.DesiredAmount, gatewayPayment)
	payment.Meta = gatewayPayment.Raw

	if err := u.payments.UpdateGatewayState(ctx, payment.ID, payment.PayStatus, payment.IsPaidOK, payment.Meta); err != nil {
		return nil, err
	}
	return payment, nil
}
