package repository

import (
	"context"
	"encoding/json"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// PaymentRepository stores payment attempts. Payments are never deleted.
type PaymentRepository interface {
	Create(ctx context.Context, payment model.Payment) (*model.Payment, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*model.Payment, error)
	// UpdateGatewayState overwrites the gateway-derived fields after one
	// verification round-trip.
	UpdateGatewayState(ctx context.Context, paymentID int64, status model.PayStatus, isPaidOK bool, meta json.RawMessage) error
}
