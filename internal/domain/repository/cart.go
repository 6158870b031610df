package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// CartRepository manages per-user cart lines.
type CartRepository interface {
	// Add creates the (user, product) line or increments its quantity.
	Add(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error
	Remove(ctx context.Context, userID, productID int64) error
	// ListByUser returns cart lines joined with current product data,
	// ordered by product name.
	ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error)
}
