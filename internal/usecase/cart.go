package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// CartUseCase manages the per-user shopping cart.
type CartUseCase struct {
	carts   repository.CartRepository
	catalog repository.CatalogRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, catalog repository.CatalogRepository) *CartUseCase {
	return &CartUseCase{carts: carts, catalog: catalog}
}

// Add puts quantity of a product into the user's cart. Repeated additions
// accumulate; only active products can be added.
func (u *CartUseCase) Add(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	if _, err := u.catalog.ActiveProductByID(ctx, productID); err != nil {
		return nil, err
	}
	return u.carts.Add(ctx, userID, productID, quantity)
}

// UpdateQuantity sets the exact quantity on an existing cart line.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity < 1 {
		return domainErrors.ErrInvalidQuantity
	}
	return u.carts.UpdateQuantity(ctx, userID, productID, quantity)
}

// Remove deletes a cart line.
func (u *CartUseCase) Remove(ctx context.Context, userID, productID int64) error {
	return u.carts.Remove(ctx, userID, productID)
}

// List returns the user's cart joined with current product data, ordered by
// product name. Line amounts use live catalog prices; they freeze only when
// the cart becomes an order.
func (u *CartUseCase) List(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return u.carts.ListByUser(ctx, userID)
}
