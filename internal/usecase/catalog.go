package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// CatalogUseCase exposes catalog browsing and administrative status edits.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// Categories lists all product categories.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.catalog.Categories(ctx)
}

// Products lists active products matching the filter.
func (u *CatalogUseCase) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return u.catalog.Products(ctx, filter)
}

// Product returns one product regardless of status.
func (u *CatalogUseCase) Product(ctx context.Context, id int64) (*model.Product, error) {
	return u.catalog.ProductByID(ctx, id)
}

// UpdateStatus performs an administrative availability change.
func (u *CatalogUseCase) UpdateStatus(ctx context.Context, productID int64, status model.ProductStatus) error {
	if !status.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	return u.catalog.UpdateStatus(ctx, productID, status)
}
