package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Query      string
	CategoryID int64
}

// CatalogRepository provides access to categories and products.
// The order flow only reads the catalog; UpdateStatus exists for the
// administrative surface.
type CatalogRepository interface {
	Categories(ctx context.Context) ([]model.Category, error)
	Products(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	ProductByID(ctx context.Context, id int64) (*model.Product, error)
	ActiveProductByID(ctx context.Context, id int64) (*model.Product, error)
	UpdateStatus(ctx context.Context, productID int64, status model.ProductStatus) error
}
