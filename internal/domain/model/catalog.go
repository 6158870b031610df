package model

import "time"

// Category groups products in the catalog.
type Category struct {
	ID   int64
	Name string
}

// ProductStatus describes catalog availability of a product.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusSoldOut  ProductStatus = "sold_out"
	ProductStatusObsolete ProductStatus = "obsolete"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product describes a catalog item. Price is stored in whole currency units
// and never negative. Only active products are purchasable.
type Product struct {
	ID          int64
	CategoryID  int64
	Name        string
	Description string
	Price       int64
	Status      ProductStatus
	PhotoURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Valid reports whether the status is a known one.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusActive, ProductStatusSoldOut, ProductStatusObsolete, ProductStatusInactive:
		return true
	}
	return false
}

// Purchasable reports whether the product can be added to a cart.
func (p *Product) Purchasable() bool {
	return p.Status == ProductStatusActive
}
