package handlers

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	"github.com/polkiloo/storefront/internal/worker"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password, fullName, email string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// CatalogFacade exposes catalog browsing.
type CatalogFacade interface {
	Categories(ctx context.Context) ([]model.Category, error)
	Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
}

// CartFacade encapsulates cart operations exposed via HTTP.
type CartFacade interface {
	AddToCart(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error)
	UpdateCartQuantity(ctx context.Context, userID, productID int64, quantity int) error
	RemoveFromCart(ctx context.Context, userID, productID int64) error
	Cart(ctx context.Context, userID int64) ([]model.CartLine, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Checkout(ctx context.Context, userID int64) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, orderID, userID int64) (*model.Order, error)
}

// PaymentFacade encapsulates payment operations exposed via HTTP.
type PaymentFacade interface {
	CreatePayment(ctx context.Context, userID, orderID int64) (*model.Payment, error)
	CheckPayment(ctx context.Context, userID, paymentID int64) (*model.Payment, *model.Order, error)
	ShopID() string
}

// AdminFacade encapsulates administrative bulk operations.
type AdminFacade interface {
	CancelOrders(ctx context.Context, ids []int64, reason string) []worker.BulkResult
	UpdateOrdersStatus(ctx context.Context, ids []int64, status model.OrderStatus) []worker.BulkResult
	UpdateProductsStatus(ctx context.Context, ids []int64, status model.ProductStatus) []worker.BulkResult
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
	PaymentFacade
	AdminFacade
}
