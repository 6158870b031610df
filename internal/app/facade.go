package app

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	"github.com/polkiloo/storefront/internal/usecase"
	"github.com/polkiloo/storefront/internal/worker"
)

// StorefrontFacade aggregates use cases behind the surface the HTTP layer
// and the bulk processor consume.
type StorefrontFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	cart     *usecase.CartUseCase
	orders   *usecase.OrderUseCase
	payments *usecase.PaymentUseCase

	bulk *worker.BulkProcessor
}

func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	payments *usecase.PaymentUseCase,
) *StorefrontFacade {
	return &StorefrontFacade{auth: auth, catalog: catalog, cart: cart, orders: orders, payments: payments}
}

// SetBulkProcessor attaches the bulk processor after construction. The
// processor itself depends on the facade for per-order operations.
func (f *StorefrontFacade) SetBulkProcessor(bulk *worker.BulkProcessor) {
	f.bulk = bulk
}

func (f *StorefrontFacade) Register(ctx context.Context, login, password, fullName, email string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, fullName, email)
	return token, err
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.Categories(ctx)
}

func (f *StorefrontFacade) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return f.catalog.Products(ctx, filter)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Product(ctx, id)
}

func (f *StorefrontFacade) AddToCart(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error) {
	return f.cart.Add(ctx, userID, productID, quantity)
}

func (f *StorefrontFacade) UpdateCartQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	return f.cart.UpdateQuantity(ctx, userID, productID, quantity)
}

func (f *StorefrontFacade) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	return f.cart.Remove(ctx, userID, productID)
}

func (f *StorefrontFacade) Cart(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return f.cart.List(ctx, userID)
}

func (f *StorefrontFacade) Checkout(ctx context.Context, userID int64) (*model.Order, error) {
	return f.orders.Checkout(ctx, userID)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) Order(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	return f.orders.GetForUser(ctx, orderID, userID)
}

func (f *StorefrontFacade) CreatePayment(ctx context.Context, userID, orderID int64) (*model.Payment, error) {
	return f.payments.CreateForOrder(ctx, userID, orderID)
}

// CheckPayment verifies the payment against the gateway and applies the
// result to the owning order in the same request.
func (f *StorefrontFacade) CheckPayment(ctx context.Context, userID, paymentID int64) (*model.Payment, *model.Order, error) {
	payment, err := f.payments.Check(ctx, userID, paymentID)
	if err != nil {
		return nil, nil, err
	}
	order, err := f.orders.ApplyPaymentResult(ctx, payment)
	if err != nil {
		return nil, nil, err
	}
	return payment, order, nil
}

func (f *StorefrontFacade) ShopID() string {
	return f.payments.ShopID()
}

// CancelOrder satisfies the bulk processor's per-order contract.
func (f *StorefrontFacade) CancelOrder(ctx context.Context, orderID int64, reason string) error {
	return f.orders.Cancel(ctx, orderID, reason)
}

// UpdateOrderStatus satisfies the bulk processor's per-order contract.
func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

// UpdateProductStatus satisfies the bulk processor's per-product contract.
func (f *StorefrontFacade) UpdateProductStatus(ctx context.Context, productID int64, status model.ProductStatus) error {
	return f.catalog.UpdateStatus(ctx, productID, status)
}

func (f *StorefrontFacade) CancelOrders(ctx context.Context, ids []int64, reason string) []worker.BulkResult {
	return f.bulk.Cancel(ctx, ids, reason)
}

func (f *StorefrontFacade) UpdateOrdersStatus(ctx context.Context, ids []int64, status model.OrderStatus) []worker.BulkResult {
	return f.bulk.UpdateStatus(ctx, ids, status)
}

func (f *StorefrontFacade) UpdateProductsStatus(ctx context.Context, ids []int64, status model.ProductStatus) []worker.BulkResult {
	return f.bulk.UpdateProductsStatus(ctx, ids, status)
}
