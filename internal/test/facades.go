package test

import (
	"context"
	"sync"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	"github.com/polkiloo/storefront/internal/worker"
)

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	CategoriesFn func(context.Context) ([]model.Category, error)
	ProductsFn   func(context.Context, repository.ProductFilter) ([]model.Product, error)
	ProductFn    func(context.Context, int64) (*model.Product, error)
}

// Categories returns predefined categories.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Name: "tea"}}, nil
}

// Products returns predefined products.
func (s CatalogFacadeStub) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	return []model.Product{{ID: 1, Name: "green tea", Price: 1000, Status: model.ProductStatusActive}}, nil
}

// Product returns a predefined product.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "green tea", Price: 1000, Status: model.ProductStatusActive}, nil
}

// CartFacadeStub simulates cart operations.
type CartFacadeStub struct {
	AddFn    func(context.Context, int64, int64, int) (*model.CartItem, error)
	UpdateFn func(context.Context, int64, int64, int) error
	RemoveFn func(context.Context, int64, int64) error
	CartFn   func(context.Context, int64) ([]model.CartLine, error)
}

// AddToCart delegates to the override or returns the item as stored.
func (s CartFacadeStub) AddToCart(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID, quantity)
	}
	return &model.CartItem{ID: 1, UserID: userID, ProductID: productID, Quantity: quantity}, nil
}

// UpdateCartQuantity executes the configured override.
func (s CartFacadeStub) UpdateCartQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, productID, quantity)
	}
	return nil
}

// RemoveFromCart executes the configured override.
func (s CartFacadeStub) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	return nil
}

// Cart returns predefined cart lines.
func (s CartFacadeStub) Cart(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return []model.CartLine{{
		Item:    model.CartItem{ID: 1, UserID: userID, ProductID: 1, Quantity: 2},
		Product: model.Product{ID: 1, Name: "green tea", Price: 1000, Status: model.ProductStatusActive},
	}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn func(context.Context, int64) (*model.Order, error)
	OrdersFn   func(context.Context, int64) ([]model.Order, error)
	OrderFn    func(context.Context, int64, int64) (*model.Order, error)
}

// Checkout delegates to the override or returns a fresh order.
func (s OrderFacadeStub) Checkout(ctx context.Context, userID int64) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusRequested}, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID, Status: model.OrderStatusRequested}}, nil
}

// Order returns one predefined order.
func (s OrderFacadeStub) Order(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID, userID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusRequested}, nil
}

// PaymentFacadeStub simulates payment operations.
type PaymentFacadeStub struct {
	CreateFn  func(context.Context, int64, int64) (*model.Payment, error)
	CheckFn   func(context.Context, int64, int64) (*model.Payment, *model.Order, error)
	ShopIDVal string
}

// CreatePayment delegates to the override or returns a ready payment.
func (s PaymentFacadeStub) CreatePayment(ctx context.Context, userID, orderID int64) (*model.Payment, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, orderID)
	}
	return &model.Payment{ID: 1, OrderID: orderID, PayStatus: model.PayStatusReady}, nil
}

// CheckPayment delegates to the override or returns a settled payment.
func (s PaymentFacadeStub) CheckPayment(ctx context.Context, userID, paymentID int64) (*model.Payment, *model.Order, error) {
	if s.CheckFn != nil {
		return s.CheckFn(ctx, userID, paymentID)
	}
	payment := &model.Payment{ID: paymentID, OrderID: 1, PayStatus: model.PayStatusPaid, IsPaidOK: true}
	order := &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPaid}
	return payment, order, nil
}

// ShopID returns the configured gateway shop identifier.
func (s PaymentFacadeStub) ShopID() string {
	if s.ShopIDVal != "" {
		return s.ShopIDVal
	}
	return "shop-test"
}

// AdminFacadeStub simulates administrative bulk operations.
type AdminFacadeStub struct {
	CancelFn  func(context.Context, []int64, string) []worker.BulkResult
	UpdateFn  func(context.Context, []int64, model.OrderStatus) []worker.BulkResult
	ProductFn func(context.Context, []int64, model.ProductStatus) []worker.BulkResult
}

// CancelOrders returns per-order successes unless overridden.
func (s AdminFacadeStub) CancelOrders(ctx context.Context, ids []int64, reason string) []worker.BulkResult {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, ids, reason)
	}
	return allOK(ids)
}

// UpdateOrdersStatus returns per-order successes unless overridden.
func (s AdminFacadeStub) UpdateOrdersStatus(ctx context.Context, ids []int64, status model.OrderStatus) []worker.BulkResult {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, ids, status)
	}
	return allOK(ids)
}

// UpdateProductsStatus returns per-product successes unless overridden.
func (s AdminFacadeStub) UpdateProductsStatus(ctx context.Context, ids []int64, status model.ProductStatus) []worker.BulkResult {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, ids, status)
	}
	return allOK(ids)
}

func allOK(ids []int64) []worker.BulkResult {
	results := make([]worker.BulkResult, len(ids))
	for i, id := range ids {
		results[i] = worker.BulkResult{ID: id}
	}
	return results
}

// GatewayClientStub substitutes the payment gateway client in tests.
type GatewayClientStub struct {
	FindFn    func(context.Context, string) (*model.GatewayPayment, error)
	IsPaidFn  func(int64, *model.GatewayPayment) bool
	ShopIDVal string
}

// Find returns configured gateway state for the merchant uid.
func (s GatewayClientStub) Find(ctx context.Context, merchantUID string) (*model.GatewayPayment, error) {
	if s.FindFn != nil {
		return s.FindFn(ctx, merchantUID)
	}
	return &model.GatewayPayment{MerchantUID: merchantUID, Status: model.PayStatusPaid}, nil
}

// IsPaid reports settlement for the exact expected amount.
func (s GatewayClientStub) IsPaid(expectedAmount int64, payment *model.GatewayPayment) bool {
	if s.IsPaidFn != nil {
		return s.IsPaidFn(expectedAmount, payment)
	}
	return payment != nil && payment.Status == model.PayStatusPaid && payment.Amount == expectedAmount
}

// ShopID returns the configured shop identifier.
func (s GatewayClientStub) ShopID() string {
	if s.ShopIDVal != "" {
		return s.ShopIDVal
	}
	return "shop-test"
}

// BulkFacadeStub records per-item bulk operations for worker tests.
type BulkFacadeStub struct {
	CancelFn  func(context.Context, int64, string) error
	UpdateFn  func(context.Context, int64, model.OrderStatus) error
	ProductFn func(context.Context, int64, model.ProductStatus) error

	mu       sync.Mutex
	Canceled []int64
	Updated  []OrderStatusCall
	Products []int64
}

// CancelOrder records the cancellation or delegates to the override.
func (s *BulkFacadeStub) CancelOrder(ctx context.Context, orderID int64, reason string) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, reason)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Canceled = append(s.Canceled, orderID)
	return nil
}

// UpdateOrderStatus records the transition or delegates to the override.
func (s *BulkFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updated = append(s.Updated, OrderStatusCall{OrderID: orderID, Status: status})
	return nil
}

// UpdateProductStatus records the change or delegates to the override.
func (s *BulkFacadeStub) UpdateProductStatus(ctx context.Context, productID int64, status model.ProductStatus) error {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, productID, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Products = append(s.Products, productID)
	return nil
}
