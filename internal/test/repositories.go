package test

import (
	"context"
	"encoding/json"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash, fullName, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, FullName: fullName, Email: email}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CatalogRepositoryStub serves catalog reads from configured slices.
type CatalogRepositoryStub struct {
	CategoriesFn  func(context.Context) ([]model.Category, error)
	ProductsFn    func(context.Context, repository.ProductFilter) ([]model.Product, error)
	ProductByIDFn func(context.Context, int64) (*model.Product, error)
	ActiveByIDFn  func(context.Context, int64) (*model.Product, error)
	CategoryItems []model.Category
	ProductItems  []model.Product
	StatusCalls   []ProductStatusCall
}

// ProductStatusCall stores information about catalog UpdateStatus invocations.
type ProductStatusCall struct {
	ProductID int64
	Status    model.ProductStatus
}

// Categories returns configured categories.
func (s *CatalogRepositoryStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return s.CategoryItems, nil
}

// Products returns configured products ignoring the filter.
func (s *CatalogRepositoryStub) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	return s.ProductItems, nil
}

// ProductByID looks up a product in the configured slice.
func (s *CatalogRepositoryStub) ProductByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductByIDFn != nil {
		return s.ProductByIDFn(ctx, id)
	}
	for _, p := range s.ProductItems {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ActiveProductByID looks up a purchasable product in the configured slice.
func (s *CatalogRepositoryStub) ActiveProductByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.ActiveByIDFn != nil {
		return s.ActiveByIDFn(ctx, id)
	}
	for _, p := range s.ProductItems {
		if p.ID == id && p.Purchasable() {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus records the change and mutates the stored product.
func (s *CatalogRepositoryStub) UpdateStatus(ctx context.Context, productID int64, status model.ProductStatus) error {
	s.StatusCalls = append(s.StatusCalls, ProductStatusCall{ProductID: productID, Status: status})
	for i := range s.ProductItems {
		if s.ProductItems[i].ID == productID {
			s.ProductItems[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// CartRepositoryStub lets tests control cart contents.
type CartRepositoryStub struct {
	AddFn            func(context.Context, int64, int64, int) (*model.CartItem, error)
	UpdateQuantityFn func(context.Context, int64, int64, int) error
	RemoveFn         func(context.Context, int64, int64) error
	ListByUserFn     func(context.Context, int64) ([]model.CartLine, error)
	Lines            []model.CartLine
}

// Add delegates to the override or accumulates into the stored lines.
func (s *CartRepositoryStub) Add(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID, quantity)
	}
	for i := range s.Lines {
		if s.Lines[i].Item.ProductID == productID {
			s.Lines[i].Item.Quantity += quantity
			item := s.Lines[i].Item
			return &item, nil
		}
	}
	item := model.CartItem{ID: int64(len(s.Lines) + 1), UserID: userID, ProductID: productID, Quantity: quantity}
	s.Lines = append(s.Lines, model.CartLine{Item: item, Product: model.Product{ID: productID}})
	return &item, nil
}

// UpdateQuantity sets the quantity on a stored line.
func (s *CartRepositoryStub) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	if s.UpdateQuantityFn != nil {
		return s.UpdateQuantityFn(ctx, userID, productID, quantity)
	}
	for i := range s.Lines {
		if s.Lines[i].Item.ProductID == productID {
			s.Lines[i].Item.Quantity = quantity
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Remove deletes a stored line.
func (s *CartRepositoryStub) Remove(ctx context.Context, userID, productID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	for i := range s.Lines {
		if s.Lines[i].Item.ProductID == productID {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ListByUser returns the stored lines.
func (s *CartRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Lines, nil
}

// OrderStatusCall stores information about UpdateStatus invocations.
type OrderStatusCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CheckoutFn       func(context.Context, model.Order, []model.OrderLine) (*model.Order, error)
	GetByIDFn        func(context.Context, int64) (*model.Order, error)
	GetByIDForUserFn func(context.Context, int64, int64) (*model.Order, error)
	ListByUserFn     func(context.Context, int64) ([]model.Order, error)
	UpdateStatusFn   func(context.Context, int64, model.OrderStatus) error

	Orders      []model.Order
	UpdateCalls []OrderStatusCall
}

// CheckoutFromCart tracks the order and returns it with an identifier.
func (s *OrderRepositoryStub) CheckoutFromCart(ctx context.Context, order model.Order, lines []model.OrderLine) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, order, lines)
	}
	order.ID = int64(len(s.Orders) + 1)
	order.Lines = lines
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// GetByID returns a stored order by identifier.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByIDForUser returns a stored order owned by the user.
func (s *OrderRepositoryStub) GetByIDForUser(ctx context.Context, id, userID int64) (*model.Order, error) {
	if s.GetByIDForUserFn != nil {
		return s.GetByIDForUserFn(ctx, id, userID)
	}
	for _, o := range s.Orders {
		if o.ID == id && o.UserID == userID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from the configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// UpdateStatus records update invocations and mutates the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.UpdateCalls = append(s.UpdateCalls, OrderStatusCall{OrderID: orderID, Status: status})
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// GatewayStateCall stores information about UpdateGatewayState invocations.
type GatewayStateCall struct {
	PaymentID int64
	Status    model.PayStatus
	IsPaidOK  bool
}

// PaymentRepositoryStub lets tests control payment persistence.
type PaymentRepositoryStub struct {
	CreateFn         func(context.Context, model.Payment) (*model.Payment, error)
	GetByIDForUserFn func(context.Context, int64, int64) (*model.Payment, error)
	UpdateFn         func(context.Context, int64, model.PayStatus, bool, json.RawMessage) error

	Payments   []model.Payment
	StateCalls []GatewayStateCall
}

// Create tracks the payment and returns it with an identifier.
func (s *PaymentRepositoryStub) Create(ctx context.Context, payment model.Payment) (*model.Payment, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, payment)
	}
	payment.ID = int64(len(s.Payments) + 1)
	s.Payments = append(s.Payments, payment)
	return &payment, nil
}

// GetByIDForUser returns a stored payment by identifier.
func (s *PaymentRepositoryStub) GetByIDForUser(ctx context.Context, id, userID int64) (*model.Payment, error) {
	if s.GetByIDForUserFn != nil {
		return s.GetByIDForUserFn(ctx, id, userID)
	}
	for _, p := range s.Payments {
		if p.ID == id {
			payment := p
			return &payment, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateGatewayState records the gateway-derived state written for a payment.
func (s *PaymentRepositoryStub) UpdateGatewayState(ctx context.Context, id int64, status model.PayStatus, isPaidOK bool, meta json.RawMessage) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, status, isPaidOK, meta)
	}
	s.StateCalls = append(s.StateCalls, GatewayStateCall{PaymentID: id, Status: status, IsPaidOK: isPaidOK})
	for i := range s.Payments {
		if s.Payments[i].ID == id {
			s.Payments[i].PayStatus = status
			s.Payments[i].IsPaidOK = isPaidOK
			s.Payments[i].Meta = meta
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
