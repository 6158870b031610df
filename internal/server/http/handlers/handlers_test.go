package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/storefront/internal/test"
	"github.com/polkiloo/storefront/internal/worker"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path, route string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
	}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{Login: "user", Password: "pass", FullName: "User One", Email: "user@example.com"})
	resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}
}

func TestAuthHandlerRegisterSetsCookie(t *testing.T) {
	login := testhelpers.RandomASCIIString(7, 14)
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.RegisterRequest{Login: login, Password: password})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, gotLogin, gotPassword, fullName, email string) (string, error) {
		if gotLogin != login || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotLogin, gotPassword)
		}
		return "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", "/register", handler.Register, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if authHeader := resp.Header().Get("Authorization"); authHeader != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", authHeader)
	}
	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	foundCookie := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "storefront_token" {
			if cookie.Value != "session-token" {
				t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
			}
			foundCookie = true
			break
		}
	}
	if !foundCookie {
		t.Fatal("expected auth cookie named storefront_token")
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid credentials", body: []byte(`{"login":"","password":""}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusBadRequest},
		{name: "already exists", body: []byte(`{"login":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string, string) (string, error) {
			return "", domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict},
		{name: "internal", body: []byte(`{"login":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Login: "user", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid", body: []byte(`{"login":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "internal", body: []byte(`{"login":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(tt.facade).Login, nil, tt.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestCatalogHandlerCategories(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/categories", "/categories", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Categories, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.CategoryResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Name != "tea" {
		t.Fatalf("unexpected categories: %+v", decoded)
	}
}

func TestCatalogHandlerProducts(t *testing.T) {
	var captured repository.ProductFilter
	facade := testhelpers.CatalogFacadeStub{ProductsFn: func(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
		captured = filter
		return []model.Product{{ID: 1, Name: "green tea", Price: 1000, Status: model.ProductStatusActive}}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/products?query=tea&category=3", "/products", NewCatalogHandler(facade).Products, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if captured.Query != "tea" || captured.CategoryID != 3 {
		t.Fatalf("filter not forwarded: %+v", captured)
	}
}

func TestCatalogHandlerProductsBadCategory(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/products?category=abc", "/products", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Products, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCatalogHandlerProduct(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/products/7", "/products/:productID", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Product, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ID != 7 {
		t.Fatalf("unexpected product id %d", decoded.ID)
	}
}

func TestCatalogHandlerProductFailures(t *testing.T) {
	notFound := testhelpers.CatalogFacadeStub{ProductFn: func(context.Context, int64) (*model.Product, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp := performRequest(t, http.MethodGet, "/products/7", "/products/:productID", NewCatalogHandler(notFound).Product, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/products/abc", "/products/:productID", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Product, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCartHandlerAdd(t *testing.T) {
	body, _ := json.Marshal(dto.CartAddRequest{ProductID: 5, Quantity: 2})
	resp := performRequest(t, http.MethodPost, "/cart", "/cart", NewCartHandler(testhelpers.CartFacadeStub{}).Add, asUser(1), body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.CartItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ProductID != 5 || decoded.Quantity != 2 {
		t.Fatalf("unexpected cart item: %+v", decoded)
	}
}

func TestCartHandlerAddFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.CartFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "invalid quantity", body: []byte(`{"product_id":5,"quantity":0}`), facade: testhelpers.CartFacadeStub{AddFn: func(context.Context, int64, int64, int) (*model.CartItem, error) {
			return nil, domainErrors.ErrInvalidQuantity
		}}, status: http.StatusUnprocessableEntity},
		{name: "unknown product", body: []byte(`{"product_id":99,"quantity":1}`), facade: testhelpers.CartFacadeStub{AddFn: func(context.Context, int64, int64, int) (*model.CartItem, error) {
			return nil, domainErrors.ErrNotFound
		}}, status: http.StatusNotFound},
		{name: "internal", body: []byte(`{"product_id":5,"quantity":1}`), facade: testhelpers.CartFacadeStub{AddFn: func(context.Context, int64, int64, int) (*model.CartItem, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/cart", "/cart", NewCartHandler(tt.facade).Add, asUser(1), tt.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestCartHandlerUpdateQuantity(t *testing.T) {
	body := []byte(`{"quantity":3}`)
	resp := performRequest(t, http.MethodPatch, "/cart/5", "/cart/:productID", NewCartHandler(testhelpers.CartFacadeStub{}).UpdateQuantity, asUser(1), body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPatch, "/cart/abc", "/cart/:productID", NewCartHandler(testhelpers.CartFacadeStub{}).UpdateQuantity, asUser(1), body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad id, got %d", resp.Code)
	}

	missing := testhelpers.CartFacadeStub{UpdateFn: func(context.Context, int64, int64, int) error {
		return domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodPatch, "/cart/5", "/cart/:productID", NewCartHandler(missing).UpdateQuantity, asUser(1), body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCartHandlerRemove(t *testing.T) {
	resp := performRequest(t, http.MethodDelete, "/cart/5", "/cart/:productID", NewCartHandler(testhelpers.CartFacadeStub{}).Remove, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	missing := testhelpers.CartFacadeStub{RemoveFn: func(context.Context, int64, int64) error {
		return domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodDelete, "/cart/5", "/cart/:productID", NewCartHandler(missing).Remove, asUser(1), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCartHandlerList(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/cart", "/cart", NewCartHandler(testhelpers.CartFacadeStub{}).List, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.CartResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded.Lines) != 1 || decoded.TotalAmount != 2000 {
		t.Fatalf("unexpected cart response: %+v", decoded)
	}
}

func TestOrderHandlerCheckout(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{CheckoutFn: func(ctx context.Context, userID int64) (*model.Order, error) {
		return &model.Order{
			ID:          1,
			UID:         uuid.New(),
			UserID:      userID,
			TotalAmount: 2500,
			Status:      model.OrderStatusRequested,
			Lines:       []model.OrderLine{{ProductID: 1, Name: "green tea", Price: 1000, Quantity: 2}},
		}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(facade).Checkout, asUser(1), nil, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var decoded dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.TotalAmount != 2500 || decoded.Status != "requested" {
		t.Fatalf("unexpected order response: %+v", decoded)
	}
	if decoded.Name != "green tea" {
		t.Fatalf("unexpected order name %q", decoded.Name)
	}
}

func TestOrderHandlerCheckoutFailures(t *testing.T) {
	empty := testhelpers.OrderFacadeStub{CheckoutFn: func(context.Context, int64) (*model.Order, error) {
		return nil, domainErrors.ErrEmptyCart
	}}
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(empty).Checkout, asUser(1), nil, nil)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422 for empty cart, got %d", resp.Code)
	}

	broken := testhelpers.OrderFacadeStub{CheckoutFn: func(context.Context, int64) (*model.Order, error) {
		return nil, errors.New("boom")
	}}
	resp = performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(broken).Checkout, asUser(1), nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestOrderHandlerList(t *testing.T) {
	orders := []model.Order{
		{ID: 1, UID: uuid.New(), Status: model.OrderStatusRequested},
		{ID: 2, UID: uuid.New(), Status: model.OrderStatusPaid},
	}
	facade := testhelpers.OrderFacadeStub{OrdersFn: func(context.Context, int64) ([]model.Order, error) {
		return orders, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders", "/orders", NewOrderHandler(facade).List, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != len(orders) {
		t.Fatalf("expected %d orders, got %d", len(orders), len(decoded))
	}
}

func TestOrderHandlerListEmpty(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{OrdersFn: func(context.Context, int64) ([]model.Order, error) {
		return nil, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders", "/orders", NewOrderHandler(facade).List, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestOrderHandlerGet(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/orders/3", "/orders/:orderID", NewOrderHandler(testhelpers.OrderFacadeStub{}).Get, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	missing := testhelpers.OrderFacadeStub{OrderFn: func(context.Context, int64, int64) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodGet, "/orders/3", "/orders/:orderID", NewOrderHandler(missing).Get, asUser(1), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/orders/abc", "/orders/:orderID", NewOrderHandler(testhelpers.OrderFacadeStub{}).Get, asUser(1), nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestPaymentHandlerCreate(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/orders/1/payments", "/orders/:orderID/payments", NewPaymentHandler(testhelpers.PaymentFacadeStub{}).Create, asUser(1), nil, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var decoded dto.PaymentResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ShopID != "shop-test" {
		t.Fatalf("expected shop id in launch props, got %q", decoded.ShopID)
	}
	if decoded.PayStatus != "ready" {
		t.Fatalf("unexpected pay status %q", decoded.PayStatus)
	}
}

func TestPaymentHandlerCreateFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.PaymentFacadeStub
		path   string
		status int
	}{
		{name: "bad id", path: "/orders/abc/payments", status: http.StatusBadRequest},
		{name: "not found", path: "/orders/1/payments", facade: testhelpers.PaymentFacadeStub{CreateFn: func(context.Context, int64, int64) (*model.Payment, error) {
			return nil, domainErrors.ErrNotFound
		}}, status: http.StatusNotFound},
		{name: "not payable", path: "/orders/1/payments", facade: testhelpers.PaymentFacadeStub{CreateFn: func(context.Context, int64, int64) (*model.Payment, error) {
			return nil, domainErrors.ErrOrderNotPayable
		}}, status: http.StatusConflict},
		{name: "internal", path: "/orders/1/payments", facade: testhelpers.PaymentFacadeStub{CreateFn: func(context.Context, int64, int64) (*model.Payment, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, tt.path, "/orders/:orderID/payments", NewPaymentHandler(tt.facade).Create, asUser(1), nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestPaymentHandlerCheck(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/payments/1/check", "/payments/:paymentID/check", NewPaymentHandler(testhelpers.PaymentFacadeStub{}).Check, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.PaymentCheckResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.OrderStatus != "paid" {
		t.Fatalf("unexpected order status %q", decoded.OrderStatus)
	}
	if !decoded.Payment.IsPaidOK {
		t.Fatal("expected settled payment in response")
	}
}

func TestPaymentHandlerCheckFailures(t *testing.T) {
	missing := testhelpers.PaymentFacadeStub{CheckFn: func(context.Context, int64, int64) (*model.Payment, *model.Order, error) {
		return nil, nil, domainErrors.ErrNotFound
	}}
	resp := performRequest(t, http.MethodPost, "/payments/1/check", "/payments/:paymentID/check", NewPaymentHandler(missing).Check, asUser(1), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/payments/abc/check", "/payments/:paymentID/check", NewPaymentHandler(testhelpers.PaymentFacadeStub{}).Check, asUser(1), nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestAdminHandlerCancel(t *testing.T) {
	facade := testhelpers.AdminFacadeStub{CancelFn: func(ctx context.Context, ids []int64, reason string) []worker.BulkResult {
		if reason != "stock issue" {
			t.Fatalf("unexpected reason %q", reason)
		}
		return []worker.BulkResult{
			{ID: 1},
			{ID: 2, Err: domainErrors.ErrInvalidTransition},
		}
	}}
	body := []byte(`{"ids":[1,2],"reason":"stock issue"}`)
	resp := performRequest(t, http.MethodPost, "/orders/cancel", "/orders/cancel", NewAdminHandler(facade).Cancel, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.BulkItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 items, got %d", len(decoded))
	}
	if !decoded[0].OK || decoded[1].OK {
		t.Fatalf("unexpected per-item outcomes: %+v", decoded)
	}
	if decoded[1].Error == "" {
		t.Fatal("expected error message for failed item")
	}
}

func TestAdminHandlerCancelBadRequest(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/orders/cancel", "/orders/cancel", NewAdminHandler(testhelpers.AdminFacadeStub{}).Cancel, nil, []byte("oops"), map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad json, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/orders/cancel", "/orders/cancel", NewAdminHandler(testhelpers.AdminFacadeStub{}).Cancel, nil, []byte(`{"ids":[],"reason":"x"}`), map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for empty ids, got %d", resp.Code)
	}
}

func TestAdminHandlerUpdateStatus(t *testing.T) {
	var captured model.OrderStatus
	facade := testhelpers.AdminFacadeStub{UpdateFn: func(ctx context.Context, ids []int64, status model.OrderStatus) []worker.BulkResult {
		captured = status
		return []worker.BulkResult{{ID: 1}}
	}}
	body := []byte(`{"ids":[1],"status":"shipped"}`)
	resp := performRequest(t, http.MethodPost, "/orders/status", "/orders/status", NewAdminHandler(facade).UpdateStatus, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if captured != model.OrderStatusShipped {
		t.Fatalf("expected shipped status forwarded, got %v", captured)
	}
}

func TestAdminHandlerUpdateStatusInvalid(t *testing.T) {
	body := []byte(`{"ids":[1],"status":"teleported"}`)
	resp := performRequest(t, http.MethodPost, "/orders/status", "/orders/status", NewAdminHandler(testhelpers.AdminFacadeStub{}).UpdateStatus, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422 for unknown status, got %d", resp.Code)
	}
}

func TestAdminHandlerUpdateProductStatus(t *testing.T) {
	var captured model.ProductStatus
	facade := testhelpers.AdminFacadeStub{ProductFn: func(ctx context.Context, ids []int64, status model.ProductStatus) []worker.BulkResult {
		captured = status
		return []worker.BulkResult{{ID: 5}, {ID: 6, Err: domainErrors.ErrNotFound}}
	}}
	body := []byte(`{"ids":[5,6],"status":"sold_out"}`)
	resp := performRequest(t, http.MethodPost, "/products/status", "/products/status", NewAdminHandler(facade).UpdateProductStatus, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if captured != model.ProductStatusSoldOut {
		t.Fatalf("expected sold_out status forwarded, got %v", captured)
	}
	var decoded []dto.BulkItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 2 || !decoded[0].OK || decoded[1].OK {
		t.Fatalf("unexpected per-item outcomes: %+v", decoded)
	}
}

func TestAdminHandlerUpdateProductStatusInvalid(t *testing.T) {
	body := []byte(`{"ids":[5],"status":"discounted"}`)
	resp := performRequest(t, http.MethodPost, "/products/status", "/products/status", NewAdminHandler(testhelpers.AdminFacadeStub{}).UpdateProductStatus, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422 for unknown status, got %d", resp.Code)
	}
}
