package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	testhelpers "github.com/polkiloo/storefront/internal/test"
)

func paymentFixtures(t *testing.T) (*testhelpers.UserRepositoryStub, *testhelpers.OrderRepositoryStub, *testhelpers.PaymentRepositoryStub) {
	t.Helper()
	users := testhelpers.NewUserRepositoryStub()
	if _, err := users.Create(context.Background(), "alice", "hash", "Alice Kim", "alice@example.com"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	orders := &testhelpers.OrderRepositoryStub{
		Orders: []model.Order{{
			ID:          1,
			UID:         uuid.New(),
			UserID:      1,
			TotalAmount: 2500,
			Status:      model.OrderStatusRequested,
			Lines:       []model.OrderLine{{Name: "green tea", Price: 1000, Quantity: 2}, {Name: "black tea", Price: 500, Quantity: 1}},
		}},
	}
	return users, orders, &testhelpers.PaymentRepositoryStub{}
}

func TestPaymentUseCaseCreateForOrder(t *testing.T) {
	users, orders, payments := paymentFixtures(t)
	uc := NewPaymentUseCase(payments, orders, users, testhelpers.GatewayClientStub{}, discardLogger())

	payment, err := uc.CreateForOrder(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if payment.DesiredAmount != 2500 {
		t.Fatalf("expected frozen amount 2500, got %d", payment.DesiredAmount)
	}
	if payment.Name != "green tea 외 1건" {
		t.Fatalf("unexpected payment name %q", payment.Name)
	}
	if payment.BuyerName != "Alice Kim" || payment.BuyerEmail != "alice@example.com" {
		t.Fatalf("unexpected buyer fields: %q %q", payment.BuyerName, payment.BuyerEmail)
	}
	if payment.PayStatus != model.PayStatusReady {
		t.Fatalf("expected ready status, got %v", payment.PayStatus)
	}
	if payment.UID == uuid.Nil {
		t.Fatal("expected merchant uid to be assigned")
	}
}

func TestPaymentUseCaseCreateForOrderFreshUIDPerAttempt(t *testing.T) {
	users, orders, payments := paymentFixtures(t)
	uc := NewPaymentUseCase(payments, orders, users, testhelpers.GatewayClientStub{}, discardLogger())

	first, err := uc.CreateForOrder(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("first create returned error: %v", err)
	}
	second, err := uc.CreateForOrder(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("second create returned error: %v", err)
	}
	if first.MerchantUID() == second.MerchantUID() {
		t.Fatal("expected distinct merchant uids per attempt")
	}
}

func TestPaymentUseCaseCreateForOrderRejectsUnpayable(t *testing.T) {
	users, orders, payments := paymentFixtures(t)
	orders.Orders[0].Status = model.OrderStatusPaid
	uc := NewPaymentUseCase(payments, orders, users, testhelpers.GatewayClientStub{}, discardLogger())

	if _, err := uc.CreateForOrder(context.Background(), 1, 1); err != domainErrors.ErrOrderNotPayable {
		t.Fatalf("expected order not payable error, got %v", err)
	}
}

func TestPaymentUseCaseCreateForOrderEnforcesOwnership(t *testing.T) {
	users, orders, payments := paymentFixtures(t)
	uc := NewPaymentUseCase(payments, orders, users, testhelpers.GatewayClientStub{}, discardLogger())

	if _, err := uc.CreateForOrder(context.Background(), 2, 1); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found for foreign order, got %v", err)
	}
}

func TestPaymentUseCaseCheckSettled(t *testing.T) {
	users, orders, payments := paymentFixtures(t)
	gateway := testhelpers.GatewayClientStub{
		FindFn: func(ctx context.Context, merchantUID string) (*model.GatewayPayment, error) {
			return &model.GatewayPayment{
				MerchantUID: merchantUID,
				Status:      model.PayStatusPaid,
				Amount:      2500,
				Raw:         json.RawMessage(`{"status":"paid","amount":2500}`),
			}, nil
		},
	}
	uc := NewPaymentUseCase(payments, orders, users, gateway, discardLogger())

	created, err := uc.CreateForOrder(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	checked, err := uc.Check(context.Background(), 1, created.ID)
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	if checked.PayStatus != model.PayStatusPaid || !checked.IsPaidOK {
		t.Fatalf("expected settled payment, got %v %v", checked.PayStatus, checked.IsPaidOK)
	}
	if len(payments.StateCalls) != 1 || !payments.StateCalls[0].IsPaidOK {
		t.Fatalf("unexpected gateway state writes: %+v", payments.StateCalls)
	}
}

func TestPaymentUseCaseCheckAmountMismatch(t *testing.T) {
	users, orders, payments := paymentFixtures(t)
	gateway := testhelpers.GatewayClientStub{
		FindFn: func(ctx context.Context, merchantUID string) (*model.GatewayPayment, error) {
			return &model.GatewayPayment{MerchantUID: merchantUID, Status: model.PayStatusPaid, Amount: 100}, nil
		},
	}
	uc := NewPaymentUseCase(payments, orders, users, gateway, discardLogger())

	created, err := uc.CreateForOrder(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	checked, err := uc.Check(context.Background(), 1, created.ID)
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	if checked.PayStatus != model.PayStatusPaid {
		t.Fatalf("expected gateway status recorded as paid, got %v", checked.PayStatus)
	}
	if checked.IsPaidOK {
		t.Fatal("expected is_paid_ok false for mismatched amount")
	}
}

func TestPaymentUseCaseCheckGatewayFailureLeavesRecordUntouched(t *testing.T) {
	users, orders, payments := paymentFixtures(t)
	gateway := testhelpers.GatewayClientStub{
		FindFn: func(context.Context, string) (*model.GatewayPayment, error) {
			return nil, fmt.Errorf("gateway unavailable")
		},
	}
	uc := NewPaymentUseCase(payments, orders, users, gateway, discardLogger())

	created, err := uc.CreateForOrder(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if _, err := uc.Check(context.Background(), 1, created.ID); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found on gateway failure, got %v", err)
	}
	if len(payments.StateCalls) != 0 {
		t.Fatalf("expected no state writes, got %+v", payments.StateCalls)
	}
	if payments.Payments[0].PayStatus != model.PayStatusReady {
		t.Fatalf("expected payment to stay ready, got %v", payments.Payments[0].PayStatus)
	}
}

func TestPaymentUseCaseCheckUnknownPayment(t *testing.T) {
	users, orders, payments := paymentFixtures(t)
	uc := NewPaymentUseCase(payments, orders, users, testhelpers.GatewayClientStub{}, discardLogger())

	if _, err := uc.Check(context.Background(), 1, 42); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPaymentUseCaseShopID(t *testing.T) {
	users, orders, payments := paymentFixtures(t)
	uc := NewPaymentUseCase(payments, orders, users, testhelpers.GatewayClientStub{ShopIDVal: "shop-42"}, discardLogger())
	if uc.ShopID() != "shop-42" {
		t.Fatalf("unexpected shop id %q", uc.ShopID())
	}
}
