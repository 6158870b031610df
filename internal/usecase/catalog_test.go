package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	testhelpers "github.com/polkiloo/storefront/internal/test"
)

func TestCatalogUseCaseProductsPassesFilter(t *testing.T) {
	var captured repository.ProductFilter
	catalog := &testhelpers.CatalogRepositoryStub{
		ProductsFn: func(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
			captured = filter
			return []model.Product{{ID: 1}}, nil
		},
	}
	uc := NewCatalogUseCase(catalog)

	products, err := uc.Products(context.Background(), repository.ProductFilter{Query: "tea", CategoryID: 3})
	if err != nil {
		t.Fatalf("products returned error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if captured.Query != "tea" || captured.CategoryID != 3 {
		t.Fatalf("filter not forwarded: %+v", captured)
	}
}

func TestCatalogUseCaseProductNotFound(t *testing.T) {
	uc := NewCatalogUseCase(&testhelpers.CatalogRepositoryStub{})
	if _, err := uc.Product(context.Background(), 9); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCatalogUseCaseUpdateStatus(t *testing.T) {
	catalog := &testhelpers.CatalogRepositoryStub{
		ProductItems: []model.Product{{ID: 1, Status: model.ProductStatusActive}},
	}
	uc := NewCatalogUseCase(catalog)

	if err := uc.UpdateStatus(context.Background(), 1, "discounted"); err != domainErrors.ErrInvalidStatus {
		t.Fatalf("expected invalid status, got %v", err)
	}
	if len(catalog.StatusCalls) != 0 {
		t.Fatalf("repository must not be called for invalid status")
	}

	if err := uc.UpdateStatus(context.Background(), 1, model.ProductStatusObsolete); err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
	if catalog.ProductItems[0].Status != model.ProductStatusObsolete {
		t.Fatalf("expected obsolete, got %v", catalog.ProductItems[0].Status)
	}
}

func TestCatalogUseCaseCategories(t *testing.T) {
	catalog := &testhelpers.CatalogRepositoryStub{
		CategoryItems: []model.Category{{ID: 1, Name: "tea"}, {ID: 2, Name: "ware"}},
	}
	uc := NewCatalogUseCase(catalog)

	categories, err := uc.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories returned error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
}
