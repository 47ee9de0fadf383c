package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/tsogoo/minimart/internal/domain/errors"
	"github.com/tsogoo/minimart/internal/domain/model"
	"github.com/tsogoo/minimart/internal/domain/repository"
)

// CatalogUseCase manages the product catalog.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// AddProduct registers a product with a fresh identifier. The code must be
// unique across the catalog.
func (u *CatalogUseCase) AddProduct(ctx context.Context, name, category, code string, price decimal.Decimal, stock int64) (*model.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainErrors.ErrEmptyName
	}
	if price.IsNegative() {
		return nil, domainErrors.ErrNegativePrice
	}
	if stock < 0 {
		return nil, domainErrors.ErrNegativeStock
	}

	return u.products.Create(ctx, name, category, code, price, stock)
}

// Delete removes a product from the catalog.
func (u *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	err := u.products.Delete(ctx, id)
	if isNotFound(err) {
		return fmt.Errorf("%w: product %d", domainErrors.ErrProductNotFound, id)
	}
	return err
}

// Get fetches a product by identifier.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	product, err := u.products.GetByID(ctx, id)
	if isNotFound(err) {
		return nil, fmt.Errorf("%w: product %d", domainErrors.ErrProductNotFound, id)
	}
	return product, err
}

// List returns all catalog products.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// LowStock returns up to limit products with stock below threshold.
func (u *CatalogUseCase) LowStock(ctx context.Context, threshold int64, limit int) ([]model.Product, error) {
	return u.products.ListLowStock(ctx, threshold, limit)
}
