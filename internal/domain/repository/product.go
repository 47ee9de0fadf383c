package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tsogoo/minimart/internal/domain/model"
)

// ProductRepository describes persistence operations for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, name, category, code string, price decimal.Decimal, stock int64) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	GetByCode(ctx context.Context, code string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Delete(ctx context.Context, id int64) error
	DecrementStock(ctx context.Context, id, qty int64) error
	ListLowStock(ctx context.Context, threshold int64, limit int) ([]model.Product, error)
}
