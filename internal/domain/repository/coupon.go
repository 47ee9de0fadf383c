package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tsogoo/minimart/internal/domain/model"
)

// CouponRepository describes persistence operations for discount coupons.
type CouponRepository interface {
	Create(ctx context.Context, code string, percent decimal.Decimal) (*model.Coupon, error)
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)
	List(ctx context.Context) ([]model.Coupon, error)
}
