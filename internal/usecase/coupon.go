package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	domainErrors "github.com/tsogoo/minimart/internal/domain/errors"
	"github.com/tsogoo/minimart/internal/domain/model"
	"github.com/tsogoo/minimart/internal/domain/repository"
)

// CouponUseCase manages percentage discount coupons.
type CouponUseCase struct {
	coupons repository.CouponRepository
}

// NewCouponUseCase constructs CouponUseCase.
func NewCouponUseCase(coupons repository.CouponRepository) *CouponUseCase {
	return &CouponUseCase{coupons: coupons}
}

// Add registers a coupon. Percent must be within [0, 100].
func (u *CouponUseCase) Add(ctx context.Context, code string, percent decimal.Decimal) (*model.Coupon, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: empty code", domainErrors.ErrInvalidCoupon)
	}
	if percent.IsNegative() || percent.GreaterThan(oneHundred) {
		return nil, fmt.Errorf("%w: %s", domainErrors.ErrInvalidPercent, percent)
	}
	return u.coupons.Create(ctx, code, percent)
}

// Lookup returns the discount percentage registered for the code.
func (u *CouponUseCase) Lookup(ctx context.Context, code string) (decimal.Decimal, error) {
	coupon, err := u.coupons.GetByCode(ctx, code)
	if err != nil {
		if isNotFound(err) {
			return decimal.Zero, fmt.Errorf("%w: %s", domainErrors.ErrInvalidCoupon, code)
		}
		return decimal.Zero, err
	}
	return coupon.Percent, nil
}

// List returns all registered coupons.
func (u *CouponUseCase) List(ctx context.Context) ([]model.Coupon, error) {
	return u.coupons.List(ctx)
}
