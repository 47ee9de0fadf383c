package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tsogoo/minimart/internal/domain/model"
	"github.com/tsogoo/minimart/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	SignUp(ctx context.Context, username, password string, role model.Role) (string, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (int64, error)
	User(ctx context.Context, id int64) (*model.User, error)
}

// CatalogFacade encapsulates product management exposed via HTTP.
type CatalogFacade interface {
	AddProduct(ctx context.Context, name, category, code string, price decimal.Decimal, stock int64) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	Products(ctx context.Context) ([]model.Product, error)
}

// CouponFacade encapsulates coupon registry operations.
type CouponFacade interface {
	AddCoupon(ctx context.Context, code string, percent decimal.Decimal) (*model.Coupon, error)
	Coupons(ctx context.Context) ([]model.Coupon, error)
}

// LedgerFacade provides cash balance operations.
type LedgerFacade interface {
	Balance(ctx context.Context, userID int64) (decimal.Decimal, error)
	TopUp(ctx context.Context, userID int64, amount decimal.Decimal) error
}

// CheckoutFacade exposes order placement and history.
type CheckoutFacade interface {
	PlaceOrder(ctx context.Context, userID int64, lines []usecase.LineInput, coupon string) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	CouponFacade
	LedgerFacade
	CheckoutFacade
}
