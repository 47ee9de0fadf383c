package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tsogoo/minimart/internal/domain/model"
	"github.com/tsogoo/minimart/internal/usecase"
)

// StoreFacade aggregates the store use cases behind a single surface used by
// the HTTP layer and the stock monitor.
type StoreFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	coupons  *usecase.CouponUseCase
	ledger   *usecase.LedgerUseCase
	checkout *usecase.CheckoutUseCase
}

func NewStoreFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	coupons *usecase.CouponUseCase,
	ledger *usecase.LedgerUseCase,
	checkout *usecase.CheckoutUseCase,
) *StoreFacade {
	return &StoreFacade{auth: auth, catalog: catalog, coupons: coupons, ledger: ledger, checkout: checkout}
}

func (f *StoreFacade) SignUp(ctx context.Context, username, password string, role model.Role) (string, error) {
	_, token, err := f.auth.SignUp(ctx, username, password, role)
	return token, err
}

func (f *StoreFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *StoreFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *StoreFacade) AddProduct(ctx context.Context, name, category, code string, price decimal.Decimal, stock int64) (*model.Product, error) {
	return f.catalog.AddProduct(ctx, name, category, code, price, stock)
}

func (f *StoreFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.Delete(ctx, id)
}

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StoreFacade) LowStockProducts(ctx context.Context, threshold int64, limit int) ([]model.Product, error) {
	return f.catalog.LowStock(ctx, threshold, limit)
}

func (f *StoreFacade) AddCoupon(ctx context.Context, code string, percent decimal.Decimal) (*model.Coupon, error) {
	return f.coupons.Add(ctx, code, percent)
}

func (f *StoreFacade) Coupons(ctx context.Context) ([]model.Coupon, error) {
	return f.coupons.List(ctx)
}

func (f *StoreFacade) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return f.ledger.Balance(ctx, userID)
}

func (f *StoreFacade) TopUp(ctx context.Context, userID int64, amount decimal.Decimal) error {
	return f.ledger.TopUp(ctx, userID, amount)
}

func (f *StoreFacade) PlaceOrder(ctx context.Context, userID int64, lines []usecase.LineInput, coupon string) (*model.Order, error) {
	return f.checkout.PlaceOrder(ctx, userID, lines, coupon)
}

func (f *StoreFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.checkout.Orders(ctx, userID)
}
