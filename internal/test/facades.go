package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tsogoo/minimart/internal/domain/model"
	"github.com/tsogoo/minimart/internal/usecase"
)

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	AddFn      func(context.Context, string, string, string, decimal.Decimal, int64) (*model.Product, error)
	DeleteFn   func(context.Context, int64) error
	ProductsFn func(context.Context) ([]model.Product, error)
}

// AddProduct delegates to provided function or returns default product.
func (s CatalogFacadeStub) AddProduct(ctx context.Context, name, category, code string, price decimal.Decimal, stock int64) (*model.Product, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, name, category, code, price, stock)
	}
	return &model.Product{ID: 1, Name: name, Category: category, Code: code, Price: price, Stock: stock}, nil
}

// DeleteProduct executes configured delete handler.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// Products returns predefined catalog listing.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Pen", Code: "P001"}}, nil
}

// CouponFacadeStub simulates coupon operations.
type CouponFacadeStub struct {
	AddFn     func(context.Context, string, decimal.Decimal) (*model.Coupon, error)
	CouponsFn func(context.Context) ([]model.Coupon, error)
}

// AddCoupon delegates to provided function or echoes the request.
func (s CouponFacadeStub) AddCoupon(ctx context.Context, code string, percent decimal.Decimal) (*model.Coupon, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, code, percent)
	}
	return &model.Coupon{Code: code, Percent: percent}, nil
}

// Coupons returns preconfigured registry contents.
func (s CouponFacadeStub) Coupons(ctx context.Context) ([]model.Coupon, error) {
	if s.CouponsFn != nil {
		return s.CouponsFn(ctx)
	}
	return []model.Coupon{{Code: "SALE10", Percent: decimal.NewFromInt(10)}}, nil
}

// LedgerFacadeStub simulates balance operations.
type LedgerFacadeStub struct {
	BalanceFn func(context.Context, int64) (decimal.Decimal, error)
	TopUpFn   func(context.Context, int64, decimal.Decimal) error
}

// Balance returns stored balance or default value.
func (s LedgerFacadeStub) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return decimal.NewFromInt(100), nil
}

// TopUp executes configured top-up handler.
func (s LedgerFacadeStub) TopUp(ctx context.Context, userID int64, amount decimal.Decimal) error {
	if s.TopUpFn != nil {
		return s.TopUpFn(ctx, userID, amount)
	}
	return nil
}

// CheckoutFacadeStub provides controllable behaviour for order endpoints.
type CheckoutFacadeStub struct {
	PlaceFn  func(context.Context, int64, []usecase.LineInput, string) (*model.Order, error)
	OrdersFn func(context.Context, int64) ([]model.Order, error)
}

// PlaceOrder delegates to provided function or returns a paid order.
func (s CheckoutFacadeStub) PlaceOrder(ctx context.Context, userID int64, lines []usecase.LineInput, coupon string) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, lines, coupon)
	}
	return &model.Order{ID: "stub-order", UserID: userID, Status: model.OrderStatusPaid}, nil
}

// Orders returns predefined orders for given user.
func (s CheckoutFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: "stub-order", UserID: userID, Status: model.OrderStatusPaid}}, nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CouponFacadeStub
	LedgerFacadeStub
	CheckoutFacadeStub
}

// MonitorFacadeStub mimics stock monitor interactions with the store facade.
type MonitorFacadeStub struct {
	Batches        [][]model.Product
	LowStockFn     func(context.Context, int64, int) ([]model.Product, error)
	mu             sync.Mutex
	batchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *MonitorFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *MonitorFacadeStub) Unlock() { s.mu.Unlock() }

// LowStockProducts returns batches from configured queue.
func (s *MonitorFacadeStub) LowStockProducts(ctx context.Context, threshold int64, limit int) ([]model.Product, error) {
	if s.LowStockFn != nil {
		return s.LowStockFn(ctx, threshold, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}
