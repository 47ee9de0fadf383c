package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/tsogoo/minimart/internal/domain/errors"
	"github.com/tsogoo/minimart/internal/domain/model"
	"github.com/tsogoo/minimart/internal/domain/repository"
)

// LineInput is one requested (product, quantity) pair of a checkout call.
type LineInput struct {
	ProductID int64
	Quantity  int64
}

// CheckoutUseCase validates an order request against catalog, coupons and the
// user's balance, then commits stock decrements and the balance debit as one
// transaction. Validation fully precedes mutation: a rejected checkout leaves
// every store untouched.
type CheckoutUseCase struct {
	products repository.ProductRepository
	coupons  repository.CouponRepository
	users    repository.UserRepository
	orders   repository.OrderRepository
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	products repository.ProductRepository,
	coupons repository.CouponRepository,
	users repository.UserRepository,
	orders repository.OrderRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{products: products, coupons: coupons, users: users, orders: orders}
}

var oneHundred = decimal.NewFromInt(100)

// PlaceOrder runs the checkout transaction for the user. Lines with the same
// product are treated as independent lines, not merged. An empty couponCode
// means no discount. Every precondition is checked before any mutation; the
// commit itself is atomic from the caller's perspective.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, userID int64, lines []LineInput, couponCode string) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}

	resolved := make([]model.OrderLine, 0, len(lines))
	stocks := make([]int64, 0, len(lines))
	for i, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: line %d has quantity %d", domainErrors.ErrInvalidQuantity, i, line.Quantity)
		}
		product, err := u.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if isNotFound(err) {
				return nil, fmt.Errorf("%w: product %d", domainErrors.ErrProductNotFound, line.ProductID)
			}
			return nil, err
		}
		qty := decimal.NewFromInt(line.Quantity)
		resolved = append(resolved, model.OrderLine{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			Subtotal:  product.Price.Mul(qty),
		})
		stocks = append(stocks, product.Stock)
	}

	rawTotal := decimal.Zero
	for _, line := range resolved {
		rawTotal = rawTotal.Add(line.Subtotal)
	}

	total := rawTotal
	if couponCode != "" {
		coupon, err := u.coupons.GetByCode(ctx, couponCode)
		if err != nil {
			if isNotFound(err) {
				return nil, fmt.Errorf("%w: %s", domainErrors.ErrInvalidCoupon, couponCode)
			}
			return nil, err
		}
		discount := rawTotal.Mul(coupon.Percent).Div(oneHundred)
		total = rawTotal.Sub(discount)
		if total.IsNegative() {
			total = decimal.Zero
		}
	}
	// debit in currency minor units
	total = total.Round(2)

	// all lines checked before any stock is touched
	for i, line := range resolved {
		if line.Quantity > stocks[i] {
			return nil, fmt.Errorf("%w: product %d has %d left, requested %d",
				domainErrors.ErrInsufficientStock, line.ProductID, stocks[i], line.Quantity)
		}
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Balance.LessThan(total) {
		return nil, fmt.Errorf("%w: balance %s, order total %s",
			domainErrors.ErrInsufficientBalance, user.Balance, total)
	}

	order := &model.Order{
		ID:         uuid.NewString(),
		UserID:     userID,
		Lines:      resolved,
		CouponCode: couponCode,
		Total:      total,
		Status:     model.OrderStatusPaid,
		CreatedAt:  time.Now(),
	}

	if err := u.orders.CreatePaid(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// Orders returns fulfilled orders of the user, newest first.
func (u *CheckoutUseCase) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Order fetches a single order by identifier.
func (u *CheckoutUseCase) Order(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}
