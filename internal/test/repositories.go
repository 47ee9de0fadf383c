package test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/tsogoo/minimart/internal/domain/errors"
	"github.com/tsogoo/minimart/internal/domain/model"
)

// ProductRepositoryStub stores catalog products in-memory for tests.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	ByCode   map[string]int64
	Next     int64
	Err      error
}

// NewProductRepositoryStub constructs stub repository with initialized maps.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{
		Products: make(map[int64]*model.Product),
		ByCode:   make(map[string]int64),
		Next:     1,
	}
}

// Create registers product unless code is taken or stub has explicit error.
func (s *ProductRepositoryStub) Create(ctx context.Context, name, category, code string, price decimal.Decimal, stock int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByCode[code]; exists {
		return nil, domainErrors.ErrDuplicateCode
	}
	product := &model.Product{
		ID:        s.Next,
		Name:      name,
		Category:  category,
		Code:      code,
		Price:     price,
		Stock:     stock,
		CreatedAt: time.Now(),
	}
	s.Next++
	s.Products[product.ID] = product
	s.ByCode[code] = product.ID
	return product, nil
}

// GetByID fetches product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByCode fetches product by catalog code.
func (s *ProductRepositoryStub) GetByCode(ctx context.Context, code string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if id, ok := s.ByCode[code]; ok {
		return s.GetByID(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// List returns products ordered by identifier.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Delete removes product or reports not found.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	p, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	delete(s.ByCode, p.Code)
	return nil
}

// DecrementStock reduces stock of stored product.
func (s *ProductRepositoryStub) DecrementStock(ctx context.Context, id, qty int64) error {
	if s.Err != nil {
		return s.Err
	}
	p, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if p.Stock < qty {
		return domainErrors.ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

// ListLowStock returns products with stock below threshold.
func (s *ProductRepositoryStub) ListLowStock(ctx context.Context, threshold int64, limit int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	all, _ := s.List(ctx)
	result := make([]model.Product, 0)
	for _, p := range all {
		if p.Stock < threshold {
			result = append(result, p)
		}
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless username is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrDuplicateUsername
	}
	user := &model.User{
		ID:           s.Next,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		Balance:      decimal.Zero,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AddBalance credits stored user's balance.
func (s *UserRepositoryStub) AddBalance(ctx context.Context, userID int64, amount decimal.Decimal) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.Balance = user.Balance.Add(amount)
	return nil
}

// CouponRepositoryStub stores coupons in-memory for tests.
type CouponRepositoryStub struct {
	Coupons map[string]*model.Coupon
	Err     error
}

// NewCouponRepositoryStub constructs stub repository with initialized map.
func NewCouponRepositoryStub() *CouponRepositoryStub {
	return &CouponRepositoryStub{Coupons: make(map[string]*model.Coupon)}
}

// Create registers coupon unless code is taken.
func (s *CouponRepositoryStub) Create(ctx context.Context, code string, percent decimal.Decimal) (*model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Coupons[code]; exists {
		return nil, domainErrors.ErrDuplicateCoupon
	}
	coupon := &model.Coupon{Code: code, Percent: percent, CreatedAt: time.Now()}
	s.Coupons[code] = coupon
	return coupon, nil
}

// GetByCode fetches coupon or returns not found.
func (s *CouponRepositoryStub) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if coupon, ok := s.Coupons[code]; ok {
		copied := *coupon
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored coupons.
func (s *CouponRepositoryStub) List(ctx context.Context) ([]model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Coupon, 0, len(s.Coupons))
	for _, c := range s.Coupons {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

// OrderRepositoryStub records paid orders and applies their mutations to the
// linked product/user stubs, mimicking the storage transaction.
type OrderRepositoryStub struct {
	Orders   []model.Order
	Products *ProductRepositoryStub
	Users    *UserRepositoryStub
	CreateFn func(context.Context, *model.Order) error
	Err      error
}

// CreatePaid applies stock decrements and the balance debit, then stores the order.
func (s *OrderRepositoryStub) CreatePaid(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return s.Err
	}
	if s.Products != nil {
		for _, line := range order.Lines {
			if err := s.Products.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				return err
			}
		}
	}
	if s.Users != nil {
		user, ok := s.Users.ByID[order.UserID]
		if !ok {
			return domainErrors.ErrNotFound
		}
		if user.Balance.LessThan(order.Total) {
			return domainErrors.ErrInsufficientBalance
		}
		user.Balance = user.Balance.Sub(order.Total)
	}
	s.Orders = append(s.Orders, *order)
	return nil
}

// GetByID fetches stored order by identifier.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			copied := s.Orders[i]
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns stored orders of the user, newest first.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Order, 0)
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}
