package errors

import "errors"

// Checkout precondition failures. All are caller-input validation errors,
// never system faults; a checkout that returns one of these mutates nothing.
var (
	ErrEmptyOrder          = errors.New("order has no lines")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidCoupon       = errors.New("invalid coupon code")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Store validation failures.
var (
	ErrDuplicateCode     = errors.New("product code already registered")
	ErrEmptyName         = errors.New("product name must not be empty")
	ErrNegativePrice     = errors.New("price must not be negative")
	ErrNegativeStock     = errors.New("stock must not be negative")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrDuplicateCoupon   = errors.New("coupon code already registered")
	ErrInvalidPercent    = errors.New("discount percent out of range")
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
