package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the terminal state of a fulfilled order.
type OrderStatus string

// OrderStatusPaid is the single success status; failed checkouts never
// produce an order record.
const OrderStatusPaid OrderStatus = "PAID"

// OrderLine is one (product, quantity) pair within an order.
type OrderLine struct {
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// Order is the terminal output of a successful checkout transaction.
// It is never mutated after creation.
type Order struct {
	ID         string
	UserID     int64
	Lines      []OrderLine
	CouponCode string
	Total      decimal.Decimal
	Status     OrderStatus
	CreatedAt  time.Time
}
