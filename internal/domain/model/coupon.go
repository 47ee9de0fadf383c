package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon grants a percentage discount on the raw order total.
// Coupons are immutable once registered.
type Coupon struct {
	Code      string
	Percent   decimal.Decimal
	CreatedAt time.Time
}
