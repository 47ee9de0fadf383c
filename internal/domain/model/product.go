package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product describes a catalog entry with a unit price and stock counter.
type Product struct {
	ID        int64
	Name      string
	Category  string
	Code      string
	Price     decimal.Decimal
	Stock     int64
	CreatedAt time.Time
}
