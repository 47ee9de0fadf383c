package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest describes catalog creation payload.
type ProductRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Code     string          `json:"code"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
}

// ProductResponse describes catalog listing entry.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Code      string          `json:"code"`
	Price     decimal.Decimal `json:"price"`
	Stock     int64           `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}
