package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest describes one requested order line.
type OrderLineRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// OrderRequest describes checkout payload.
type OrderRequest struct {
	Items  []OrderLineRequest `json:"items"`
	Coupon string             `json:"coupon,omitempty"`
}

// OrderLineResponse describes a priced order line.
type OrderLineResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse describes a completed order.
type OrderResponse struct {
	ID        string              `json:"id"`
	Items     []OrderLineResponse `json:"items"`
	Coupon    string              `json:"coupon,omitempty"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}
