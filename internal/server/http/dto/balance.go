package dto

import "github.com/shopspring/decimal"

// TopUpRequest describes balance deposit payload.
type TopUpRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// BalanceResponse represents current cash balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}
