package dto

import "github.com/shopspring/decimal"

// CouponRequest describes coupon creation payload.
type CouponRequest struct {
	Code    string          `json:"code"`
	Percent decimal.Decimal `json:"percent"`
}

// CouponResponse describes coupon registry entry.
type CouponResponse struct {
	Code    string          `json:"code"`
	Percent decimal.Decimal `json:"percent"`
}
