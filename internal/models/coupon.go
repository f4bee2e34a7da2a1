package models

import "github.com/shopspring/decimal"

// Coupon is static reference data. Codes are stored upper-cased and matched
// exactly after upper-casing the input.
type Coupon struct {
	Code            string          `json:"code"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	MinOrderValue   decimal.Decimal `json:"min_order_value"`
}
