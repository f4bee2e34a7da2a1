// Package coupons holds the static promotion table. New codes ship as code
// edits, there is no runtime coupon CRUD.
package coupons

import (
	"errors"
	"strings"

	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/shopspring/decimal"
)

var ErrUnknownCode = errors.New("unknown coupon code")

// directory keys are upper-cased; Lookup upper-cases its input before the
// exact match.
var directory = map[string]models.Coupon{
	"PANIPURI6": {
		Code:            "PANIPURI6",
		DiscountPercent: decimal.NewFromInt(40),
		MinOrderValue:   decimal.NewFromInt(100),
	},
	"WELCOME10": {
		Code:            "WELCOME10",
		DiscountPercent: decimal.NewFromInt(10),
		MinOrderValue:   decimal.NewFromInt(50),
	},
	"FEAST20": {
		Code:            "FEAST20",
		DiscountPercent: decimal.NewFromInt(20),
		MinOrderValue:   decimal.NewFromInt(250),
	},
}

func Lookup(code string) (*models.Coupon, error) {
	coupon, ok := directory[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, ErrUnknownCode
	}

	return &coupon, nil
}
