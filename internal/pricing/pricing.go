// Package pricing computes cart money amounts. Everything here is a pure
// function over resolved cart lines; full decimal precision is kept throughout,
// display rounding belongs to the presentation layer.
package pricing

import (
	"errors"

	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/shopspring/decimal"
)

// ErrMinimumNotMet is returned when a coupon exists but the cart subtotal is
// below its minimum order value. Callers distinguish this from an unknown code.
var ErrMinimumNotMet = errors.New("order subtotal below coupon minimum")

var oneHundred = decimal.NewFromInt(100)

// LineTotal prices a single line. Fixed items are unit price times quantity.
// For per_gram items the unit price is a price per gram and compounds across
// both the chosen weight and the quantity: two 100g packets cost
// price * 100 * 2. The compounding is deliberate, each packet is weighed.
func LineTotal(line *models.CartLine) decimal.Decimal {
	qty := decimal.NewFromInt(int64(line.Quantity))

	if line.PricingType == models.PricingPerGram {
		grams := decimal.NewFromInt(int64(line.Grams))

		return line.UnitPrice.Mul(grams).Mul(qty)
	}

	return line.UnitPrice.Mul(qty)
}

// PackagingTotal is packaging price times quantity regardless of pricing mode.
func PackagingTotal(line *models.CartLine) decimal.Decimal {
	return line.PackagingPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

func ItemsSubtotal(lines []models.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for i := range lines {
		sum = sum.Add(LineTotal(&lines[i]))
	}

	return sum
}

func PackagingSubtotal(lines []models.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for i := range lines {
		sum = sum.Add(PackagingTotal(&lines[i]))
	}

	return sum
}

func Subtotal(lines []models.CartLine) decimal.Decimal {
	return ItemsSubtotal(lines).Add(PackagingSubtotal(lines))
}

// CheckEligibility reports whether the coupon may be applied to the given
// subtotal. The cart state is never touched here; callers decide messaging.
func CheckEligibility(subtotal decimal.Decimal, coupon *models.Coupon) error {
	if subtotal.LessThan(coupon.MinOrderValue) {
		return ErrMinimumNotMet
	}

	return nil
}

// DiscountAmount is subtotal * percent / 100 when the coupon is applied and
// eligible, zero otherwise.
func DiscountAmount(subtotal decimal.Decimal, coupon *models.Coupon) decimal.Decimal {
	if coupon == nil || subtotal.LessThan(coupon.MinOrderValue) {
		return decimal.Zero
	}

	return subtotal.Mul(coupon.DiscountPercent).Div(oneHundred)
}

// Total is the grand total after discount, clamped at zero so a 100% coupon
// can never produce a negative amount owed.
func Total(lines []models.CartLine, coupon *models.Coupon) decimal.Decimal {
	subtotal := Subtotal(lines)

	total := subtotal.Sub(DiscountAmount(subtotal, coupon))
	if total.IsNegative() {
		return decimal.Zero
	}

	return total
}

// ComputeTotals fills a totals block from the lines and optional coupon. The
// cart store calls this after every mutation so the persisted cart always
// carries fresh numbers.
func ComputeTotals(lines []models.CartLine, coupon *models.Coupon) models.CartTotals {
	items := ItemsSubtotal(lines)
	packaging := PackagingSubtotal(lines)
	subtotal := items.Add(packaging)
	discount := DiscountAmount(subtotal, coupon)

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return models.CartTotals{
		ItemsSubtotal:     items,
		PackagingSubtotal: packaging,
		Subtotal:          subtotal,
		Discount:          discount,
		Total:             total,
	}
}
