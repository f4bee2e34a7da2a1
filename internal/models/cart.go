package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Weight bounds for per_gram items. The storefront slider moves in 50g steps.
const (
	GramsMin     = 50
	GramsMax     = 1000
	GramsStep    = 50
	GramsDefault = 100
)

// CartLine carries the pricing fields resolved from the menu at add time, so
// totals never depend on a client-supplied price. Grams is only meaningful when
// PricingType is per_gram.
type CartLine struct {
	ID             uuid.UUID       `json:"id"`
	MenuItemID     uuid.UUID       `json:"menu_item_id"`
	Name           string          `json:"name"`
	PricingType    PricingType     `json:"pricing_type"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	PackagingPrice decimal.Decimal `json:"packaging_price"`
	Quantity       int             `json:"quantity"`
	Grams          int             `json:"grams,omitempty"`
}

type CartTotals struct {
	ItemsSubtotal     decimal.Decimal `json:"items_subtotal"`
	PackagingSubtotal decimal.Decimal `json:"packaging_subtotal"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Discount          decimal.Decimal `json:"discount"`
	Total             decimal.Decimal `json:"total"`
}

// Cart is scoped to one browsing session. Line order is insertion order.
type Cart struct {
	SessionID    string     `json:"session_id"`
	RestaurantID uuid.UUID  `json:"restaurant_id"`
	Lines        []CartLine `json:"lines"`
	CouponCode   string     `json:"coupon_code,omitempty"`
	Totals       CartTotals `json:"totals"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type AddItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" validate:"required"`
	Quantity   int       `json:"quantity"     validate:"required,min=1"`
	Grams      int       `json:"grams,omitempty"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required,max=40"`
}
