package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PricingType string

const (
	PricingFixed   PricingType = "fixed"
	PricingPerGram PricingType = "per_gram"
)

type Category struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MenuItem is catalog-owned and immutable from the cart's perspective.
// For per_gram items Price is the price per gram.
type MenuItem struct {
	ID             uuid.UUID       `json:"id"`
	RestaurantID   uuid.UUID       `json:"restaurant_id"`
	CategoryID     uuid.UUID       `json:"category_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          decimal.Decimal `json:"price"`
	PackagingPrice decimal.Decimal `json:"packaging_price"`
	PricingType    PricingType     `json:"pricing_type"`
	Available      bool            `json:"available"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type Menu struct {
	RestaurantID uuid.UUID  `json:"restaurant_id"`
	Categories   []Category `json:"categories"`
	Items        []MenuItem `json:"items"`
}
