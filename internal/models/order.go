package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusReceived       OrderStatus = "received"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// orderTransitions is the single source of truth for the order lifecycle.
// delivered and cancelled are terminal; cancelled is reachable from every
// non-terminal state.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusReceived:       {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:      {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:          {OrderStatusDelivered, OrderStatusOutForDelivery, OrderStatusCancelled},
	OrderStatusOutForDelivery: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:      {},
	OrderStatusCancelled:      {},
}

// ParseOrderStatus rejects status strings outside the canonical set.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	if _, ok := orderTransitions[status]; !ok {
		return "", false
	}

	return status, true
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

// OrderItem is a frozen copy of a cart line taken at checkout. Later menu
// edits never change it.
type OrderItem struct {
	ID             uuid.UUID       `json:"id"`
	OrderID        uuid.UUID       `json:"order_id"`
	MenuItemID     uuid.UUID       `json:"menu_item_id"`
	Name           string          `json:"name"`
	PricingType    PricingType     `json:"pricing_type"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	PackagingPrice decimal.Decimal `json:"packaging_price"`
	Quantity       int             `json:"quantity"`
	Grams          int             `json:"grams,omitempty"`
	LineTotal      decimal.Decimal `json:"line_total"`
	CreatedAt      time.Time       `json:"created_at"`
}

type Order struct {
	ID            uuid.UUID       `json:"id"`
	Token         string          `json:"token"`
	RestaurantID  uuid.UUID       `json:"restaurant_id"`
	OrderType     OrderType       `json:"order_type"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	TableNumber   string          `json:"table_number,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Items         []OrderItem     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	CouponCode    string          `json:"coupon_code,omitempty"`
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CheckoutRequest struct {
	RestaurantID  uuid.UUID `json:"restaurant_id"  validate:"required"`
	OrderType     OrderType `json:"order_type"     validate:"required,oneof=dine_in pickup delivery"`
	CustomerName  string    `json:"customer_name"  validate:"omitempty,max=120"`
	CustomerPhone string    `json:"customer_phone" validate:"omitempty,max=20"`
	CustomerEmail string    `json:"customer_email" validate:"omitempty,email"`
	TableNumber   string    `json:"table_number"   validate:"omitempty,max=10"`
	Notes         string    `json:"notes"          validate:"omitempty,max=500"`
}

// Status arrives as a raw string so the service can reject unknown values with
// a domain error instead of a generic validation failure.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
