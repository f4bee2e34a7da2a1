package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/coupons"
	appErrors "github.com/lusakaeats/restaurant-ordering-platform/internal/errors"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/metrics"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/pricing"
	repository "github.com/lusakaeats/restaurant-ordering-platform/internal/repositories"
)

type OrderService interface {
	Checkout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetOrderByToken(ctx context.Context, token string) (*models.Order, error)
	ListOrdersByRestaurant(ctx context.Context, restaurantID uuid.UUID, page, size int) ([]models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error)
}

type orderService struct {
	orders    repository.OrderRepository
	carts     repository.CartRepository
	notifier  *NotificationService
	sanitizer *bluemonday.Policy
}

func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository, notifier *NotificationService) OrderService {
	return &orderService{
		orders:    orders,
		carts:     carts,
		notifier:  notifier,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Checkout freezes the cart into an order. Unit prices, packaging and grams
// are copied, not referenced, so later menu edits never change what was
// bought. The live cart is cleared only after the order row is committed.
func (s *orderService) Checkout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.Order, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		return nil, appErrors.InternalError("Failed to retrieve cart").WithError(err)
	}

	if cart == nil || len(cart.Lines) == 0 {
		return nil, appErrors.BadRequestError("Cannot place an order with an empty cart")
	}

	switch req.OrderType {
	case models.OrderTypeDineIn:
		if strings.TrimSpace(req.TableNumber) == "" {
			return nil, appErrors.ValidationError("Table number is required for dine-in orders")
		}
	case models.OrderTypePickup, models.OrderTypeDelivery:
		if strings.TrimSpace(req.CustomerPhone) == "" {
			return nil, appErrors.ValidationError("Contact phone is required for pickup and delivery orders")
		}
	}

	var coupon *models.Coupon

	if cart.CouponCode != "" {
		if c, lookupErr := coupons.Lookup(cart.CouponCode); lookupErr == nil {
			coupon = c
		}
	}

	totals := pricing.ComputeTotals(cart.Lines, coupon)

	orderID := uuid.New()
	now := time.Now()

	items := make([]models.OrderItem, 0, len(cart.Lines))

	for i := range cart.Lines {
		line := &cart.Lines[i]

		items = append(items, models.OrderItem{
			ID:             uuid.New(),
			OrderID:        orderID,
			MenuItemID:     line.MenuItemID,
			Name:           line.Name,
			PricingType:    line.PricingType,
			UnitPrice:      line.UnitPrice,
			PackagingPrice: line.PackagingPrice,
			Quantity:       line.Quantity,
			Grams:          line.Grams,
			LineTotal:      pricing.LineTotal(line),
			CreatedAt:      now,
		})
	}

	order := &models.Order{
		ID:            orderID,
		Token:         uuid.NewString(),
		RestaurantID:  cart.RestaurantID,
		OrderType:     req.OrderType,
		CustomerName:  s.sanitizer.Sanitize(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		TableNumber:   strings.TrimSpace(req.TableNumber),
		Notes:         s.sanitizer.Sanitize(req.Notes),
		Items:         items,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		CouponCode:    cart.CouponCode,
		Total:         totals.Total,
		Status:        models.OrderStatusReceived,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, appErrors.DatabaseError("Failed to create order").WithError(err)
	}

	metrics.OrderPlaced(string(order.OrderType))

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		// The order exists; a stale cart is an inconvenience, not a failure.
		slog.Warn("Failed to clear cart after checkout",
			slog.String("sessionId", sessionID), slog.String("error", err.Error()))
	}

	if s.notifier != nil && order.CustomerEmail != "" {
		if err := s.notifier.SendOrderConfirmation(ctx, order); err != nil {
			slog.Warn("Failed to send order confirmation email",
				slog.String("orderId", order.ID.String()), slog.String("error", err.Error()))
		}
	}

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *orderService) GetOrderByToken(ctx context.Context, token string) (*models.Order, error) {
	order, err := s.orders.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrdersByRestaurant(ctx context.Context, restaurantID uuid.UUID, page, size int) ([]models.Order, int, error) {
	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 20
	}

	orders, total, err := s.orders.ListByRestaurant(ctx, restaurantID, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

// UpdateOrderStatus rejects unknown statuses and illegal transitions before
// anything is written. The returned order is the stored row after the write,
// so callers refresh their view from the confirmed value rather than
// advancing it optimistically.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	next, ok := models.ParseOrderStatus(status)
	if !ok {
		return nil, appErrors.ValidationError("Unknown order status: " + status)
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, appErrors.InvalidTransitionError(
			fmt.Sprintf("Cannot move order from %s to %s", order.Status, next))
	}

	updated, err := s.orders.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to update order status").WithError(err)
	}

	return updated, nil
}
