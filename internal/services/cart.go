package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/coupons"
	appErrors "github.com/lusakaeats/restaurant-ordering-platform/internal/errors"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/metrics"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/pricing"
	repository "github.com/lusakaeats/restaurant-ordering-platform/internal/repositories"
)

// CartService owns the session cart. It is the single source of truth for
// what the customer currently owes: every mutation recomputes and persists
// the totals block before returning.
type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, lineID uuid.UUID, quantity int) (*models.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, lineID uuid.UUID) (*models.Cart, error)
	ApplyCoupon(ctx context.Context, sessionID string, code string) (*models.Cart, error)
	ClearCoupon(ctx context.Context, sessionID string) (*models.Cart, error)
}

type cartService struct {
	carts repository.CartRepository
	menu  repository.MenuRepository
}

func NewCartService(carts repository.CartRepository, menu repository.MenuRepository) CartService {
	return &cartService{carts: carts, menu: menu}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			// A fresh session simply has an empty cart.
			return emptyCart(sessionID), nil
		}

		return nil, appErrors.InternalError("Failed to retrieve cart").WithError(err)
	}

	return cart, nil
}

func emptyCart(sessionID string) *models.Cart {
	now := time.Now()

	return &models.Cart{
		SessionID: sessionID,
		Totals:    pricing.ComputeTotals(nil, nil),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem resolves the menu item server-side and never trusts client prices.
// Re-adding a fixed-price item merges into the existing line; per-gram items
// always append a new line, each weighed packet is a distinct purchase.
func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {
	item, err := s.menu.GetItemByID(ctx, req.MenuItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Menu item not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to resolve menu item").WithError(err)
	}

	if !item.Available {
		return nil, appErrors.BadRequestError("Item is currently unavailable: " + item.Name)
	}

	grams := 0

	if item.PricingType == models.PricingPerGram {
		grams = req.Grams
		if grams == 0 {
			grams = models.GramsDefault
		}

		if grams < models.GramsMin || grams > models.GramsMax || grams%models.GramsStep != 0 {
			return nil, appErrors.ValidationError(fmt.Sprintf(
				"Weight must be between %dg and %dg in steps of %dg", models.GramsMin, models.GramsMax, models.GramsStep))
		}
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, appErrors.InternalError("Failed to retrieve cart").WithError(err)
		}

		cart = emptyCart(sessionID)
		cart.RestaurantID = item.RestaurantID
	}

	if len(cart.Lines) > 0 && cart.RestaurantID != item.RestaurantID {
		return nil, appErrors.BadRequestError("Cart can only hold items from one restaurant")
	}

	cart.RestaurantID = item.RestaurantID

	merged := false

	if item.PricingType == models.PricingFixed {
		for i := range cart.Lines {
			if cart.Lines[i].MenuItemID == item.ID {
				cart.Lines[i].Quantity += req.Quantity
				merged = true

				break
			}
		}
	}

	if !merged {
		cart.Lines = append(cart.Lines, models.CartLine{
			ID:             uuid.New(),
			MenuItemID:     item.ID,
			Name:           item.Name,
			PricingType:    item.PricingType,
			UnitPrice:      item.Price,
			PackagingPrice: item.PackagingPrice,
			Quantity:       req.Quantity,
			Grams:          grams,
		})
	}

	return s.persist(ctx, cart)
}

// UpdateQuantity sets the line quantity directly; anything below one removes
// the line instead of clamping.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, lineID uuid.UUID, quantity int) (*models.Cart, error) {
	cart, err := s.getExisting(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := findLine(cart, lineID)
	if idx < 0 {
		return nil, appErrors.BadRequestError("Item not found in the cart")
	}

	if quantity < 1 {
		cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)
	} else {
		cart.Lines[idx].Quantity = quantity
	}

	return s.persist(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, lineID uuid.UUID) (*models.Cart, error) {
	cart, err := s.getExisting(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := findLine(cart, lineID)
	if idx < 0 {
		return nil, appErrors.BadRequestError("Item not found in the cart")
	}

	cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)

	return s.persist(ctx, cart)
}

// ApplyCoupon validates eligibility before anything is stored: failure leaves
// the cart exactly as it was and tells the caller which check failed.
func (s *cartService) ApplyCoupon(ctx context.Context, sessionID string, code string) (*models.Cart, error) {
	cart, err := s.getExisting(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	coupon, err := coupons.Lookup(code)
	if err != nil {
		return nil, appErrors.CouponIneligibleError("Invalid coupon code").WithError(err)
	}

	subtotal := pricing.Subtotal(cart.Lines)

	if err := pricing.CheckEligibility(subtotal, coupon); err != nil {
		return nil, appErrors.CouponIneligibleError(
			fmt.Sprintf("Order minimum of %s not met", coupon.MinOrderValue.String())).WithError(err)
	}

	cart.CouponCode = coupon.Code
	metrics.CouponApplied(coupon.Code)

	return s.persist(ctx, cart)
}

func (s *cartService) ClearCoupon(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.getExisting(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.CouponCode = ""

	return s.persist(ctx, cart)
}

func (s *cartService) getExisting(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, appErrors.NotFoundError("Cart not found").WithError(err)
		}

		return nil, appErrors.InternalError("Failed to retrieve cart").WithError(err)
	}

	return cart, nil
}

func findLine(cart *models.Cart, lineID uuid.UUID) int {
	for i := range cart.Lines {
		if cart.Lines[i].ID == lineID {
			return i
		}
	}

	return -1
}

// persist recomputes totals and saves. An applied coupon is kept even when
// the cart later shrinks below its minimum; the engine then contributes a
// zero discount until the cart qualifies again.
func (s *cartService) persist(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	var coupon *models.Coupon

	if cart.CouponCode != "" {
		if c, err := coupons.Lookup(cart.CouponCode); err == nil {
			coupon = c
		}
	}

	cart.Totals = pricing.ComputeTotals(cart.Lines, coupon)
	cart.UpdatedAt = time.Now()

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, appErrors.InternalError("Failed to update cart").WithError(err)
	}

	return cart, nil
}
