package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/api/middleware"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/errors"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	service "github.com/lusakaeats/restaurant-ordering-platform/internal/services"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/utils"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/utils/response"
)

// SessionHeader identifies the browsing session that owns the cart.
const SessionHeader = "X-Session-ID"

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

func sessionID(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.Header.Get(SessionHeader))
	if id == "" {
		return "", errors.ValidationError("Session ID is required")
	}

	return id, nil
}

// GetCart godoc
//	@Summary		Get the session cart
//	@Description	Returns the cart for the current browsing session, with fresh totals.
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	true	"Session ID"
//	@Success		200				{object}	models.Cart
//	@Failure		400				{object}	response.ErrorResponse
//	@Router			/carts [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		cart, err := h.cartService.GetCart(r.Context(), session)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add a menu item to the cart
//	@Description	Resolves the item from the menu and adds it. Fixed-price items merge into an existing line; per-gram items always append a new line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					true	"Session ID"
//	@Param			item			body		models.AddItemRequest	true	"Item to add"
//	@Success		200				{object}	models.Cart
//	@Failure		400				{object}	response.ErrorResponse
//	@Failure		404				{object}	response.ErrorResponse	"Menu item not found"
//	@Router			/carts/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")

			return
		}

		cart, err := h.cartService.AddItem(r.Context(), session, &req)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Item added to cart", slog.String("menuItemId", req.MenuItemID.String()))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity sets a line's quantity; anything below one removes the line.
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		lineID, err := utils.ParseID(r, "lineId")
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")

			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), session, lineID, req.Quantity)
		if err != nil {
			logger.Error("Failed to update quantity", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		lineID, err := utils.ParseID(r, "lineId")
		if err != nil {
			response.Error(w, err)

			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), session, lineID)
		if err != nil {
			logger.Error("Failed to remove item", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ApplyCoupon godoc
//	@Summary		Apply a coupon code
//	@Description	Validates the code against the promotion table and the cart subtotal. Failure leaves the cart unchanged and reports whether the code was unknown or the minimum was not met.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string						true	"Session ID"
//	@Param			coupon			body		models.ApplyCouponRequest	true	"Coupon code"
//	@Success		200				{object}	models.Cart
//	@Failure		422				{object}	response.ErrorResponse	"Unknown code or minimum not met"
//	@Router			/carts/coupon [post]
func (h *CartHandler) ApplyCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.ApplyCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid apply coupon input")

			return
		}

		cart, err := h.cartService.ApplyCoupon(r.Context(), session, req.Code)
		if err != nil {
			logger.Warn("Coupon application rejected", slog.String("code", req.Code), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Coupon applied", slog.String("code", cart.CouponCode))
		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) ClearCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		cart, err := h.cartService.ClearCoupon(r.Context(), session)
		if err != nil {
			logger.Error("Failed to clear coupon", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
