package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/api/middleware"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/errors"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	service "github.com/lusakaeats/restaurant-ordering-platform/internal/services"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/utils"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// Checkout godoc
//	@Summary		Place an order from the session cart
//	@Description	Snapshots the current cart into an order and clears the cart. Dine-in orders need a table number; pickup and delivery need a contact phone.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					true	"Session ID"
//	@Param			order			body		models.CheckoutRequest	true	"Checkout details"
//	@Success		201				{object}	models.Order
//	@Failure		400				{object}	response.ErrorResponse	"Validation error or empty cart"
//	@Failure		500				{object}	response.ErrorResponse
//	@Router			/orders [post]
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")

			return
		}

		order, err := h.orderService.Checkout(r.Context(), session, &req)
		if err != nil {
			logger.Error("Failed to place order", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order placed", slog.String("orderId", order.ID.String()))
		response.Success(w, http.StatusCreated, order)
	}
}

// TrackOrder godoc
//	@Summary		Track an order by its customer token
//	@Tags			Orders
//	@Produce		json
//	@Param			token	path		string	true	"Tracking token"
//	@Success		200		{object}	models.Order
//	@Failure		404		{object}	response.ErrorResponse
//	@Router			/orders/token/{token} [get]
func (h *OrderHandler) TrackOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		token := r.PathValue("token")
		if token == "" {
			response.Error(w, errors.ValidationError("Tracking token is required"))

			return
		}

		order, err := h.orderService.GetOrderByToken(r.Context(), token)
		if err != nil {
			logger.Warn("Order lookup by token failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		order, err := h.orderService.GetOrderByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get order", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ListOrders lists a restaurant's orders for the authenticated staff user.
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized order list attempt: missing user claims")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
		if err != nil || pageSize < 1 || pageSize > 100 {
			pageSize = 20
		}

		orders, total, err := h.orderService.ListOrdersByRestaurant(r.Context(), claims.RestaurantID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     orders,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// UpdateOrderStatus godoc
//	@Summary		Update order status (staff)
//	@Description	Moves an order along its lifecycle. Unknown statuses and illegal transitions are rejected; the stored status is unchanged on failure.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Order ID (UUID)"	Format(uuid)
//	@Param			status	body		models.UpdateOrderStatusRequest	true	"New status"
//	@Success		200		{object}	models.Order
//	@Failure		400		{object}	response.ErrorResponse	"Unknown status"
//	@Failure		404		{object}	response.ErrorResponse
//	@Failure		409		{object}	response.ErrorResponse	"Illegal transition"
//	@Security		BearerAuth
//	@Router			/orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update order status input")

			return
		}

		order, err := h.orderService.UpdateOrderStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Error("Failed to update order status",
				slog.String("orderId", id.String()),
				slog.String("newStatus", req.Status),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order status updated",
			slog.String("orderId", id.String()),
			slog.String("status", string(order.Status)))
		response.Success(w, http.StatusOK, order)
	}
}
