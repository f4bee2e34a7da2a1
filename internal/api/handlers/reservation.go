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

type ReservationHandler struct {
	reservationService service.ReservationService
	validator          *validator.Validate
}

func NewReservationHandler(reservationService service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService, validator: validator.New()}
}

// CreateReservation godoc
//	@Summary	Request a table reservation
//	@Tags		Reservations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.CreateReservationRequest	true	"Reservation details"
//	@Success	201		{object}	models.Reservation
//	@Failure	400		{object}	response.ErrorResponse
//	@Router		/reservations [post]
func (h *ReservationHandler) CreateReservation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateReservationRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid reservation input")

			return
		}

		reservation, err := h.reservationService.CreateReservation(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create reservation", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, reservation)
	}
}

// GetReservation returns a single reservation for staff review.
func (h *ReservationHandler) GetReservation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		reservation, err := h.reservationService.GetReservationByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get reservation", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, reservation)
	}
}

// ListReservations lists a restaurant's reservations for the authenticated staff user.
func (h *ReservationHandler) ListReservations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized reservation list attempt: missing user claims")
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

		reservations, total, err := h.reservationService.ListReservationsByRestaurant(r.Context(), claims.RestaurantID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list reservations", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     reservations,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// UpdateReservationStatus godoc
//	@Summary		Update reservation status (staff)
//	@Description	Moves a reservation along its lifecycle. Illegal transitions are rejected.
//	@Tags			Reservations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string									true	"Reservation ID (UUID)"	Format(uuid)
//	@Param			request	body		models.UpdateReservationStatusRequest	true	"New status"
//	@Success		200		{object}	models.Reservation
//	@Failure		409		{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/reservations/{id}/status [patch]
func (h *ReservationHandler) UpdateReservationStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.UpdateReservationStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid reservation status input")

			return
		}

		reservation, err := h.reservationService.UpdateReservationStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Error("Failed to update reservation status", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, reservation)
	}
}
