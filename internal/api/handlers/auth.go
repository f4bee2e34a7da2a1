package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/api/middleware"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	service "github.com/lusakaeats/restaurant-ordering-platform/internal/services"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/utils"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/utils/response"
)

type AuthHandler struct {
	staffService service.StaffService
	validator    *validator.Validate
}

func NewAuthHandler(staffService service.StaffService) *AuthHandler {
	return &AuthHandler{staffService: staffService, validator: validator.New()}
}

// Login godoc
//	@Summary	Staff login
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.LoginRequest	true	"Staff credentials"
//	@Success	200		{object}	models.LoginResponse
//	@Failure	401		{object}	response.ErrorResponse
//	@Router		/staff/login [post]
func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")

			return
		}

		resp, err := h.staffService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Staff login failed", slog.String("email", req.Email))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}
