package handlers

import (
	"log/slog"
	"net/http"

	"github.com/lusakaeats/restaurant-ordering-platform/internal/api/middleware"
	service "github.com/lusakaeats/restaurant-ordering-platform/internal/services"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/utils"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/utils/response"
)

type MenuHandler struct {
	menuService service.MenuService
}

func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenu godoc
//	@Summary	Get a restaurant's menu
//	@Tags		Menu
//	@Produce	json
//	@Param		id	path		string	true	"Restaurant ID (UUID)"	Format(uuid)
//	@Success	200	{object}	models.Menu
//	@Failure	400	{object}	response.ErrorResponse
//	@Router		/restaurants/{id}/menu [get]
func (h *MenuHandler) GetMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		restaurantID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		menu, err := h.menuService.GetMenu(r.Context(), restaurantID)
		if err != nil {
			logger.Error("Failed to get menu", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, menu)
	}
}
