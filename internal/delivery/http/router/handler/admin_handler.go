package handler

import (
	"log/slog"
	"net/http"

	"nearbuy/internal/delivery/http/response"
	"nearbuy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for admin handlers
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// GetMarketplaceStats returns the marketplace overview
func (h *AdminHandler) GetMarketplaceStats(c echo.Context) error {
	stats, err := h.adminUC.GetMarketplaceStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// RemoveUser deletes a user and the favorites the user owns
func (h *AdminHandler) RemoveUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.adminUC.RemoveUser(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"userId":  userID,
		"message": "User removed",
	})
}

// RemoveStore deletes a store, its products and any favorites referencing them
func (h *AdminHandler) RemoveStore(c echo.Context) error {
	storeID, err := pathID(c, "storeId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	if err := h.adminUC.RemoveStore(c.Request().Context(), storeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"storeId": storeID,
		"message": "Store removed",
	})
}
