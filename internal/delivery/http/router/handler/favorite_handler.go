package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"nearbuy/internal/delivery/http/middleware"
	"nearbuy/internal/delivery/http/response"
	"nearbuy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for favorite-related handlers
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// AddFavoriteRequest represents the request body for favoriting a product
type AddFavoriteRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

// AddFavorite handles favoriting a product
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	added, err := h.favoriteUC.AddFavorite(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Already in favorites"
	status := http.StatusOK
	if added {
		message = "Added to favorites"
		status = http.StatusCreated
	}

	return response.Success(c, status, map[string]any{
		"productId": req.ProductID,
		"added":     added,
		"message":   message,
	})
}

// RemoveFavorite handles unfavoriting a product
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"productId": productID,
		"message":   "Removed from favorites",
	})
}

// CheckFavorite reports whether the caller has favorited the product
func (h *FavoriteHandler) CheckFavorite(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	favorited, err := h.favoriteUC.IsFavorite(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"productId":  productID,
		"isFavorite": favorited,
	})
}

// ListFavorites returns the caller's favorited products, optionally
// filtered and ranked by distance from the supplied position.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)

	constraint := &usecase.GeoConstraint{
		UserLat: parseOptionalFloat(c.QueryParam("lat")),
		UserLng: parseOptionalFloat(c.QueryParam("lng")),
		Radius:  parseOptionalFloat(c.QueryParam("radius")),
	}

	result, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID, constraint)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
