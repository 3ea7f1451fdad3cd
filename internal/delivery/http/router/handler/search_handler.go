// Package handler contains the echo handlers for the HTTP API.
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

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for catalog search handlers
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// Search evaluates one catalog search. Every parameter is optional:
// unusable location or radius values disable radius filtering rather than
// failing the request.
func (h *SearchHandler) Search(c echo.Context) error {
	input := &usecase.SearchInput{
		Query:   c.QueryParam("query"),
		Filter:  c.QueryParam("filter"),
		UserLat: parseOptionalFloat(c.QueryParam("lat")),
		UserLng: parseOptionalFloat(c.QueryParam("lng")),
		Radius:  parseOptionalFloat(c.QueryParam("radius")),
	}

	if userID, ok := middleware.GetUserID(c); ok {
		input.UserID = &userID
	}

	result, err := h.searchUC.Search(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// parseOptionalFloat returns nil for absent or unparseable values, leaving
// the corresponding feature disabled.
func parseOptionalFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &v
}
