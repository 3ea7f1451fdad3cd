package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"nearbuy/internal/delivery/http/response"
	"nearbuy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler holds dependencies for store-owner handlers
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// StoreSettingsRequest represents the request body for updating store settings
type StoreSettingsRequest struct {
	Address   string   `json:"address"`
	Location  string   `json:"location"`
	Hours     string   `json:"hours"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	SKU      string  `json:"sku" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category"`
	Stock    int     `json:"stock" validate:"gte=0"`
	Supplier string  `json:"supplier"`
}

// GetStoreData retrieves the store profile and its inventory
func (h *StoreHandler) GetStoreData(c echo.Context) error {
	storeID, err := pathID(c, "storeId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	data, err := h.storeUC.GetStoreData(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, data)
}

// UpdateStoreSettings updates the store's address, location, hours and coordinate
func (h *StoreHandler) UpdateStoreSettings(c echo.Context) error {
	storeID, err := pathID(c, "storeId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	var req StoreSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store settings input")
	}

	store, err := h.storeUC.UpdateStoreSettings(c.Request().Context(), storeID, &usecase.StoreSettingsInput{
		Address:   req.Address,
		Location:  req.Location,
		Hours:     req.Hours,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

// AddProduct creates a product under the store
func (h *StoreHandler) AddProduct(c echo.Context) error {
	storeID, err := pathID(c, "storeId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.storeUC.AddProduct(c.Request().Context(), storeID, productInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// EditProduct updates a product the store owns
func (h *StoreHandler) EditProduct(c echo.Context) error {
	storeID, err := pathID(c, "storeId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.storeUC.EditProduct(c.Request().Context(), storeID, productID, productInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a product the store owns
func (h *StoreHandler) DeleteProduct(c echo.Context) error {
	storeID, err := pathID(c, "storeId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.storeUC.DeleteProduct(c.Request().Context(), storeID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"productId": productID,
		"message":   "Product deleted",
	})
}

func productInput(req *ProductRequest) *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
		Supplier: req.Supplier,
	}
}

func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
