package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/http/middleware"
)

// InventoryHandler handles HTTP requests for inventory listings
type InventoryHandler struct {
	inventoryUseCase domain.InventoryUseCase
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryUseCase domain.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{
		inventoryUseCase: inventoryUseCase,
	}
}

// GetInventory handles listing one page of a user's inventory
// @Summary Get user inventory
// @Description Get one page of a user's inventory, filtered by name and rarity and sorted
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param page query int false "Page number" default(1)
// @Param name query string false "Case-insensitive name substring"
// @Param rarity query int false "Exact rarity tier"
// @Param sortBy query string false "Sort field" Enums(name, rarity, acquired)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.InventoryPage
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /users/{id}/inventory [get]
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			middleware.RespondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid page", http.StatusBadRequest, err))
			return
		}
		page = parsed
	}

	var filters domain.InventoryFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		middleware.RespondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", http.StatusBadRequest, err))
		return
	}

	result, err := h.inventoryUseCase.GetInventory(c.Request.Context(), c.Param("id"), page, filters)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
