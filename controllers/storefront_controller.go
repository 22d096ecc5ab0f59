package controllers

import (
	"github.com/gin-gonic/gin"

	"jersey-hub/services"
)

type StorefrontController struct {
	storefront *services.StorefrontService
}

func NewStorefrontController(storefront *services.StorefrontService) *StorefrontController {
	return &StorefrontController{storefront: storefront}
}

// @Summary Browse storefront
// @Description Run the homepage filter/sort pipeline: named shelves when no control is active, a combined result list otherwise
// @Tags Storefront
// @Produce json
// @Param category query string false "Category filter" Enums(all, club, national, retro)
// @Param q query string false "Free-text search over name, team and description"
// @Param sort query string false "Sort key" Enums(price-low, price-high, popular, featured)
// @Success 200 {object} services.StorefrontView
// @Failure 500 {object} models.ErrorResponse
// @Router /storefront [get]
func (ctrl *StorefrontController) Browse(c *gin.Context) {
	opts := services.FilterOptions{
		Category: c.DefaultQuery("category", "all"),
		Query:    c.Query("q"),
		SortBy:   c.Query("sort"),
	}

	view, err := ctrl.storefront.Browse(c.Request.Context(), opts)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load storefront"})
		return
	}

	c.JSON(200, view)
}
