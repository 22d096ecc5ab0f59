package controllers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"jersey-hub/models"
	"jersey-hub/services"
)

type BannerController struct {
	catalog *services.CatalogService
}

func NewBannerController(catalog *services.CatalogService) *BannerController {
	return &BannerController{catalog: catalog}
}

// @Summary List banners
// @Description Get all active banners in display order
// @Tags Banners
// @Produce json
// @Success 200 {array} models.Banner
// @Failure 500 {object} models.ErrorResponse
// @Router /banners [get]
func (ctrl *BannerController) ListBanners(c *gin.Context) {
	banners, err := ctrl.catalog.ListBanners(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch banners"})
		return
	}
	c.JSON(200, banners)
}

// @Summary Create banner
// @Description Create a new banner (admin)
// @Tags Banners
// @Accept json
// @Produce json
// @Param banner body models.CreateBannerRequest true "Banner"
// @Success 201 {object} models.Banner
// @Failure 400 {object} models.ErrorResponse
// @Router /banners [post]
func (ctrl *BannerController) CreateBanner(c *gin.Context) {
	var req models.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid banner data"})
		return
	}

	banner, err := ctrl.catalog.CreateBanner(c.Request.Context(), req)
	if err != nil {
		log.Println("Failed to create banner:", err)
		c.JSON(500, gin.H{"error": "Failed to create banner"})
		return
	}

	c.JSON(201, banner)
}

// @Summary Update banner
// @Description Partially update a banner (admin)
// @Tags Banners
// @Accept json
// @Produce json
// @Param id path int true "Banner ID"
// @Param banner body models.UpdateBannerRequest true "Fields to update"
// @Success 200 {object} models.Banner
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /banners/{id} [put]
func (ctrl *BannerController) UpdateBanner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": "Banner not found"})
		return
	}

	var req models.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid banner data"})
		return
	}

	banner, err := ctrl.catalog.UpdateBanner(c.Request.Context(), id, req)
	if err != nil {
		log.Println("Failed to update banner:", err)
		c.JSON(500, gin.H{"error": "Failed to update banner"})
		return
	}
	if banner == nil {
		c.JSON(404, gin.H{"error": "Banner not found"})
		return
	}

	c.JSON(200, banner)
}

// @Summary Delete banner
// @Description Delete a banner permanently (admin)
// @Tags Banners
// @Produce json
// @Param id path int true "Banner ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /banners/{id} [delete]
func (ctrl *BannerController) DeleteBanner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": "Banner not found"})
		return
	}

	deleted, err := ctrl.catalog.DeleteBanner(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete banner"})
		return
	}
	if !deleted {
		c.JSON(404, gin.H{"error": "Banner not found"})
		return
	}

	c.Status(204)
}
