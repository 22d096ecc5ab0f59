package controllers

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jersey-hub/models"
	"jersey-hub/services"
)

const jerseyListCacheKey = "jerseys_list"

type JerseyController struct {
	catalog *services.CatalogService
}

func NewJerseyController(catalog *services.CatalogService) *JerseyController {
	return &JerseyController{catalog: catalog}
}

func invalidateJerseyCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "jerseys_list*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary List jerseys
// @Description Get all active jerseys
// @Tags Jerseys
// @Produce json
// @Success 200 {array} models.Jersey
// @Failure 500 {object} models.ErrorResponse
// @Router /jerseys [get]
func (ctrl *JerseyController) ListJerseys(c *gin.Context) {
	ctx := c.Request.Context()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, jerseyListCacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	jerseys, err := ctrl.catalog.ListJerseys(ctx)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch jerseys"})
		return
	}

	if models.RedisClient != nil {
		if jsonData, err := json.Marshal(jerseys); err == nil {
			models.RedisClient.Set(ctx, jerseyListCacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(200, jerseys)
}

// @Summary Get jersey by ID
// @Description Get a single jersey
// @Tags Jerseys
// @Produce json
// @Param id path int true "Jersey ID"
// @Success 200 {object} models.Jersey
// @Failure 404 {object} models.ErrorResponse
// @Router /jerseys/{id} [get]
func (ctrl *JerseyController) GetJersey(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": "Jersey not found"})
		return
	}

	jersey, err := ctrl.catalog.GetJersey(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch jersey"})
		return
	}
	if jersey == nil {
		c.JSON(404, gin.H{"error": "Jersey not found"})
		return
	}

	c.JSON(200, jersey)
}

// @Summary Create jersey
// @Description Create a new jersey (admin)
// @Tags Jerseys
// @Accept json
// @Produce json
// @Param jersey body models.CreateJerseyRequest true "Jersey"
// @Success 201 {object} models.Jersey
// @Failure 400 {object} models.ErrorResponse
// @Router /jerseys [post]
func (ctrl *JerseyController) CreateJersey(c *gin.Context) {
	var req models.CreateJerseyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid jersey data"})
		return
	}

	jersey, err := ctrl.catalog.CreateJersey(c.Request.Context(), req)
	if err != nil {
		log.Println("Failed to create jersey:", err)
		c.JSON(500, gin.H{"error": "Failed to create jersey"})
		return
	}

	invalidateJerseyCache()
	c.JSON(201, jersey)
}

// @Summary Update jersey
// @Description Partially update a jersey (admin)
// @Tags Jerseys
// @Accept json
// @Produce json
// @Param id path int true "Jersey ID"
// @Param jersey body models.UpdateJerseyRequest true "Fields to update"
// @Success 200 {object} models.Jersey
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /jerseys/{id} [put]
func (ctrl *JerseyController) UpdateJersey(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": "Jersey not found"})
		return
	}

	var req models.UpdateJerseyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid jersey data"})
		return
	}

	jersey, err := ctrl.catalog.UpdateJersey(c.Request.Context(), id, req)
	if err != nil {
		log.Println("Failed to update jersey:", err)
		c.JSON(500, gin.H{"error": "Failed to update jersey"})
		return
	}
	if jersey == nil {
		c.JSON(404, gin.H{"error": "Jersey not found"})
		return
	}

	invalidateJerseyCache()
	c.JSON(200, jersey)
}

// @Summary Delete jersey
// @Description Delete a jersey permanently (admin)
// @Tags Jerseys
// @Produce json
// @Param id path int true "Jersey ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /jerseys/{id} [delete]
func (ctrl *JerseyController) DeleteJersey(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": "Jersey not found"})
		return
	}

	deleted, err := ctrl.catalog.DeleteJersey(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete jersey"})
		return
	}
	if !deleted {
		c.JSON(404, gin.H{"error": "Jersey not found"})
		return
	}

	invalidateJerseyCache()
	c.Status(204)
}
