package controllers

import (
	"log"

	"github.com/gin-gonic/gin"

	"jersey-hub/models"
	"jersey-hub/services"
)

// Orders are write-mostly: the storefront never reads them back, and nothing
// transitions their status. The Google Form handoff is the system of record
// for real purchases; this table exists for the admin panel.
type OrderController struct {
	catalog *services.CatalogService
}

func NewOrderController(catalog *services.CatalogService) *OrderController {
	return &OrderController{catalog: catalog}
}

// @Summary List orders
// @Description Get all recorded orders (admin)
// @Tags Orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} models.ErrorResponse
// @Router /orders [get]
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	orders, err := ctrl.catalog.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(200, orders)
}

// @Summary Create order
// @Description Record a new order
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid order data"})
		return
	}

	order, err := ctrl.catalog.CreateOrder(c.Request.Context(), req)
	if err != nil {
		log.Println("Failed to create order:", err)
		c.JSON(500, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(201, order)
}
