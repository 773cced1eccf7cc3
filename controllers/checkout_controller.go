package controllers

import (
	"net/http"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutController handles HTTP requests for order checkout.
type CheckoutController struct {
	service services.CheckoutService
	logger  *zap.Logger
}

func NewCheckoutController(service services.CheckoutService, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{service: service, logger: logger}
}

// Checkout places an order.
// POST /api/checkout
//
// No required-field check happens here: the payload is forwarded as-is and
// the store's document validation decides acceptance. A validation rejection,
// a write failure and a confirmation-email failure all surface as the same
// generic 500.
func (cc *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if _, err := cc.service.PlaceOrder(c.Request.Context(), &req); err != nil {
		cc.logger.Error("checkout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully"})
}

// ListOrders returns stored orders, newest first.
// GET /api/orders
func (cc *CheckoutController) ListOrders(c *gin.Context) {
	page, perPage := paginationParams(c)

	orders, total, err := cc.service.List(c.Request.Context(), page, perPage)
	if err != nil {
		cc.logger.Error("order listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":   orders,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}
