package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"stockroom/internal/models"
	"stockroom/internal/repository"

	"github.com/gin-gonic/gin"
)

type PlaceOrderInput struct {
	// Repetition encodes quantity: [5, 5, 3] orders two units of product 5
	// and one of product 3.
	ProductIDs []int64 `json:"productIds" binding:"required"`
}

// PlaceOrder is the handler for POST /v1/orders.
// The order is placed for the authenticated customer; the repository call
// is all-or-nothing, so a failed order leaves stock untouched.
func (h *Handlers) PlaceOrder(c *gin.Context) {
	customerID_raw, _ := c.Get("customerID")
	customerID := customerID_raw.(int64)

	var input PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderID, err := h.Orders.PlaceOrder(c, customerID, input.ProductIDs)
	if err != nil {
		var stockErr *repository.InsufficientStockError
		switch {
		case errors.Is(err, repository.ErrEmptyOrder):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order contains no products"})
		case errors.Is(err, repository.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.As(err, &stockErr):
			c.JSON(http.StatusConflict, gin.H{
				"error":     stockErr.Error(),
				"productId": stockErr.ProductID,
				"requested": stockErr.Requested,
				"available": stockErr.Available,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Order placed for customer %d.", customerID),
		"orderId": orderID,
	})
}

// GetOrderHistory is the handler for GET /v1/orders/history.
// Orders are listed oldest first with their line items grouped beneath them.
func (h *Handlers) GetOrderHistory(c *gin.Context) {
	customerID_raw, _ := c.Get("customerID")
	customerID := customerID_raw.(int64)

	history, err := h.Orders.OrderHistory(c, customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order history"})
		return
	}

	if len(history) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "No orders found for this customer.",
			"orders":  []models.OrderHistoryEntry{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": history})
}
