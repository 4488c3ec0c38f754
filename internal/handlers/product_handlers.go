package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"stockroom/internal/models"
	"stockroom/internal/repository"

	"github.com/gin-gonic/gin"
)

type CreateProductInput struct {
	Color       string  `json:"color" binding:"required"`
	Size        string  `json:"size" binding:"required"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Description *string `json:"description,omitempty"`
}

// CreateProduct is the handler for POST /v1/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productID, err := h.Inventory.AddProduct(c, input.Color, input.Size, input.Quantity, input.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Product added to inventory.",
		"productId": productID,
	})
}

// GetAllProducts is the handler for GET /v1/products.
// An empty inventory gets a distinct message rather than a bare empty list.
func (h *Handlers) GetAllProducts(c *gin.Context) {
	products, err := h.Inventory.ListProducts(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	if len(products) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message":  "Inventory is empty.",
			"products": []models.Product{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

type RestockInput struct {
	Amount int `json:"amount" binding:"gte=0"`
}

// RestockProduct is the handler for POST /v1/products/:id/restock.
func (h *Handlers) RestockProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var input RestockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newQuantity, err := h.Inventory.RestockProduct(c, productID, input.Amount)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product ID %d not found.", productID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restock product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Restocked Product ID %d by %d.", productID, input.Amount),
		"newQuantity": newQuantity,
	})
}
