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

// GetAllCustomers is the handler for GET /v1/customers.
// Password hashes never appear here; the repository does not even select
// the column.
func (h *Handlers) GetAllCustomers(c *gin.Context) {
	customers, err := h.Customers.ListCustomers(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}

	if len(customers) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message":   "No customers found.",
			"customers": []models.Customer{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// DeleteCustomer is the handler for DELETE /v1/customers/:id.
// Removes the customer together with their orders and order items.
func (h *Handlers) DeleteCustomer(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	if err := h.Customers.RemoveCustomer(c, customerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No customer with ID %d", customerID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Customer ID %d and their orders have been deleted.", customerID),
	})
}
