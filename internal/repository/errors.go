package repository

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two "identifier does not exist" cases and the
// rejected empty order. Callers match with errors.Is.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrEmptyOrder       = errors.New("order contains no products")
)

// InsufficientStockError is returned by PlaceOrder when a requested quantity
// exceeds the available stock. Callers match with errors.As to recover the
// offending product and both quantities.
type InsufficientStockError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product ID %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}
