package models

import "time"

// Product is the model for the 'inventory' table.
// Description is a pointer so a missing description serializes cleanly.
type Product struct {
	ID          int64   `json:"id" db:"product_id"`
	SKU         string  `json:"sku" db:"sku"`
	Color       string  `json:"color" db:"color"`
	Size        string  `json:"size" db:"size"`
	Quantity    int     `json:"quantity" db:"quantity"`
	Description *string `json:"description,omitempty" db:"description"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
