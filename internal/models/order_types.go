package models

import "time"

// Order is the model for the 'orders' table.
type Order struct {
	ID         int64     `json:"id" db:"order_id"`
	Reference  string    `json:"reference" db:"reference"`
	CustomerID int64     `json:"customerId" db:"customer_id"`
	OrderDate  time.Time `json:"orderDate" db:"order_date"` // day granularity
}

// OrderItem is the model for the 'order_items' table.
// (order_id, product_id) is the composite primary key, so a product appears
// at most once per order; repeated requests are coalesced into Quantity.
type OrderItem struct {
	OrderID   int64 `json:"orderId" db:"order_id"`
	ProductID int64 `json:"productId" db:"product_id"`
	Quantity  int   `json:"quantity" db:"quantity"`
}

// OrderHistoryLine is one product line of a past order, joined against
// inventory for display.
type OrderHistoryLine struct {
	ProductID   int64   `json:"productId"`
	Quantity    int     `json:"quantity"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Description *string `json:"description,omitempty"`
}

// OrderHistoryEntry is one past order with its lines grouped beneath it.
type OrderHistoryEntry struct {
	OrderID   int64              `json:"orderId"`
	Reference string             `json:"reference"`
	OrderDate time.Time          `json:"orderDate"`
	Items     []OrderHistoryLine `json:"items"`
}
