package handlers

import (
	"database/sql"

	"stockroom/internal/repository"
)

// Handlers holds all dependencies for the HTTP handlers.
type Handlers struct {
	DB        *sql.DB
	Customers *repository.CustomerRepository
	Inventory *repository.InventoryRepository
	Orders    *repository.OrderRepository
}

// New wires the repositories around a shared connection pool.
func New(db *sql.DB) *Handlers {
	return &Handlers{
		DB:        db,
		Customers: repository.NewCustomerRepository(db),
		Inventory: repository.NewInventoryRepository(db),
		Orders:    repository.NewOrderRepository(db),
	}
}
