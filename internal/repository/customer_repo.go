package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stockroom/internal/models"
)

type CustomerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// AddCustomer inserts a new customer and returns its system-assigned ID.
// The caller is responsible for hashing the password first.
func (r *CustomerRepository) AddCustomer(ctx context.Context, username, passwordHash string) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		"INSERT INTO customers (username, password_hash) VALUES (?, ?)",
		username, passwordHash)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListCustomers returns all customers ordered by ID. The password hash
// column is deliberately not selected.
func (r *CustomerRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT customer_id, username, created_at FROM customers ORDER BY customer_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var cust models.Customer
		if err := rows.Scan(&cust.ID, &cust.Username, &cust.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, cust)
	}
	return customers, rows.Err()
}

// GetCustomerByUsername fetches a customer including the password hash.
// Used by the login flow only; everything user-facing goes through
// ListCustomers.
func (r *CustomerRepository) GetCustomerByUsername(ctx context.Context, username string) (*models.Customer, error) {
	var cust models.Customer
	err := r.DB.QueryRowContext(ctx,
		"SELECT customer_id, username, password_hash, created_at FROM customers WHERE username = ? ORDER BY customer_id LIMIT 1",
		username).Scan(&cust.ID, &cust.Username, &cust.PasswordHash, &cust.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("username %q: %w", username, ErrCustomerNotFound)
		}
		return nil, err
	}
	return &cust, nil
}

// RemoveCustomer deletes a customer together with all of their orders and
// order items, inside one transaction. Deletion runs in dependency order:
// order_items, then orders, then the customer row.
func (r *CustomerRepository) RemoveCustomer(ctx context.Context, customerID int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // Safety net

	var id int64
	err = tx.QueryRowContext(ctx,
		"SELECT customer_id FROM customers WHERE customer_id = ?", customerID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("customer ID %d: %w", customerID, ErrCustomerNotFound)
		}
		return err
	}

	rows, err := tx.QueryContext(ctx,
		"SELECT order_id FROM orders WHERE customer_id = ?", customerID)
	if err != nil {
		return err
	}

	var orderIDs []int64
	for rows.Next() {
		var orderID int64
		if err := rows.Scan(&orderID); err != nil {
			rows.Close()
			return err
		}
		orderIDs = append(orderIDs, orderID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	for _, orderID := range orderIDs {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM order_items WHERE order_id = ?", orderID); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM orders WHERE customer_id = ?", customerID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM customers WHERE customer_id = ?", customerID); err != nil {
		return err
	}

	return tx.Commit()
}
