package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stockroom/internal/models"

	"github.com/google/uuid"
)

type OrderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// aggregateQuantities collapses a product ID sequence into per-product
// counts, e.g. [5, 5, 3] -> two units of 5 and one of 3. The returned slice
// preserves first-seen order so validation and inserts run deterministically.
func aggregateQuantities(productIDs []int64) ([]int64, map[int64]int) {
	counts := make(map[int64]int, len(productIDs))
	var seen []int64
	for _, pid := range productIDs {
		if _, ok := counts[pid]; !ok {
			seen = append(seen, pid)
		}
		counts[pid]++
	}
	return seen, counts
}

// PlaceOrder creates one order for the customer from a sequence of product
// IDs where repetition encodes quantity. The whole call is all-or-nothing:
// every line is validated (with the inventory rows locked) before the order
// row, its items, and the stock decrements are written, and any failure
// rolls the transaction back.
func (r *OrderRepository) PlaceOrder(ctx context.Context, customerID int64, productIDs []int64) (int64, error) {
	if len(productIDs) == 0 {
		return 0, ErrEmptyOrder
	}
	pids, counts := aggregateQuantities(productIDs)

	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() // Safety net

	// Check the customer up front so an unknown ID surfaces as a typed
	// NotFound instead of a foreign key violation from the driver.
	var cid int64
	err = tx.QueryRowContext(ctx,
		"SELECT customer_id FROM customers WHERE customer_id = ?", customerID).Scan(&cid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("customer ID %d: %w", customerID, ErrCustomerNotFound)
		}
		return 0, err
	}

	// Validate every line before any mutation, locking the rows we are
	// about to decrement.
	for _, pid := range pids {
		requested := counts[pid]

		var available int
		err := tx.QueryRowContext(ctx,
			"SELECT quantity FROM inventory WHERE product_id = ? FOR UPDATE", pid).Scan(&available)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return 0, fmt.Errorf("product ID %d: %w", pid, ErrProductNotFound)
			}
			return 0, err
		}
		if available < requested {
			return 0, &InsufficientStockError{ProductID: pid, Requested: requested, Available: available}
		}
	}

	// All lines passed: write the order header, its items, and the stock
	// decrements.
	reference := uuid.NewString()
	orderDate := time.Now().Format("2006-01-02")

	result, err := tx.ExecContext(ctx,
		"INSERT INTO orders (reference, customer_id, order_date) VALUES (?, ?, ?)",
		reference, customerID, orderDate)
	if err != nil {
		return 0, err
	}
	orderID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, pid := range pids {
		qty := counts[pid]
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, product_id, quantity) VALUES (?, ?, ?)",
			orderID, pid, qty); err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE inventory SET quantity = quantity - ? WHERE product_id = ?",
			qty, pid); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return orderID, nil
}

// OrderHistory returns every order the customer has placed, oldest first,
// with line items joined against inventory and grouped under their order.
// A customer with no orders gets an empty slice, not an error.
func (r *OrderRepository) OrderHistory(ctx context.Context, customerID int64) ([]models.OrderHistoryEntry, error) {
	query := `
		SELECT o.order_id, o.reference, o.order_date, oi.product_id, oi.quantity, i.color, i.size, i.description
		FROM orders o
		JOIN order_items oi ON o.order_id = oi.order_id
		JOIN inventory i ON oi.product_id = i.product_id
		WHERE o.customer_id = ?
		ORDER BY o.order_id`

	rows, err := r.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.OrderHistoryEntry
	for rows.Next() {
		var (
			orderID   int64
			reference string
			orderDate time.Time
			line      models.OrderHistoryLine
		)
		if err := rows.Scan(&orderID, &reference, &orderDate,
			&line.ProductID, &line.Quantity, &line.Color, &line.Size, &line.Description); err != nil {
			return nil, err
		}

		// Rows arrive sorted by order_id, so a new ID starts a new entry.
		if len(history) == 0 || history[len(history)-1].OrderID != orderID {
			history = append(history, models.OrderHistoryEntry{
				OrderID:   orderID,
				Reference: reference,
				OrderDate: orderDate,
			})
		}
		last := &history[len(history)-1]
		last.Items = append(last.Items, line)
	}
	return history, rows.Err()
}
