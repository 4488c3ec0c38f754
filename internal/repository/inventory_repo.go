package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stockroom/internal/models"

	"github.com/gosimple/slug"
)

type InventoryRepository struct {
	DB *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

// AddProduct inserts a new inventory row and returns its system-assigned ID.
// The SKU is derived from color and size, e.g. "Red" + "M" -> "red-m".
func (r *InventoryRepository) AddProduct(ctx context.Context, color, size string, quantity int, description *string) (int64, error) {
	sku := slug.Make(color + " " + size)

	result, err := r.DB.ExecContext(ctx,
		"INSERT INTO inventory (sku, color, size, quantity, description) VALUES (?, ?, ?, ?, ?)",
		sku, color, size, quantity, description)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListProducts returns all products in insertion order.
func (r *InventoryRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT product_id, sku, color, size, quantity, description, created_at FROM inventory ORDER BY product_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Color, &p.Size, &p.Quantity, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// RestockProduct increments a product's quantity by amount and returns the
// new quantity. The reported value is the pre-update quantity plus the
// increment; the row is not re-read after the update.
func (r *InventoryRepository) RestockProduct(ctx context.Context, productID int64, amount int) (int, error) {
	var oldQuantity int
	err := r.DB.QueryRowContext(ctx,
		"SELECT quantity FROM inventory WHERE product_id = ?", productID).Scan(&oldQuantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("product ID %d: %w", productID, ErrProductNotFound)
		}
		return 0, err
	}

	if _, err := r.DB.ExecContext(ctx,
		"UPDATE inventory SET quantity = quantity + ? WHERE product_id = ?",
		amount, productID); err != nil {
		return 0, err
	}

	return oldQuantity + amount, nil
}
