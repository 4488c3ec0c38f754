package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProduct_GeneratesSKUFromColorAndSize(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryRepository(db)

	description := "shirt"
	mock.ExpectExec("INSERT INTO inventory").
		WithArgs("red-m", "Red", "M", 10, "shirt").
		WillReturnResult(sqlmock.NewResult(1, 1))

	productID, err := repo.AddProduct(context.Background(), "Red", "M", 10, &description)

	require.NoError(t, err)
	assert.Equal(t, int64(1), productID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddProduct_NilDescription(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryRepository(db)

	mock.ExpectExec("INSERT INTO inventory").
		WithArgs("blue-xl", "Blue", "XL", 0, nil).
		WillReturnResult(sqlmock.NewResult(2, 1))

	productID, err := repo.AddProduct(context.Background(), "Blue", "XL", 0, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(2), productID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProducts_OrderedByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"product_id", "sku", "color", "size", "quantity", "description", "created_at"}).
		AddRow(int64(1), "red-m", "red", "M", 10, "shirt", now).
		AddRow(int64(2), "blue-l", "blue", "L", 5, nil, now)

	mock.ExpectQuery("SELECT product_id, sku, color, size, quantity, description, created_at FROM inventory").
		WillReturnRows(rows)

	products, err := repo.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	require.NotNil(t, products[0].Description)
	assert.Equal(t, "shirt", *products[0].Description)
	assert.Nil(t, products[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProducts_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryRepository(db)

	mock.ExpectQuery("SELECT product_id, sku, color, size, quantity, description, created_at FROM inventory").
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "sku", "color", "size", "quantity", "description", "created_at"}))

	products, err := repo.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestockProduct_ReportsOldQuantityPlusAmount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryRepository(db)

	// The reported value is computed from the pre-update read, not a
	// re-query after the update.
	mock.ExpectQuery("SELECT quantity FROM inventory").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(7))
	mock.ExpectExec("UPDATE inventory").
		WithArgs(5, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	newQuantity, err := repo.RestockProduct(context.Background(), 1, 5)

	require.NoError(t, err)
	assert.Equal(t, 12, newQuantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestockProduct_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryRepository(db)

	mock.ExpectQuery("SELECT quantity FROM inventory").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.RestockProduct(context.Background(), 99, 5)

	require.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorContains(t, err, "product ID 99")
	assert.NoError(t, mock.ExpectationsWereMet())
}
