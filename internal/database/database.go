package database

import (
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// OpenDB initializes and returns the application's connection pool.
// The DSN is read from the DB_DSN environment variable, with a local
// development fallback.
func OpenDB() (*sql.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "root:secret@tcp(127.0.0.1:3306)/stockroom?parseTime=true"
	}
	return OpenDBWithDSN(dsn)
}

// OpenDBWithDSN creates and configures a DB connection pool using any
// provided DSN string.
func OpenDBWithDSN(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	log.Println("Database connection pool established successfully")
	return db, nil
}

// schemaStatements run in dependency order on every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS inventory (
		product_id BIGINT AUTO_INCREMENT PRIMARY KEY,
		sku VARCHAR(64) NOT NULL,
		color VARCHAR(64) NOT NULL,
		size VARCHAR(32) NOT NULL,
		quantity INT NOT NULL,
		description TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS orders (
		order_id BIGINT AUTO_INCREMENT PRIMARY KEY,
		reference CHAR(36) NOT NULL,
		customer_id BIGINT NOT NULL,
		order_date DATE NOT NULL,
		FOREIGN KEY (customer_id) REFERENCES customers (customer_id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS order_items (
		order_id BIGINT NOT NULL,
		product_id BIGINT NOT NULL,
		quantity INT NOT NULL,
		PRIMARY KEY (order_id, product_id),
		FOREIGN KEY (order_id) REFERENCES orders (order_id),
		FOREIGN KEY (product_id) REFERENCES inventory (product_id)
	) ENGINE=InnoDB`,
}

// CreateSchema creates the four application tables if they do not exist yet.
// Safe to call on every boot.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	log.Println("Database schema is up to date")
	return nil
}
