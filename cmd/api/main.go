package main

import (
	"log"
	"os"

	"stockroom/internal/database"
	"stockroom/internal/handlers"
	"stockroom/internal/routes"

	"github.com/joho/godotenv"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// --- Schema (idempotent) ---
	if err := database.CreateSchema(db); err != nil {
		log.Fatalf("Failed to create database schema: %v", err)
	}

	// --- Application Setup ---
	// All handlers share one connection pool through the repositories.
	app := handlers.New(db)

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting Stockroom API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
