package main

import (
	"log"

	"github.com/joho/godotenv"

	"goxu-service/internal/database"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found in current directory, trying parent")
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	}

	// Initialize Database
	database.Connect()

	log.Println("Running database migrations...")
	database.Migrate()

	if err := database.SeedBanks(database.DB); err != nil {
		log.Fatalf("Failed to seed bank directory: %v", err)
	}

	log.Println("Migrations completed successfully!")
}
