package main

import (
	"log"
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"goxu-service/internal/consumers"
	"goxu-service/internal/database"
	"goxu-service/internal/worker"
)

func main() {
	// Load env
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found in ../../.env, trying .env")
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, using system env")
		}
	}

	// Connect DB
	database.Connect()
	processor := consumers.NewProcessor(database.DB)

	redisAddr := os.Getenv("REDIS_URL")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	log.Println("Starting Goxu worker...")
	worker.StartWorker(asynq.RedisClientOpt{Addr: redisAddr}, processor)
}
