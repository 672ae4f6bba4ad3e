package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"goxu-service/internal/database"
	"goxu-service/internal/handlers"
	"goxu-service/internal/realtime"
	"goxu-service/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found in current directory, trying parent")
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Initialize Database
	database.Connect()
	database.Migrate()
	db := database.DB

	if err := database.SeedBanks(db); err != nil {
		log.Fatalf("Failed to seed bank directory: %v", err)
	}

	// Redis/Asynq Client
	redisAddr := os.Getenv("REDIS_URL")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	defer asynqClient.Close()

	// Realtime hub, pushes cache invalidation frames to connected dashboards
	hub := realtime.NewHub()

	// Init Services
	helperService := services.NewHelperService(db)
	authService := services.NewAuthService(db)
	userService := services.NewUserService(db)
	notificationService := services.NewNotificationService(db, asynqClient, hub)
	walletService := services.NewWalletService(db, helperService, hub)
	depositService := services.NewDepositService(db, helperService, asynqClient, hub)
	withdrawalService := services.NewWithdrawalService(db, helperService, hub)
	transferService := services.NewTransferService(db, helperService, hub)
	vietqrService := services.NewVietQRService(db)
	bankService := services.NewBankService(db)
	tripService := services.NewTripService(db, helperService, hub, notificationService)
	contractService := services.NewContractService(db, notificationService)
	supportService := services.NewSupportService(db, notificationService)
	chatService := services.NewChatService(db, hub)

	// Nightly archive of settled transactions
	archiveService := services.NewTransactionArchiveService(db)
	archiveService.StartScheduler()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	h := &handlers.Handler{
		Auth:      authService,
		Users:     userService,
		Wallet:    walletService,
		Deposit:   depositService,
		Withdraw:  withdrawalService,
		Transfers: transferService,
		VietQR:    vietqrService,
		Banks:     bankService,
		Trips:     tripService,
		Contract:  contractService,
		Support:   supportService,
		Notify:    notificationService,
		Chat:      chatService,
		Hub:       hub,
		UploadDir: uploadDir,
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Goxu service listening on :%s", port)
	if err := h.Router().Run(":" + port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
