package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"goxu-service/internal/auth"
	"goxu-service/internal/middleware"
	"goxu-service/internal/models"
	"goxu-service/internal/realtime"
	"goxu-service/pkg/common"
)

// Router wires every endpoint. Browsers cannot attach headers to a
// websocket handshake, so /ws authenticates through a token query param.
func (h *Handler) Router() *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	limiter := middleware.NewRateLimiter(rate.Limit(20), 40)
	r.Use(limiter.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	r.GET("/ws", h.ServeWS)

	api := r.Group("/", middleware.Auth(h.Auth.Secret))
	{
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.PUT("/users/bank-info", h.UpdateBankInfo)

		api.GET("/wallets/transactions", h.ListTransactions)
		api.GET("/wallets/balance", h.GetBalance)
		api.POST("/wallets/deposit", h.RequestDeposit)
		api.GET("/wallets/deposit/qr", h.DepositQR)
		api.POST("/wallets/withdraw", h.RequestWithdrawal)
		api.POST("/wallets/transfer", h.Transfer)

		api.GET("/banks", h.ListBanks)
		api.GET("/company-bank-accounts/active", h.ActiveCompanyAccount)

		api.POST("/trips", h.CreateTrip)
		api.GET("/trips", h.ListTrips)
		api.PUT("/trips/:id/confirm", h.ConfirmTrip)
		api.PUT("/trips/:id/reject", h.RejectTrip)
		api.PUT("/trips/:id/cancel", h.CancelTrip)
		api.PUT("/trips/:id/arrival", h.ConfirmArrival)

		api.GET("/contracts", h.ListContracts)
		api.PUT("/contracts/:id/sign", h.SignContract)
		api.GET("/contracts/:id/pdf", h.ContractPDF)

		api.POST("/support", h.CreateTicket)
		api.GET("/support", h.ListTickets)

		api.GET("/notifications", h.ListNotifications)
		api.PUT("/notifications/:id/read", h.MarkNotificationRead)

		api.POST("/chat/messages", h.SendMessage)
		api.GET("/chat/messages", h.ListMessages)
		api.PUT("/chat/seen/:peerId", h.MarkSeen)
	}

	admin := r.Group("/admin", middleware.Auth(h.Auth.Secret), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/wallets", h.ListWallets)
		admin.POST("/wallets/deposit", h.AdminDeposit)
		admin.PUT("/wallets/resolve", h.ResolveTransaction)
		admin.GET("/company-bank-accounts", h.ListCompanyAccounts)
		admin.POST("/company-bank-accounts", h.SaveCompanyAccount)
		admin.POST("/contracts", h.CreateContract)
		admin.PUT("/support/:id/reply", h.ReplyTicket)
	}

	return r
}

func (h *Handler) ServeWS(c *gin.Context) {
	claims, err := auth.ParseToken(h.Auth.Secret, c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Phiên đăng nhập đã hết hạn", nil, http.StatusUnauthorized))
		return
	}
	realtime.ServeWS(c.Writer, c.Request, h.Hub, claims.UserID)
}
