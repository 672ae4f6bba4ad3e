package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goxu-service/internal/realtime"
	"goxu-service/internal/services"
	"goxu-service/pkg/common"
)

// Handler bundles every service the HTTP layer fronts. Constructed once in
// main and shared across requests.
type Handler struct {
	Auth      *services.AuthService
	Users     *services.UserService
	Wallet    *services.WalletService
	Deposit   *services.DepositService
	Withdraw  *services.WithdrawalService
	Transfers *services.TransferService
	VietQR    *services.VietQRService
	Banks     *services.BankService
	Trips     *services.TripService
	Contract  *services.ContractService
	Support   *services.SupportService
	Notify    *services.NotificationService
	Chat      *services.ChatService
	Hub       *realtime.Hub

	// UploadDir receives deposit receipt images.
	UploadDir string
}

// respond translates a service result into an HTTP response. Services
// return their own envelope; an unexpected error becomes the generic
// fallback so internals never leak to the dashboard.
func respond(c *gin.Context, result interface{}, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("", nil, http.StatusInternalServerError))
		return
	}

	switch r := result.(type) {
	case common.ErrorResponse:
		c.JSON(r.Status, r)
	case common.SuccessResponse:
		c.JSON(r.Status, r)
	default:
		c.JSON(http.StatusOK, r)
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, common.NewErrorResponse(message, nil, http.StatusBadRequest))
}
