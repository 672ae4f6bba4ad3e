package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"goxu-service/internal/middleware"
	"goxu-service/internal/models"
	"goxu-service/internal/services"
	"goxu-service/pkg/common"
)

func (h *Handler) ListWallets(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.Wallet.ListWallets(services.ListWalletsDTO{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	})
	respond(c, result, err)
}

func (h *Handler) ListTransactions(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.Wallet.ListTransactions(services.ListTransactionsDTO{
		ViewerID: middleware.UserID(c),
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		FromDate: c.Query("fromDate"),
		ToDate:   c.Query("toDate"),
		All:      middleware.Role(c) == models.RoleAdmin && c.Query("all") == "true",
	})
	respond(c, result, err)
}

func (h *Handler) GetBalance(c *gin.Context) {
	result, err := h.Wallet.GetBalance(middleware.UserID(c))
	respond(c, result, err)
}

// RequestDeposit accepts a multipart form: the goxu amount plus an optional
// transfer receipt image saved under UploadDir before the ledger row exists.
func (h *Handler) RequestDeposit(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		badRequest(c, services.MsgInvalidAmount)
		return
	}

	billPath := ""
	if file, ferr := c.FormFile("bill"); ferr == nil {
		name := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
		billPath = filepath.Join(h.UploadDir, name)
		if err := c.SaveUploadedFile(file, billPath); err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse("", nil, http.StatusInternalServerError))
			return
		}
	}

	result, err := h.Deposit.RequestDeposit(services.DepositDTO{
		UserID: middleware.UserID(c),
		Amount: amount,
		Bill:   billPath,
	})
	respond(c, result, err)
}

type adminDepositRequest struct {
	UserID string  `json:"userId" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

func (h *Handler) AdminDeposit(c *gin.Context) {
	var req adminDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgInvalidAmount)
		return
	}

	result, err := h.Deposit.AdminDeposit(services.AdminDepositDTO{
		EmployeeID: middleware.UserID(c),
		UserID:     req.UserID,
		Amount:     req.Amount,
	})
	respond(c, result, err)
}

type withdrawRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

func (h *Handler) RequestWithdrawal(c *gin.Context) {
	var req withdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgInvalidAmount)
		return
	}

	result, err := h.Withdraw.RequestWithdrawal(services.WithdrawDTO{
		UserID: middleware.UserID(c),
		Amount: req.Amount,
	})
	respond(c, result, err)
}

type transferRequest struct {
	ReceiverID string  `json:"receiverId"`
	Amount     float64 `json:"amount" binding:"required"`
}

func (h *Handler) Transfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgInvalidAmount)
		return
	}

	result, err := h.Transfers.Transfer(services.TransferDTO{
		SenderID:   middleware.UserID(c),
		ReceiverID: req.ReceiverID,
		Amount:     req.Amount,
	})
	respond(c, result, err)
}

type resolveRequest struct {
	TransactionID int    `json:"transactionId" binding:"required"`
	Accept        bool   `json:"accept"`
	Reason        string `json:"reason"`
}

func (h *Handler) ResolveTransaction(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgTrxNotFound)
		return
	}

	result, err := h.Wallet.ResolveTransaction(services.ResolveTransactionDTO{
		EmployeeID:    middleware.UserID(c),
		TransactionID: req.TransactionID,
		Accept:        req.Accept,
		Reason:        req.Reason,
	})
	respond(c, result, err)
}

// DepositQR returns a VietQR image for the requested goxu amount, or an
// empty string when the amount or company beneficiary is not usable.
func (h *Handler) DepositQR(c *gin.Context) {
	amount, _ := strconv.ParseFloat(c.Query("amount"), 64)

	var user models.User
	if err := h.VietQR.DB.First(&user, "id = ?", middleware.UserID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(services.MsgWalletNotFound, nil, http.StatusNotFound))
		return
	}

	qr, err := h.VietQR.GenerateDepositQR(user.Username, amount)
	if err != nil {
		c.JSON(http.StatusBadGateway, common.NewErrorResponse(services.MsgQRGenerationFailed, nil, http.StatusBadGateway))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"qrDataURL": qr}, ""))
}
