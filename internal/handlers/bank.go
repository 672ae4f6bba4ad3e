package handlers

import (
	"github.com/gin-gonic/gin"

	"goxu-service/internal/services"
)

func (h *Handler) ListBanks(c *gin.Context) {
	result, err := h.Banks.ListBanks()
	respond(c, result, err)
}

func (h *Handler) ListCompanyAccounts(c *gin.Context) {
	result, err := h.Banks.ListCompanyAccounts()
	respond(c, result, err)
}

func (h *Handler) ActiveCompanyAccount(c *gin.Context) {
	result, err := h.Banks.ActiveCompanyAccount()
	respond(c, result, err)
}

type companyAccountRequest struct {
	ID          int    `json:"id"`
	BankID      int    `json:"bankId" binding:"required"`
	AccountName string `json:"accountName" binding:"required"`
	AccountNo   string `json:"accountNo" binding:"required"`
	Content     string `json:"content"`
	IsActive    bool   `json:"isActive"`
}

func (h *Handler) SaveCompanyAccount(c *gin.Context) {
	var req companyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Thông tin tài khoản không hợp lệ")
		return
	}

	result, err := h.Banks.SaveCompanyAccount(services.SaveCompanyAccountDTO{
		ID:          req.ID,
		BankID:      req.BankID,
		AccountName: req.AccountName,
		AccountNo:   req.AccountNo,
		Content:     req.Content,
		IsActive:    req.IsActive,
	})
	respond(c, result, err)
}
