package handlers

import (
	"github.com/gin-gonic/gin"

	"goxu-service/internal/middleware"
	"goxu-service/internal/services"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,min=4,max=150"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Thông tin đăng ký không hợp lệ")
		return
	}

	result, err := h.Auth.Register(services.RegisterDTO{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	respond(c, result, err)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Vui lòng nhập tên đăng nhập và mật khẩu")
		return
	}

	result, err := h.Auth.Login(services.LoginDTO{
		Username: req.Username,
		Password: req.Password,
	})
	respond(c, result, err)
}

type bankInfoRequest struct {
	BankName      string `json:"bankName" binding:"required"`
	BankAccountNo string `json:"bankAccountNo" binding:"required"`
	BankAccount   string `json:"bankAccountName"`
}

func (h *Handler) UpdateBankInfo(c *gin.Context) {
	var req bankInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Vui lòng cập nhật thông tin ngân hàng")
		return
	}

	result, err := h.Auth.UpdateBankInfo(services.UpdateBankInfoDTO{
		UserID:        middleware.UserID(c),
		BankName:      req.BankName,
		BankAccountNo: req.BankAccountNo,
		BankAccount:   req.BankAccount,
	})
	respond(c, result, err)
}
