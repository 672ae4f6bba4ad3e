package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"goxu-service/internal/middleware"
	"goxu-service/internal/models"
	"goxu-service/internal/services"
	"goxu-service/pkg/common"
)

type createContractRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *Handler) CreateContract(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Thông tin hợp đồng không hợp lệ")
		return
	}

	result, err := h.Contract.CreateContract(services.CreateContractDTO{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	})
	respond(c, result, err)
}

func (h *Handler) ListContracts(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	userID := middleware.UserID(c)
	if middleware.Role(c) == models.RoleAdmin {
		userID = c.Query("userId")
	}

	result, err := h.Contract.ListContracts(userID, page, limit)
	respond(c, result, err)
}

func (h *Handler) SignContract(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Không tìm thấy hợp đồng")
		return
	}

	result, serr := h.Contract.Sign(middleware.UserID(c), id)
	respond(c, result, serr)
}

// ContractPDF streams the rendered contract as a file download.
func (h *Handler) ContractPDF(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Không tìm thấy hợp đồng")
		return
	}

	isAdmin := middleware.Role(c) == models.RoleAdmin
	pdf, filename, err := h.Contract.RenderPDF(middleware.UserID(c), id, isAdmin)
	if err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Không tìm thấy hợp đồng", nil, http.StatusNotFound))
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
