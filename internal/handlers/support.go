package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"goxu-service/internal/middleware"
	"goxu-service/internal/models"
	"goxu-service/internal/services"
)

type createTicketRequest struct {
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *Handler) CreateTicket(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Vui lòng nhập nội dung yêu cầu hỗ trợ")
		return
	}

	result, err := h.Support.CreateTicket(services.CreateTicketDTO{
		UserID:  middleware.UserID(c),
		Subject: req.Subject,
		Content: req.Content,
	})
	respond(c, result, err)
}

func (h *Handler) ListTickets(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.Support.ListTickets(services.ListTicketsDTO{
		UserID: middleware.UserID(c),
		Page:   page,
		Limit:  limit,
		All:    middleware.Role(c) == models.RoleAdmin,
	})
	respond(c, result, err)
}

type replyTicketRequest struct {
	Reply string `json:"reply" binding:"required"`
}

func (h *Handler) ReplyTicket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Không tìm thấy yêu cầu hỗ trợ")
		return
	}

	var req replyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Vui lòng nhập nội dung phản hồi")
		return
	}

	result, serr := h.Support.Reply(services.ReplyTicketDTO{
		TicketID: id,
		Reply:    req.Reply,
	})
	respond(c, result, serr)
}
