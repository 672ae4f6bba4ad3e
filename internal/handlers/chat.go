package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"goxu-service/internal/middleware"
	"goxu-service/internal/services"
)

type sendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Vui lòng nhập nội dung tin nhắn")
		return
	}

	result, err := h.Chat.SendMessage(services.SendMessageDTO{
		SenderID:    middleware.UserID(c),
		RecipientID: req.RecipientID,
		Content:     req.Content,
	})
	respond(c, result, err)
}

func (h *Handler) ListMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.Chat.ListMessages(services.ListMessagesDTO{
		UserID: middleware.UserID(c),
		PeerID: c.Query("peerId"),
		Page:   page,
		Limit:  limit,
	})
	respond(c, result, err)
}

func (h *Handler) MarkSeen(c *gin.Context) {
	result, err := h.Chat.MarkSeen(middleware.UserID(c), c.Param("peerId"))
	respond(c, result, err)
}
