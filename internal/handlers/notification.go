package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"goxu-service/internal/middleware"
	"goxu-service/internal/services"
)

func (h *Handler) ListNotifications(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.Notify.ListNotifications(services.ListNotificationsDTO{
		UserID: middleware.UserID(c),
		Page:   page,
		Limit:  limit,
		Unread: c.Query("unread") == "true",
	})
	respond(c, result, err)
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Không tìm thấy thông báo")
		return
	}

	result, serr := h.Notify.MarkRead(middleware.UserID(c), id)
	respond(c, result, serr)
}
