package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"goxu-service/internal/middleware"
	"goxu-service/internal/services"
)

// ListUsers backs recipient and service point pickers. The caller is
// excluded so a transfer can never target its own wallet from the list.
func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.Users.ListUsers(services.ListUsersDTO{
		Role:      c.Query("role"),
		Search:    c.Query("search"),
		ExcludeID: middleware.UserID(c),
		Page:      page,
		Limit:     limit,
	})
	respond(c, result, err)
}

func (h *Handler) GetUser(c *gin.Context) {
	result, err := h.Users.GetUser(c.Param("id"))
	respond(c, result, err)
}
