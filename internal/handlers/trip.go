package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"goxu-service/internal/middleware"
	"goxu-service/internal/services"
)

type createTripRequest struct {
	ServicePointID string `json:"servicePointId" binding:"required"`
	GuestCount     int    `json:"guestCount" binding:"required,gt=0"`
}

func (h *Handler) CreateTrip(c *gin.Context) {
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgInvalidServicePt)
		return
	}

	result, err := h.Trips.CreateTrip(services.CreateTripDTO{
		PartnerID:      middleware.UserID(c),
		ServicePointID: req.ServicePointID,
		GuestCount:     req.GuestCount,
	})
	respond(c, result, err)
}

func (h *Handler) ListTrips(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.Trips.ListTrips(services.ListTripsDTO{
		UserID: middleware.UserID(c),
		Role:   middleware.Role(c),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	respond(c, result, err)
}

func tripID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, services.MsgTripNotFound)
		return 0, false
	}
	return id, true
}

func (h *Handler) ConfirmTrip(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}
	result, err := h.Trips.Confirm(middleware.UserID(c), id)
	respond(c, result, err)
}

func (h *Handler) RejectTrip(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}
	result, err := h.Trips.Reject(middleware.UserID(c), id)
	respond(c, result, err)
}

func (h *Handler) CancelTrip(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}
	result, err := h.Trips.Cancel(middleware.UserID(c), id)
	respond(c, result, err)
}

type arrivalRequest struct {
	ActualGuestCount int `json:"actualGuestCount" binding:"required,gt=0"`
}

func (h *Handler) ConfirmArrival(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}

	var req arrivalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgInvalidTripState)
		return
	}

	result, err := h.Trips.ConfirmArrival(services.ArrivalDTO{
		ServicePointID:   middleware.UserID(c),
		TripID:           id,
		ActualGuestCount: req.ActualGuestCount,
	})
	respond(c, result, err)
}
