package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Beausejour-Hotels/service-reservation/internal/application"
	"github.com/Beausejour-Hotels/service-reservation/internal/response"
)

// ReservationHandler handles HTTP requests for reservation operations.
type ReservationHandler struct {
	service *application.ReservationService
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(service *application.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// RegisterRoutes registers all reservation routes on the given router group.
func (h *ReservationHandler) RegisterRoutes(r *gin.RouterGroup) {
	reservations := r.Group("/api/v1/reservations")
	{
		reservations.POST("", h.CreateReservation)
		reservations.GET("/upcoming", h.ListCurrentAndUpcoming)
		reservations.GET("/dates", h.ListByDateRange)
		reservations.GET("/status/:status", h.ListByStatus)
		reservations.GET("/:id", h.GetReservation)
		reservations.PUT("/:id", h.AmendReservation)
		reservations.PATCH("/:id/status", h.ChangeStatus)
		reservations.POST("/:id/cancel", h.CancelReservation)
	}

	r.GET("/api/v1/clients/:id/reservations", h.ListForClient)
	r.GET("/api/v1/rooms/:id/reservations", h.ListForRoom)
	r.GET("/api/v1/rooms/:id/availability", h.CheckAvailability)
}

// CreateReservation handles POST /api/v1/reservations.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req application.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateReservation(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetReservation handles GET /api/v1/reservations/:id.
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid reservation ID")
		return
	}

	result, err := h.service.GetReservation(c.Request.Context(), reservationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AmendReservation handles PUT /api/v1/reservations/:id.
func (h *ReservationHandler) AmendReservation(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid reservation ID")
		return
	}

	var req application.AmendReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AmendReservation(c.Request.Context(), reservationID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ChangeStatus handles PATCH /api/v1/reservations/:id/status.
func (h *ReservationHandler) ChangeStatus(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid reservation ID")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ChangeStatus(c.Request.Context(), reservationID, body.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CancelReservation handles POST /api/v1/reservations/:id/cancel.
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid reservation ID")
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&body)

	result, err := h.service.CancelReservation(c.Request.Context(), reservationID, body.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListForClient handles GET /api/v1/clients/:id/reservations.
func (h *ReservationHandler) ListForClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid client ID")
		return
	}

	result, err := h.service.ListForClient(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListForRoom handles GET /api/v1/rooms/:id/reservations.
func (h *ReservationHandler) ListForRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	result, err := h.service.ListForRoom(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListByStatus handles GET /api/v1/reservations/status/:status.
func (h *ReservationHandler) ListByStatus(c *gin.Context) {
	result, err := h.service.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListByDateRange handles GET /api/v1/reservations/dates.
func (h *ReservationHandler) ListByDateRange(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		response.BadRequest(c, "start_date and end_date query parameters are required")
		return
	}

	result, err := h.service.ListByDateRange(c.Request.Context(), startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListCurrentAndUpcoming handles GET /api/v1/reservations/upcoming.
func (h *ReservationHandler) ListCurrentAndUpcoming(c *gin.Context) {
	result, err := h.service.ListCurrentAndUpcoming(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CheckAvailability handles GET /api/v1/rooms/:id/availability.
func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		response.BadRequest(c, "start_date and end_date query parameters are required")
		return
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), roomID, startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"room_id":    roomID,
		"start_date": startDate,
		"end_date":   endDate,
		"available":  available,
	})
}

// parsePagination extracts page and limit query parameters with defaults.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}
