package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Beausejour-Hotels/service-reservation/internal/application"
	"github.com/Beausejour-Hotels/service-reservation/internal/response"
)

// RoomHandler handles HTTP requests for the room inventory.
type RoomHandler struct {
	service *application.RoomService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(service *application.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// RegisterRoutes registers all room routes on the given router group.
func (h *RoomHandler) RegisterRoutes(r *gin.RouterGroup) {
	rooms := r.Group("/api/v1/rooms")
	{
		rooms.POST("", h.CreateRoom)
		rooms.GET("", h.ListRooms)
		rooms.GET("/:id", h.GetRoom)
		rooms.PUT("/:id", h.UpdateRoom)
		rooms.PATCH("/:id/rate", h.ChangeRate)
		rooms.PATCH("/:id/availability", h.SetAvailability)
		rooms.DELETE("/:id", h.DeleteRoom)
	}
}

// CreateRoom handles POST /api/v1/rooms.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req application.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListRooms handles GET /api/v1/rooms. Optional query parameters narrow the
// listing: number looks up a single room, type filters by category, and
// available=true keeps only administratively open rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	if number := c.Query("number"); number != "" {
		result, err := h.service.GetRoomByNumber(c.Request.Context(), number)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, result)
		return
	}

	if roomType := c.Query("type"); roomType != "" {
		result, err := h.service.ListRoomsByType(c.Request.Context(), roomType)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, result)
		return
	}

	if c.Query("available") == "true" {
		result, err := h.service.ListAvailableRooms(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, result)
		return
	}

	result, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetRoom handles GET /api/v1/rooms/:id.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	result, err := h.service.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateRoom handles PUT /api/v1/rooms/:id.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	var req application.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateRoom(c.Request.Context(), roomID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ChangeRate handles PATCH /api/v1/rooms/:id/rate.
func (h *RoomHandler) ChangeRate(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	var body struct {
		RateCents int64 `json:"rate_cents" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ChangeRoomRate(c.Request.Context(), roomID, body.RateCents)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// SetAvailability handles PATCH /api/v1/rooms/:id/availability.
func (h *RoomHandler) SetAvailability(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	var body struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SetRoomAvailability(c.Request.Context(), roomID, *body.Available)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteRoom handles DELETE /api/v1/rooms/:id.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), roomID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
