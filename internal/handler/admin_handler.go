package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Beausejour-Hotels/service-reservation/internal/application"
	"github.com/Beausejour-Hotels/service-reservation/internal/response"
)

// AdminHandler handles administrative HTTP endpoints.
type AdminHandler struct {
	service *application.ReservationService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *application.ReservationService) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes registers all admin routes on the given router group.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/api/v1/admin")
	{
		admin.GET("/reservations", h.ListAllReservations)
		admin.DELETE("/reservations/:id", h.DeleteReservation)
		admin.GET("/stats/reservations", h.GetReservationStats)
	}
}

// ListAllReservations handles GET /api/v1/admin/reservations.
func (h *AdminHandler) ListAllReservations(c *gin.Context) {
	page, limit := parsePagination(c)

	result, err := h.service.ListAllReservations(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// DeleteReservation handles DELETE /api/v1/admin/reservations/:id. This is a
// hard delete outside the reservation lifecycle.
func (h *AdminHandler) DeleteReservation(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid reservation ID")
		return
	}

	if err := h.service.DeleteReservation(c.Request.Context(), reservationID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetReservationStats handles GET /api/v1/admin/stats/reservations.
func (h *AdminHandler) GetReservationStats(c *gin.Context) {
	result, err := h.service.GetReservationStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
