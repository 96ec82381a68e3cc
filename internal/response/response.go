// Package response maps application results and domain errors onto uniform
// HTTP responses so every handler reports the same shapes.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
)

// Envelope is the body shape of every non-paginated response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody carries the machine-readable error kind alongside the message.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// PaginatedEnvelope is the body shape of list responses.
type PaginatedEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
}

// Success writes a 200 response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// NoContent writes a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated writes a 200 list response with paging metadata.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, PaginatedEnvelope{
		Success: true,
		Data:    items,
		Total:   total,
		Page:    page,
		Limit:   limit,
	})
}

// BadRequest writes a 400 response with a plain message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error:   &ErrorBody{Kind: "bad_request", Message: message},
	})
}

// Error translates a domain error into the HTTP status and error kind the
// front-ends expose. Unknown errors become opaque 500s.
func Error(c *gin.Context, err error) {
	status, kind := Classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	c.JSON(status, Envelope{
		Success: false,
		Error:   &ErrorBody{Kind: kind, Message: message},
	})
}

// Classify maps a domain error to an HTTP status code and error kind string.
// The kind strings are shared with the gRPC and SOAP front-ends so all three
// report the same taxonomy.
func Classify(err error) (int, string) {
	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	var duplicate *domain.DuplicateError
	var invalidRange *domain.InvalidDateRangeError
	var pastRange *domain.PastDateRangeError
	var unavailable *domain.RoomUnavailableError
	var transition *domain.InvalidTransitionError
	var lockTimeout *domain.ConcurrencyTimeoutError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, "not_found"
	case errors.As(err, &invalidRange):
		return http.StatusBadRequest, "invalid_date_range"
	case errors.As(err, &pastRange):
		return http.StatusBadRequest, "past_date_range"
	case errors.As(err, &validation):
		return http.StatusBadRequest, "validation"
	case errors.As(err, &duplicate):
		return http.StatusConflict, "duplicate"
	case errors.As(err, &unavailable):
		return http.StatusConflict, "room_unavailable"
	case errors.As(err, &transition):
		return http.StatusConflict, "invalid_transition"
	case errors.As(err, &conflict):
		return http.StatusConflict, "conflict"
	case errors.As(err, &lockTimeout):
		return http.StatusServiceUnavailable, "concurrency_timeout"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
