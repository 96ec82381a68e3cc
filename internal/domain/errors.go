package domain

import (
	"fmt"
	"time"
)

// NotFoundError indicates that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	Key    string
}

func NewNotFoundError(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// ValidationError indicates a request that fails a business rule.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DuplicateError indicates a uniqueness violation on a natural key.
type DuplicateError struct {
	Entity string
	Field  string
	Value  string
}

func NewDuplicateError(entity, field, value string) *DuplicateError {
	return &DuplicateError{Entity: entity, Field: field, Value: value}
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

// InvalidDateRangeError indicates a stay period whose start is after its end.
type InvalidDateRangeError struct {
	Start time.Time
	End   time.Time
}

func NewInvalidDateRangeError(start, end time.Time) *InvalidDateRangeError {
	return &InvalidDateRangeError{Start: start, End: end}
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date range: start %s is after end %s",
		e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
}

// PastDateRangeError indicates a stay period starting before today.
type PastDateRangeError struct {
	Start time.Time
}

func NewPastDateRangeError(start time.Time) *PastDateRangeError {
	return &PastDateRangeError{Start: start}
}

func (e *PastDateRangeError) Error() string {
	return fmt.Sprintf("date range starts in the past: %s", e.Start.Format("2006-01-02"))
}

// RoomUnavailableError indicates a live reservation already occupies the
// requested dates on the room.
type RoomUnavailableError struct {
	RoomID string
	Start  time.Time
	End    time.Time
}

func NewRoomUnavailableError(roomID string, start, end time.Time) *RoomUnavailableError {
	return &RoomUnavailableError{RoomID: roomID, Start: start, End: end}
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf("room %s is not available between %s and %s",
		e.RoomID, e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
}

// InvalidTransitionError indicates a disallowed reservation status change.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// ConcurrencyTimeoutError indicates the per-room serialization lock could not
// be acquired within its budget. The request may be retried by the caller.
type ConcurrencyTimeoutError struct {
	RoomID string
}

func NewConcurrencyTimeoutError(roomID string) *ConcurrencyTimeoutError {
	return &ConcurrencyTimeoutError{RoomID: roomID}
}

func (e *ConcurrencyTimeoutError) Error() string {
	return fmt.Sprintf("timed out waiting for booking lock on room %s", e.RoomID)
}

// ConflictError indicates a write lost an optimistic-locking race.
type ConflictError struct {
	Message string
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}
