package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for reservation aggregates.
type Repository interface {
	// FindByID retrieves a reservation by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Reservation, error)

	// FindByClientID retrieves all reservations belonging to a client.
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*Reservation, error)

	// FindByRoomID retrieves all reservations against a room.
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*Reservation, error)

	// FindLiveByRoomID retrieves the non-cancelled reservations of a room.
	// This is the snapshot the availability scan runs over.
	FindLiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*Reservation, error)

	// FindByStatus retrieves all reservations in the given status.
	FindByStatus(ctx context.Context, status Status) ([]*Reservation, error)

	// FindCurrentAndUpcoming retrieves live reservations whose stay has not
	// ended before the given date, ordered by check-in date.
	FindCurrentAndUpcoming(ctx context.Context, date time.Time) ([]*Reservation, error)

	// FindByDateRange retrieves reservations whose stay falls entirely
	// within [start, end], regardless of status.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*Reservation, error)

	// ListAll retrieves all reservations with pagination.
	ListAll(ctx context.Context, page, limit int) ([]*Reservation, int64, error)

	// CountByStatus returns reservation counts grouped by status.
	CountByStatus(ctx context.Context) (map[string]int64, error)

	// Save persists a new reservation.
	Save(ctx context.Context, r *Reservation) error

	// Update persists changes to an existing reservation with optimistic locking.
	Update(ctx context.Context, r *Reservation) error

	// Delete removes a reservation unconditionally (administrative override).
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByClientID removes all reservations of a client (cascade on
	// client deletion).
	DeleteByClientID(ctx context.Context, clientID uuid.UUID) error
}
