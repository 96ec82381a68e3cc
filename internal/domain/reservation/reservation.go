package reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
)

// Reservation is the aggregate root for the booking domain. It references
// exactly one client and one room, holds a date-granular stay period, and
// carries the price that was computed when the stay was booked or last
// rescheduled. The stored price is a snapshot: later changes to the room's
// nightly rate never flow back into it.
type Reservation struct {
	id       uuid.UUID
	clientID uuid.UUID
	roomID   uuid.UUID
	period   StayPeriod
	status   Status

	partySize   int
	preferences string
	comments    string

	nightlyRateCents int64
	totalPriceCents  int64

	confirmedAt *time.Time
	cancelledAt *time.Time
	completedAt *time.Time
	cancelNote  string

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation creates a new Reservation aggregate with status=pending.
// The caller supplies the price computed for the stay; callers never set the
// status directly.
func NewReservation(
	clientID uuid.UUID,
	roomID uuid.UUID,
	period StayPeriod,
	partySize int,
	preferences string,
	comments string,
	nightlyRateCents int64,
	totalPriceCents int64,
) (*Reservation, error) {
	if clientID == uuid.Nil {
		return nil, domain.NewValidationError("client ID is required")
	}
	if roomID == uuid.Nil {
		return nil, domain.NewValidationError("room ID is required")
	}
	if partySize < 1 {
		return nil, domain.NewValidationError("party size must be at least 1")
	}
	if nightlyRateCents <= 0 {
		return nil, domain.NewValidationError("nightly rate must be positive")
	}
	if totalPriceCents < 0 {
		return nil, domain.NewValidationError("total price cannot be negative")
	}

	now := time.Now().UTC()
	return &Reservation{
		id:               uuid.New(),
		clientID:         clientID,
		roomID:           roomID,
		period:           period,
		status:           StatusPending,
		partySize:        partySize,
		preferences:      preferences,
		comments:         comments,
		nightlyRateCents: nightlyRateCents,
		totalPriceCents:  totalPriceCents,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// Reconstruct rebuilds a Reservation from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	clientID uuid.UUID,
	roomID uuid.UUID,
	period StayPeriod,
	status Status,
	partySize int,
	preferences string,
	comments string,
	nightlyRateCents int64,
	totalPriceCents int64,
	confirmedAt *time.Time,
	cancelledAt *time.Time,
	completedAt *time.Time,
	cancelNote string,
	version int64,
	createdAt time.Time,
	updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:               id,
		clientID:         clientID,
		roomID:           roomID,
		period:           period,
		status:           status,
		partySize:        partySize,
		preferences:      preferences,
		comments:         comments,
		nightlyRateCents: nightlyRateCents,
		totalPriceCents:  totalPriceCents,
		confirmedAt:      confirmedAt,
		cancelledAt:      cancelledAt,
		completedAt:      completedAt,
		cancelNote:       cancelNote,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// --- Getters ---

// ID returns the reservation's unique identifier.
func (r *Reservation) ID() uuid.UUID { return r.id }

// ClientID returns the booking client's identifier.
func (r *Reservation) ClientID() uuid.UUID { return r.clientID }

// RoomID returns the reserved room's identifier.
func (r *Reservation) RoomID() uuid.UUID { return r.roomID }

// Period returns the stay period.
func (r *Reservation) Period() StayPeriod { return r.period }

// Status returns the current lifecycle status.
func (r *Reservation) Status() Status { return r.status }

// PartySize returns the number of guests.
func (r *Reservation) PartySize() int { return r.partySize }

// Preferences returns the free-text stay preferences.
func (r *Reservation) Preferences() string { return r.preferences }

// Comments returns the free-text comments.
func (r *Reservation) Comments() string { return r.comments }

// NightlyRateCents returns the nightly rate captured when the stay was priced.
func (r *Reservation) NightlyRateCents() int64 { return r.nightlyRateCents }

// TotalPriceCents returns the stay's total price in cents.
func (r *Reservation) TotalPriceCents() int64 { return r.totalPriceCents }

// ConfirmedAt returns the time the reservation was confirmed, or nil.
func (r *Reservation) ConfirmedAt() *time.Time { return r.confirmedAt }

// CancelledAt returns the time the reservation was cancelled, or nil.
func (r *Reservation) CancelledAt() *time.Time { return r.cancelledAt }

// CompletedAt returns the time the stay was completed, or nil.
func (r *Reservation) CompletedAt() *time.Time { return r.completedAt }

// CancelNote returns the cancellation reason.
func (r *Reservation) CancelNote() string { return r.cancelNote }

// Version returns the entity version for optimistic locking.
func (r *Reservation) Version() int64 { return r.version }

// CreatedAt returns the creation timestamp.
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

// --- Behavior ---

// ChangeStatus applies a guarded lifecycle transition. Disallowed moves,
// including any move out of cancelled or completed, fail without applying.
func (r *Reservation) ChangeStatus(target Status) error {
	if !r.status.CanTransitionTo(target) {
		return domain.NewInvalidTransitionError(string(r.status), string(target))
	}
	now := time.Now().UTC()
	switch target {
	case StatusConfirmed:
		r.confirmedAt = &now
	case StatusCancelled:
		r.cancelledAt = &now
	case StatusCompleted:
		r.completedAt = &now
	}
	r.status = target
	r.updatedAt = now
	return nil
}

// Confirm transitions the reservation from pending to confirmed.
func (r *Reservation) Confirm() error {
	return r.ChangeStatus(StatusConfirmed)
}

// Cancel transitions the reservation to cancelled, releasing its dates.
func (r *Reservation) Cancel(reason string) error {
	if err := r.ChangeStatus(StatusCancelled); err != nil {
		return err
	}
	r.cancelNote = reason
	return nil
}

// Complete transitions a confirmed reservation to completed.
func (r *Reservation) Complete() error {
	return r.ChangeStatus(StatusCompleted)
}

// Reschedule moves the reservation to a (possibly different) room and period,
// repricing the stay with the rate quoted at amendment time. Terminal
// reservations cannot be rescheduled.
func (r *Reservation) Reschedule(roomID uuid.UUID, period StayPeriod, nightlyRateCents, totalPriceCents int64) error {
	if r.status.IsTerminal() {
		return domain.NewInvalidTransitionError(string(r.status), "amended")
	}
	if roomID == uuid.Nil {
		return domain.NewValidationError("room ID is required")
	}
	r.roomID = roomID
	r.period = period
	r.nightlyRateCents = nightlyRateCents
	r.totalPriceCents = totalPriceCents
	r.updatedAt = time.Now().UTC()
	return nil
}

// ReassignClient repoints the reservation at a different client.
func (r *Reservation) ReassignClient(clientID uuid.UUID) error {
	if r.status.IsTerminal() {
		return domain.NewInvalidTransitionError(string(r.status), "amended")
	}
	if clientID == uuid.Nil {
		return domain.NewValidationError("client ID is required")
	}
	r.clientID = clientID
	r.updatedAt = time.Now().UTC()
	return nil
}

// UpdateDetails changes party size and free-text fields. Detail edits never
// touch the stay period or the price.
func (r *Reservation) UpdateDetails(partySize int, preferences, comments string) error {
	if r.status.IsTerminal() {
		return domain.NewInvalidTransitionError(string(r.status), "amended")
	}
	if partySize < 1 {
		return domain.NewValidationError("party size must be at least 1")
	}
	r.partySize = partySize
	r.preferences = preferences
	r.comments = comments
	r.updatedAt = time.Now().UTC()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (r *Reservation) IncrementVersion() {
	r.version++
	r.updatedAt = time.Now().UTC()
}
