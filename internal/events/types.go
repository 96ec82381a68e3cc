// Package events defines the event contract of the reservation service: the
// CloudEvent types it publishes on reservation.events and the front-desk
// events it consumes.
package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	// TopicReservationEvents carries every lifecycle event this service emits.
	TopicReservationEvents = "reservation.events"
	// TopicFrontDeskEvents carries check-in/check-out facts recorded by the
	// front-desk system.
	TopicFrontDeskEvents = "frontdesk.events"
)

// Event types published by this service.
const (
	ReservationCreated       = "reservation.created"
	ReservationAmended       = "reservation.amended"
	ReservationStatusChanged = "reservation.status_changed"
	ReservationCancelled     = "reservation.cancelled"
	ReservationDeleted       = "reservation.deleted"
)

// Event types consumed from the front desk.
const (
	FrontDeskCheckInRecorded  = "frontdesk.checkin.recorded"
	FrontDeskCheckOutRecorded = "frontdesk.checkout.recorded"
)

// ReservationCreatedEvent is published when a booking succeeds.
type ReservationCreatedEvent struct {
	ReservationID   uuid.UUID `json:"reservation_id"`
	ClientID        uuid.UUID `json:"client_id"`
	RoomID          uuid.UUID `json:"room_id"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	TotalPriceCents int64     `json:"total_price_cents"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// ReservationAmendedEvent is published after a successful amendment.
type ReservationAmendedEvent struct {
	ReservationID   uuid.UUID `json:"reservation_id"`
	ClientID        uuid.UUID `json:"client_id"`
	RoomID          uuid.UUID `json:"room_id"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Repriced        bool      `json:"repriced"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// ReservationStatusChangedEvent is published on every lifecycle transition.
type ReservationStatusChangedEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// ReservationCancelledEvent is published when a reservation is cancelled,
// releasing its dates.
type ReservationCancelledEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	RoomID        uuid.UUID `json:"room_id"`
	Reason        string    `json:"reason"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// ReservationDeletedEvent is published on administrative removal.
type ReservationDeletedEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// CheckInRecordedEvent is the front-desk fact that a guest checked in; the
// reservation is confirmed in response.
type CheckInRecordedEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	RoomNumber    string    `json:"room_number"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// CheckOutRecordedEvent is the front-desk fact that a guest checked out; the
// reservation is completed in response.
type CheckOutRecordedEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	RoomNumber    string    `json:"room_number"`
	OccurredAt    time.Time `json:"occurred_at"`
}
