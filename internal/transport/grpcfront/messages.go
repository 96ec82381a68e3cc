package grpcfront

import "github.com/Beausejour-Hotels/service-reservation/internal/application"

// Wire messages for the reservation gRPC service. These are plain structs
// carried by the JSON codec rather than generated protobuf types.

type CreateReservationRequest struct {
	ClientID    string `json:"client_id"`
	RoomID      string `json:"room_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PartySize   int    `json:"party_size"`
	Preferences string `json:"preferences,omitempty"`
	Comments    string `json:"comments,omitempty"`
}

type AmendReservationRequest struct {
	ReservationID string  `json:"reservation_id"`
	ClientID      *string `json:"client_id,omitempty"`
	RoomID        *string `json:"room_id,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	PartySize     *int    `json:"party_size,omitempty"`
	Preferences   *string `json:"preferences,omitempty"`
	Comments      *string `json:"comments,omitempty"`
}

type GetReservationRequest struct {
	ReservationID string `json:"reservation_id"`
}

type ChangeStatusRequest struct {
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"`
}

type CancelReservationRequest struct {
	ReservationID string `json:"reservation_id"`
	Reason        string `json:"reason,omitempty"`
}

type CheckAvailabilityRequest struct {
	RoomID    string `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type CheckAvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

type ListForClientRequest struct {
	ClientID string `json:"client_id"`
}

type ListForRoomRequest struct {
	RoomID string `json:"room_id"`
}

type ListByStatusRequest struct {
	Status string `json:"status"`
}

type ListCurrentAndUpcomingRequest struct{}

// ReservationResponse wraps a single reservation.
type ReservationResponse struct {
	Reservation *application.ReservationDTO `json:"reservation"`
}

// ReservationListResponse wraps a list of reservations.
type ReservationListResponse struct {
	Reservations []application.ReservationDTO `json:"reservations"`
}
