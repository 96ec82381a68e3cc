package soapfront

import (
	"encoding/xml"

	"github.com/Beausejour-Hotels/service-reservation/internal/application"
)

// Request payloads. Element names double as the dispatch key.

type createReservationRequest struct {
	XMLName     xml.Name `xml:"CreateReservationRequest"`
	ClientID    string   `xml:"clientId"`
	RoomID      string   `xml:"roomId"`
	StartDate   string   `xml:"startDate"`
	EndDate     string   `xml:"endDate"`
	PartySize   int      `xml:"partySize"`
	Preferences string   `xml:"preferences"`
	Comments    string   `xml:"comments"`
}

type getReservationRequest struct {
	XMLName       xml.Name `xml:"GetReservationRequest"`
	ReservationID string   `xml:"reservationId"`
}

type amendReservationRequest struct {
	XMLName       xml.Name `xml:"AmendReservationRequest"`
	ReservationID string   `xml:"reservationId"`
	ClientID      *string  `xml:"clientId"`
	RoomID        *string  `xml:"roomId"`
	StartDate     *string  `xml:"startDate"`
	EndDate       *string  `xml:"endDate"`
	PartySize     *int     `xml:"partySize"`
	Preferences   *string  `xml:"preferences"`
	Comments      *string  `xml:"comments"`
}

type changeStatusRequest struct {
	XMLName       xml.Name `xml:"ChangeStatusRequest"`
	ReservationID string   `xml:"reservationId"`
	Status        string   `xml:"status"`
}

type cancelReservationRequest struct {
	XMLName       xml.Name `xml:"CancelReservationRequest"`
	ReservationID string   `xml:"reservationId"`
	Reason        string   `xml:"reason"`
}

type checkAvailabilityRequest struct {
	XMLName   xml.Name `xml:"CheckAvailabilityRequest"`
	RoomID    string   `xml:"roomId"`
	StartDate string   `xml:"startDate"`
	EndDate   string   `xml:"endDate"`
}

type listForClientRequest struct {
	XMLName  xml.Name `xml:"ListForClientRequest"`
	ClientID string   `xml:"clientId"`
}

type listForRoomRequest struct {
	XMLName xml.Name `xml:"ListForRoomRequest"`
	RoomID  string   `xml:"roomId"`
}

type listByStatusRequest struct {
	XMLName xml.Name `xml:"ListByStatusRequest"`
	Status  string   `xml:"status"`
}

// Response payloads.

type reservationInfo struct {
	ID               string `xml:"id"`
	ClientID         string `xml:"clientId"`
	RoomID           string `xml:"roomId"`
	StartDate        string `xml:"startDate"`
	EndDate          string `xml:"endDate"`
	Status           string `xml:"status"`
	PartySize        int    `xml:"partySize"`
	Preferences      string `xml:"preferences,omitempty"`
	Comments         string `xml:"comments,omitempty"`
	NightlyRateCents int64  `xml:"nightlyRateCents"`
	TotalPriceCents  int64  `xml:"totalPriceCents"`
	CancelNote       string `xml:"cancelNote,omitempty"`
}

type reservationResponse struct {
	XMLName     xml.Name        `xml:"ns:ReservationResponse"`
	NS          string          `xml:"xmlns:ns,attr"`
	Reservation reservationInfo `xml:"reservation"`
}

type reservationListResponse struct {
	XMLName      xml.Name          `xml:"ns:ReservationListResponse"`
	NS           string            `xml:"xmlns:ns,attr"`
	Reservations []reservationInfo `xml:"reservations>reservation"`
}

type availabilityResponse struct {
	XMLName   xml.Name `xml:"ns:AvailabilityResponse"`
	NS        string   `xml:"xmlns:ns,attr"`
	RoomID    string   `xml:"roomId"`
	StartDate string   `xml:"startDate"`
	EndDate   string   `xml:"endDate"`
	Available bool     `xml:"available"`
}

func toReservationInfo(dto *application.ReservationDTO) reservationInfo {
	return reservationInfo{
		ID:               dto.ID.String(),
		ClientID:         dto.ClientID.String(),
		RoomID:           dto.RoomID.String(),
		StartDate:        dto.StartDate,
		EndDate:          dto.EndDate,
		Status:           dto.Status,
		PartySize:        dto.PartySize,
		Preferences:      dto.Preferences,
		Comments:         dto.Comments,
		NightlyRateCents: dto.NightlyRateCents,
		TotalPriceCents:  dto.TotalPriceCents,
		CancelNote:       dto.CancelNote,
	}
}

func toReservationInfos(dtos []application.ReservationDTO) []reservationInfo {
	infos := make([]reservationInfo, len(dtos))
	for i := range dtos {
		infos[i] = toReservationInfo(&dtos[i])
	}
	return infos
}
