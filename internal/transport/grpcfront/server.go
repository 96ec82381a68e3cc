package grpcfront

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Beausejour-Hotels/service-reservation/internal/application"
	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
	"github.com/Beausejour-Hotels/service-reservation/internal/response"
)

// ReservationServer exposes the reservation operations over gRPC. It is a
// thin adapter: all booking rules live in the application service.
type ReservationServer struct {
	service *application.ReservationService
}

// NewReservationServer creates a new ReservationServer.
func NewReservationServer(service *application.ReservationService) *ReservationServer {
	return &ReservationServer{service: service}
}

// CreateReservation books a room for a client.
func (s *ReservationServer) CreateReservation(ctx context.Context, req *CreateReservationRequest) (*ReservationResponse, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid client_id")
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid room_id")
	}

	result, err := s.service.CreateReservation(ctx, application.CreateReservationRequest{
		ClientID:    clientID,
		RoomID:      roomID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		PartySize:   req.PartySize,
		Preferences: req.Preferences,
		Comments:    req.Comments,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ReservationResponse{Reservation: result}, nil
}

// GetReservation retrieves a single reservation.
func (s *ReservationServer) GetReservation(ctx context.Context, req *GetReservationRequest) (*ReservationResponse, error) {
	id, err := uuid.Parse(req.ReservationID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid reservation_id")
	}

	result, err := s.service.GetReservation(ctx, id)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ReservationResponse{Reservation: result}, nil
}

// AmendReservation applies a partial update to a reservation.
func (s *ReservationServer) AmendReservation(ctx context.Context, req *AmendReservationRequest) (*ReservationResponse, error) {
	id, err := uuid.Parse(req.ReservationID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid reservation_id")
	}

	appReq := application.AmendReservationRequest{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		PartySize:   req.PartySize,
		Preferences: req.Preferences,
		Comments:    req.Comments,
	}
	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid client_id")
		}
		appReq.ClientID = &clientID
	}
	if req.RoomID != nil {
		roomID, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid room_id")
		}
		appReq.RoomID = &roomID
	}

	result, err := s.service.AmendReservation(ctx, id, appReq)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ReservationResponse{Reservation: result}, nil
}

// ChangeStatus applies a lifecycle transition.
func (s *ReservationServer) ChangeStatus(ctx context.Context, req *ChangeStatusRequest) (*ReservationResponse, error) {
	id, err := uuid.Parse(req.ReservationID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid reservation_id")
	}

	result, err := s.service.ChangeStatus(ctx, id, req.Status)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ReservationResponse{Reservation: result}, nil
}

// CancelReservation cancels a reservation.
func (s *ReservationServer) CancelReservation(ctx context.Context, req *CancelReservationRequest) (*ReservationResponse, error) {
	id, err := uuid.Parse(req.ReservationID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid reservation_id")
	}

	result, err := s.service.CancelReservation(ctx, id, req.Reason)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ReservationResponse{Reservation: result}, nil
}

// CheckAvailability reports whether a room is free for the given dates.
func (s *ReservationServer) CheckAvailability(ctx context.Context, req *CheckAvailabilityRequest) (*CheckAvailabilityResponse, error) {
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid room_id")
	}

	available, err := s.service.CheckAvailability(ctx, roomID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &CheckAvailabilityResponse{
		RoomID:    req.RoomID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Available: available,
	}, nil
}

// ListForClient retrieves a client's reservations.
func (s *ReservationServer) ListForClient(ctx context.Context, req *ListForClientRequest) (*ReservationListResponse, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid client_id")
	}

	list, err := s.service.ListForClient(ctx, clientID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ReservationListResponse{Reservations: list}, nil
}

// ListForRoom retrieves a room's reservations.
func (s *ReservationServer) ListForRoom(ctx context.Context, req *ListForRoomRequest) (*ReservationListResponse, error) {
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid room_id")
	}

	list, err := s.service.ListForRoom(ctx, roomID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ReservationListResponse{Reservations: list}, nil
}

// ListByStatus retrieves reservations in a given status.
func (s *ReservationServer) ListByStatus(ctx context.Context, req *ListByStatusRequest) (*ReservationListResponse, error) {
	list, err := s.service.ListByStatus(ctx, req.Status)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ReservationListResponse{Reservations: list}, nil
}

// ListCurrentAndUpcoming retrieves live reservations whose stay has not yet
// ended.
func (s *ReservationServer) ListCurrentAndUpcoming(ctx context.Context, _ *ListCurrentAndUpcomingRequest) (*ReservationListResponse, error) {
	list, err := s.service.ListCurrentAndUpcoming(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ReservationListResponse{Reservations: list}, nil
}

// toStatusError converts a domain error into a gRPC status error. The error
// kind string rides along in the message so callers see the same taxonomy the
// REST front-end reports.
func toStatusError(err error) error {
	httpStatus, kind := response.Classify(err)

	message := kind + ": " + err.Error()
	switch httpStatus {
	case http.StatusNotFound:
		return status.Error(codes.NotFound, message)
	case http.StatusBadRequest:
		return status.Error(codes.InvalidArgument, message)
	case http.StatusConflict:
		var duplicate *domain.DuplicateError
		if errors.As(err, &duplicate) {
			return status.Error(codes.AlreadyExists, message)
		}
		return status.Error(codes.FailedPrecondition, message)
	case http.StatusServiceUnavailable:
		return status.Error(codes.Unavailable, message)
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
