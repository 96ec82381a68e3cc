package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
	roomDomain "github.com/Beausejour-Hotels/service-reservation/internal/domain/room"
)

// CreateRoomRequest is the request DTO for registering a room.
type CreateRoomRequest struct {
	Number      string   `json:"number" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	RateCents   int64    `json:"rate_cents" binding:"required"`
	MaxCapacity int      `json:"max_capacity" binding:"required"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

// UpdateRoomRequest is the request DTO for editing a room. Zero-valued fields
// are left unchanged; the rate and availability flag have dedicated calls.
type UpdateRoomRequest struct {
	Number      string   `json:"number"`
	Type        string   `json:"type"`
	MaxCapacity int      `json:"max_capacity"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

// RoomDTO is the API response representation of a room.
type RoomDTO struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	Type        string    `json:"type"`
	RateCents   int64     `json:"rate_cents"`
	Available   bool      `json:"available"`
	Description string    `json:"description,omitempty"`
	MaxCapacity int       `json:"max_capacity"`
	Amenities   []string  `json:"amenities,omitempty"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoomService manages the room directory.
type RoomService struct {
	rooms  roomDomain.Repository
	logger *zap.Logger
}

// NewRoomService creates a new RoomService.
func NewRoomService(rooms roomDomain.Repository, logger *zap.Logger) *RoomService {
	return &RoomService{rooms: rooms, logger: logger}
}

// CreateRoom registers a new room. The room number must be unique.
func (s *RoomService) CreateRoom(ctx context.Context, req CreateRoomRequest) (*RoomDTO, error) {
	roomType, err := roomDomain.ParseType(req.Type)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	exists, err := s.rooms.ExistsByNumber(ctx, req.Number)
	if err != nil {
		return nil, fmt.Errorf("failed to check room number uniqueness: %w", err)
	}
	if exists {
		return nil, domain.NewDuplicateError("Room", "number", req.Number)
	}

	rm, err := roomDomain.NewRoom(req.Number, roomType, req.RateCents, req.MaxCapacity, req.Description, req.Amenities)
	if err != nil {
		return nil, err
	}
	if err := s.rooms.Save(ctx, rm); err != nil {
		return nil, fmt.Errorf("failed to save room: %w", err)
	}

	result := toRoomDTO(rm)
	return &result, nil
}

// GetRoom retrieves a room by ID.
func (s *RoomService) GetRoom(ctx context.Context, id uuid.UUID) (*RoomDTO, error) {
	rm, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toRoomDTO(rm)
	return &result, nil
}

// GetRoomByNumber retrieves a room by its room number.
func (s *RoomService) GetRoomByNumber(ctx context.Context, number string) (*RoomDTO, error) {
	rm, err := s.rooms.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	result := toRoomDTO(rm)
	return &result, nil
}

// ListRooms retrieves all rooms.
func (s *RoomService) ListRooms(ctx context.Context) ([]RoomDTO, error) {
	list, err := s.rooms.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return toRoomDTOs(list), nil
}

// ListAvailableRooms retrieves rooms whose administrative availability flag
// is set. The flag says nothing about date-based conflicts.
func (s *RoomService) ListAvailableRooms(ctx context.Context) ([]RoomDTO, error) {
	list, err := s.rooms.FindAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return toRoomDTOs(list), nil
}

// ListRoomsByType retrieves rooms in the given category.
func (s *RoomService) ListRoomsByType(ctx context.Context, roomType string) ([]RoomDTO, error) {
	t, err := roomDomain.ParseType(roomType)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	list, err := s.rooms.FindByType(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms by type: %w", err)
	}
	return toRoomDTOs(list), nil
}

// UpdateRoom applies a partial edit. A changed room number must remain unique.
func (s *RoomService) UpdateRoom(ctx context.Context, id uuid.UUID, req UpdateRoomRequest) (*RoomDTO, error) {
	rm, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Number != "" && req.Number != rm.Number() {
		exists, err := s.rooms.ExistsByNumber(ctx, req.Number)
		if err != nil {
			return nil, fmt.Errorf("failed to check room number uniqueness: %w", err)
		}
		if exists {
			return nil, domain.NewDuplicateError("Room", "number", req.Number)
		}
	}

	if err := rm.Update(req.Number, roomDomain.Type(req.Type), req.MaxCapacity, req.Description, req.Amenities); err != nil {
		return nil, err
	}
	if err := s.rooms.Update(ctx, rm); err != nil {
		return nil, err
	}

	result := toRoomDTO(rm)
	return &result, nil
}

// ChangeRoomRate sets a new nightly rate. Prices already stored on
// reservations are snapshots and are deliberately not recomputed.
func (s *RoomService) ChangeRoomRate(ctx context.Context, id uuid.UUID, rateCents int64) (*RoomDTO, error) {
	rm, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rm.ChangeRate(rateCents); err != nil {
		return nil, err
	}
	if err := s.rooms.Update(ctx, rm); err != nil {
		return nil, err
	}

	s.logger.Info("room rate changed",
		zap.String("room_id", id.String()),
		zap.Int64("rate_cents", rateCents),
	)
	result := toRoomDTO(rm)
	return &result, nil
}

// SetRoomAvailability toggles the administrative availability flag.
func (s *RoomService) SetRoomAvailability(ctx context.Context, id uuid.UUID, available bool) (*RoomDTO, error) {
	rm, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rm.SetAvailable(available)
	if err := s.rooms.Update(ctx, rm); err != nil {
		return nil, err
	}
	result := toRoomDTO(rm)
	return &result, nil
}

// DeleteRoom removes a room.
func (s *RoomService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	if _, err := s.rooms.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.rooms.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

func toRoomDTO(rm *roomDomain.Room) RoomDTO {
	return RoomDTO{
		ID:          rm.ID(),
		Number:      rm.Number(),
		Type:        string(rm.RoomType()),
		RateCents:   rm.RateCents(),
		Available:   rm.Available(),
		Description: rm.Description(),
		MaxCapacity: rm.MaxCapacity(),
		Amenities:   rm.Amenities(),
		Version:     rm.Version(),
		CreatedAt:   rm.CreatedAt(),
		UpdatedAt:   rm.UpdatedAt(),
	}
}

func toRoomDTOs(list []*roomDomain.Room) []RoomDTO {
	dtos := make([]RoomDTO, len(list))
	for i, rm := range list {
		dtos[i] = toRoomDTO(rm)
	}
	return dtos
}
