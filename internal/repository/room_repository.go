package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
	"github.com/Beausejour-Hotels/service-reservation/internal/domain/room"
)

// RoomModel is the GORM model for the rooms table. Amenities are stored as a
// JSON document.
type RoomModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"not null;size:20;uniqueIndex"`
	RoomType    string    `gorm:"not null;size:20;index"`
	RateCents   int64     `gorm:"not null"`
	Available   bool      `gorm:"not null;default:true"`
	Description string    `gorm:"size:2000"`
	MaxCapacity int       `gorm:"not null;default:1"`
	Amenities   []byte    `gorm:"type:jsonb"`
	Version     int64     `gorm:"not null;default:1"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RoomModel) TableName() string {
	return "rooms"
}

// GormRoomRepository is the GORM-based implementation of room.Repository.
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GormRoomRepository.
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// FindByID retrieves a room by its unique identifier.
func (r *GormRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	var model RoomModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Room", id.String())
		}
		return nil, fmt.Errorf("failed to find room by ID: %w", err)
	}
	return toDomainRoom(&model)
}

// FindByNumber retrieves a room by its room number.
func (r *GormRoomRepository) FindByNumber(ctx context.Context, number string) (*room.Room, error) {
	var model RoomModel
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Room", number)
		}
		return nil, fmt.Errorf("failed to find room by number: %w", err)
	}
	return toDomainRoom(&model)
}

// ExistsByNumber reports whether a room with the given number exists.
func (r *GormRoomRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RoomModel{}).
		Where("number = ?", number).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check room number: %w", err)
	}
	return count > 0, nil
}

// FindAll retrieves every room ordered by room number.
func (r *GormRoomRepository) FindAll(ctx context.Context) ([]*room.Room, error) {
	var models []RoomModel
	if err := r.db.WithContext(ctx).
		Order("number ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return toDomainRooms(models)
}

// FindAvailable retrieves rooms whose administrative availability flag is set.
func (r *GormRoomRepository) FindAvailable(ctx context.Context) ([]*room.Room, error) {
	var models []RoomModel
	if err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Order("number ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return toDomainRooms(models)
}

// FindByType retrieves rooms in the given category.
func (r *GormRoomRepository) FindByType(ctx context.Context, roomType room.Type) ([]*room.Room, error) {
	var models []RoomModel
	if err := r.db.WithContext(ctx).
		Where("room_type = ?", string(roomType)).
		Order("number ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms by type: %w", err)
	}
	return toDomainRooms(models)
}

// Save persists a new room.
func (r *GormRoomRepository) Save(ctx context.Context, rm *room.Room) error {
	model, err := toRoomModel(rm)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}
	return nil
}

// Update persists changes to an existing room with optimistic locking.
func (r *GormRoomRepository) Update(ctx context.Context, rm *room.Room) error {
	model, err := toRoomModel(rm)
	if err != nil {
		return err
	}

	expectedVersion := rm.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&RoomModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"number":       model.Number,
			"room_type":    model.RoomType,
			"rate_cents":   model.RateCents,
			"available":    model.Available,
			"description":  model.Description,
			"max_capacity": model.MaxCapacity,
			"amenities":    model.Amenities,
			"version":      model.Version,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("room was modified by another transaction")
	}
	return nil
}

// Delete removes a room.
func (r *GormRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&RoomModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

// --- Conversion Helpers ---

func toRoomModel(rm *room.Room) (*RoomModel, error) {
	var amenities []byte
	if rm.Amenities() != nil {
		data, err := json.Marshal(rm.Amenities())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal amenities: %w", err)
		}
		amenities = data
	}

	return &RoomModel{
		ID:          rm.ID(),
		Number:      rm.Number(),
		RoomType:    string(rm.RoomType()),
		RateCents:   rm.RateCents(),
		Available:   rm.Available(),
		Description: rm.Description(),
		MaxCapacity: rm.MaxCapacity(),
		Amenities:   amenities,
		Version:     rm.Version(),
		CreatedAt:   rm.CreatedAt(),
		UpdatedAt:   rm.UpdatedAt(),
	}, nil
}

func toDomainRoom(m *RoomModel) (*room.Room, error) {
	var amenities []string
	if len(m.Amenities) > 0 {
		if err := json.Unmarshal(m.Amenities, &amenities); err != nil {
			return nil, fmt.Errorf("corrupt amenities on room %s: %w", m.ID, err)
		}
	}

	return room.Reconstruct(
		m.ID,
		m.Number,
		room.Type(m.RoomType),
		m.RateCents,
		m.Available,
		m.Description,
		m.MaxCapacity,
		amenities,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toDomainRooms(models []RoomModel) ([]*room.Room, error) {
	list := make([]*room.Room, len(models))
	for i := range models {
		rm, err := toDomainRoom(&models[i])
		if err != nil {
			return nil, err
		}
		list[i] = rm
	}
	return list, nil
}
