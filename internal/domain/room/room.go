package room

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
)

// Type is the fixed enumeration of room categories.
type Type string

const (
	TypeSingle Type = "single"
	TypeDouble Type = "double"
	TypeSuite  Type = "suite"
	TypeDeluxe Type = "deluxe"
	TypeFamily Type = "family"
)

var roomTypes = map[Type]struct{}{
	TypeSingle: {},
	TypeDouble: {},
	TypeSuite:  {},
	TypeDeluxe: {},
	TypeFamily: {},
}

// IsValid returns true if the type is a recognized room category.
func (t Type) IsValid() bool {
	_, exists := roomTypes[t]
	return exists
}

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// ParseType converts a string to a Type, returning an error if invalid.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid room type: %s", s)
	}
	return t, nil
}

// Room is the aggregate root for a hotel room. The nightly rate is shared
// mutable state: it may change at any time, and reservations capture it at
// booking time rather than dereferencing it live.
type Room struct {
	id          uuid.UUID
	number      string
	roomType    Type
	rateCents   int64
	available   bool
	description string
	maxCapacity int
	amenities   []string
	version     int64
	createdAt   time.Time
	updatedAt   time.Time
}

// NewRoom creates a new room with validated fields. Room number uniqueness is
// enforced at the service layer.
func NewRoom(number string, roomType Type, rateCents int64, maxCapacity int, description string, amenities []string) (*Room, error) {
	if number == "" {
		return nil, domain.NewValidationError("room number is required")
	}
	if !roomType.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid room type: %s", roomType))
	}
	if rateCents <= 0 {
		return nil, domain.NewValidationError("nightly rate must be positive")
	}
	if maxCapacity < 1 {
		return nil, domain.NewValidationError("max capacity must be at least 1")
	}

	now := time.Now().UTC()
	return &Room{
		id:          uuid.New(),
		number:      number,
		roomType:    roomType,
		rateCents:   rateCents,
		available:   true,
		description: description,
		maxCapacity: maxCapacity,
		amenities:   amenities,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a Room from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	number string,
	roomType Type,
	rateCents int64,
	available bool,
	description string,
	maxCapacity int,
	amenities []string,
	version int64,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:          id,
		number:      number,
		roomType:    roomType,
		rateCents:   rateCents,
		available:   available,
		description: description,
		maxCapacity: maxCapacity,
		amenities:   amenities,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// --- Getters ---

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() string       { return r.number }
func (r *Room) RoomType() Type       { return r.roomType }
func (r *Room) RateCents() int64     { return r.rateCents }
func (r *Room) Available() bool      { return r.available }
func (r *Room) Description() string  { return r.description }
func (r *Room) MaxCapacity() int     { return r.maxCapacity }
func (r *Room) Amenities() []string  { return r.amenities }
func (r *Room) Version() int64       { return r.version }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

// --- Behavior ---

// ChangeRate sets a new nightly rate. Existing reservations keep the rate
// they were priced at.
func (r *Room) ChangeRate(rateCents int64) error {
	if rateCents <= 0 {
		return domain.NewValidationError("nightly rate must be positive")
	}
	r.rateCents = rateCents
	r.version++
	r.updatedAt = time.Now().UTC()
	return nil
}

// SetAvailable toggles the administrative availability flag. The flag is
// independent of date-based booking conflicts.
func (r *Room) SetAvailable(available bool) {
	r.available = available
	r.version++
	r.updatedAt = time.Now().UTC()
}

// Update applies partial updates to the room. Zero values are left unchanged.
func (r *Room) Update(number string, roomType Type, maxCapacity int, description string, amenities []string) error {
	if number != "" {
		r.number = number
	}
	if roomType != "" {
		if !roomType.IsValid() {
			return domain.NewValidationError(fmt.Sprintf("invalid room type: %s", roomType))
		}
		r.roomType = roomType
	}
	if maxCapacity > 0 {
		r.maxCapacity = maxCapacity
	}
	if description != "" {
		r.description = description
	}
	if amenities != nil {
		r.amenities = amenities
	}
	r.version++
	r.updatedAt = time.Now().UTC()
	return nil
}
