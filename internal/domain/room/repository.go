package room

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for rooms.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Room, error)
	FindByNumber(ctx context.Context, number string) (*Room, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	FindAll(ctx context.Context) ([]*Room, error)
	FindAvailable(ctx context.Context) ([]*Room, error)
	FindByType(ctx context.Context, roomType Type) ([]*Room, error)
	Save(ctx context.Context, r *Room) error
	Update(ctx context.Context, r *Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}
