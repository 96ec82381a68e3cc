package client

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for client profiles.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindByEmail(ctx context.Context, email string) (*Client, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]*Client, error)
	Save(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}
