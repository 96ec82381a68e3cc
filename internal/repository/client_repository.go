package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
	"github.com/Beausejour-Hotels/service-reservation/internal/domain/client"
)

// ClientModel is the GORM model for the clients table.
type ClientModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"not null;size:100"`
	LastName  string    `gorm:"not null;size:100"`
	Email     string    `gorm:"not null;size:255;uniqueIndex"`
	Phone     string    `gorm:"not null;size:30"`
	Version   int64     `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ClientModel) TableName() string {
	return "clients"
}

// GormClientRepository is the GORM-based implementation of client.Repository.
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository.
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID retrieves a client by its unique identifier.
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	var model ClientModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Client", id.String())
		}
		return nil, fmt.Errorf("failed to find client by ID: %w", err)
	}
	return toDomainClient(&model), nil
}

// FindByEmail retrieves a client by email address.
func (r *GormClientRepository) FindByEmail(ctx context.Context, email string) (*client.Client, error) {
	var model ClientModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Client", email)
		}
		return nil, fmt.Errorf("failed to find client by email: %w", err)
	}
	return toDomainClient(&model), nil
}

// ExistsByEmail reports whether a client with the given email exists.
func (r *GormClientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ClientModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check client email: %w", err)
	}
	return count > 0, nil
}

// FindAll retrieves every client, most recent first.
func (r *GormClientRepository) FindAll(ctx context.Context) ([]*client.Client, error) {
	var models []ClientModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	list := make([]*client.Client, len(models))
	for i := range models {
		list[i] = toDomainClient(&models[i])
	}
	return list, nil
}

// Save persists a new client.
func (r *GormClientRepository) Save(ctx context.Context, c *client.Client) error {
	model := toClientModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

// Update persists changes to an existing client with optimistic locking.
func (r *GormClientRepository) Update(ctx context.Context, c *client.Client) error {
	model := toClientModel(c)

	expectedVersion := c.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&ClientModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"first_name": model.FirstName,
			"last_name":  model.LastName,
			"email":      model.Email,
			"phone":      model.Phone,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("client was modified by another transaction")
	}
	return nil
}

// Delete removes a client.
func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&ClientModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

// --- Conversion Helpers ---

func toClientModel(c *client.Client) *ClientModel {
	return &ClientModel{
		ID:        c.ID(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Version:   c.Version(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func toDomainClient(m *ClientModel) *client.Client {
	return client.Reconstruct(
		m.ID,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Phone,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
