package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
	clientDomain "github.com/Beausejour-Hotels/service-reservation/internal/domain/client"
	"github.com/Beausejour-Hotels/service-reservation/internal/domain/reservation"
)

// CreateClientRequest is the request DTO for registering a client.
type CreateClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
}

// UpdateClientRequest is the request DTO for editing a client profile.
// Empty fields are left unchanged.
type UpdateClientRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ClientDTO is the API response representation of a client.
type ClientDTO struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientService manages the guest directory.
type ClientService struct {
	clients      clientDomain.Repository
	reservations reservation.Repository
	logger       *zap.Logger
}

// NewClientService creates a new ClientService.
func NewClientService(clients clientDomain.Repository, reservations reservation.Repository, logger *zap.Logger) *ClientService {
	return &ClientService{clients: clients, reservations: reservations, logger: logger}
}

// CreateClient registers a new client. Email must be unique.
func (s *ClientService) CreateClient(ctx context.Context, req CreateClientRequest) (*ClientDTO, error) {
	exists, err := s.clients.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if exists {
		return nil, domain.NewDuplicateError("Client", "email", req.Email)
	}

	c, err := clientDomain.NewClient(req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.clients.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	result := toClientDTO(c)
	return &result, nil
}

// GetClient retrieves a client by ID.
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*ClientDTO, error) {
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toClientDTO(c)
	return &result, nil
}

// GetClientByEmail retrieves a client by email.
func (s *ClientService) GetClientByEmail(ctx context.Context, email string) (*ClientDTO, error) {
	c, err := s.clients.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	result := toClientDTO(c)
	return &result, nil
}

// ListClients retrieves all clients.
func (s *ClientService) ListClients(ctx context.Context) ([]ClientDTO, error) {
	list, err := s.clients.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	dtos := make([]ClientDTO, len(list))
	for i, c := range list {
		dtos[i] = toClientDTO(c)
	}
	return dtos, nil
}

// UpdateClient applies a partial profile edit. A changed email must remain
// unique.
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (*ClientDTO, error) {
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != c.Email() {
		exists, err := s.clients.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if exists {
			return nil, domain.NewDuplicateError("Client", "email", req.Email)
		}
	}

	c.Update(req.FirstName, req.LastName, req.Email, req.Phone)
	if err := s.clients.Update(ctx, c); err != nil {
		return nil, err
	}

	result := toClientDTO(c)
	return &result, nil
}

// DeleteClient removes a client and cascades to its reservations.
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if _, err := s.clients.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.reservations.DeleteByClientID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client reservations: %w", err)
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	s.logger.Info("client deleted", zap.String("client_id", id.String()))
	return nil
}

func toClientDTO(c *clientDomain.Client) ClientDTO {
	return ClientDTO{
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
