package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
)

// Client is the aggregate root for a hotel guest profile.
type Client struct {
	id        uuid.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewClient creates a new client profile with validated fields. Email
// uniqueness is enforced at the service layer against the directory store.
func NewClient(firstName, lastName, email, phone string) (*Client, error) {
	if firstName == "" {
		return nil, domain.NewValidationError("first name is required")
	}
	if lastName == "" {
		return nil, domain.NewValidationError("last name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	if phone == "" {
		return nil, domain.NewValidationError("phone is required")
	}

	now := time.Now().UTC()
	return &Client{
		id:        uuid.New(),
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a Client from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	firstName, lastName, email, phone string,
	version int64,
	createdAt, updatedAt time.Time,
) *Client {
	return &Client{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// --- Getters ---

func (c *Client) ID() uuid.UUID        { return c.id }
func (c *Client) FirstName() string    { return c.firstName }
func (c *Client) LastName() string     { return c.lastName }
func (c *Client) Email() string        { return c.email }
func (c *Client) Phone() string        { return c.phone }
func (c *Client) Version() int64       { return c.version }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }

// Update applies partial updates to the profile. Empty fields are left
// unchanged.
func (c *Client) Update(firstName, lastName, email, phone string) {
	if firstName != "" {
		c.firstName = firstName
	}
	if lastName != "" {
		c.lastName = lastName
	}
	if email != "" {
		c.email = email
	}
	if phone != "" {
		c.phone = phone
	}
	c.version++
	c.updatedAt = time.Now().UTC()
}
