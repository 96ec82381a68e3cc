package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
	"github.com/Beausejour-Hotels/service-reservation/internal/domain/reservation"
)

// ReservationModel is the GORM model for the reservations table.
type ReservationModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID         uuid.UUID  `gorm:"type:uuid;index;not null"`
	RoomID           uuid.UUID  `gorm:"type:uuid;index;not null"`
	StartDate        time.Time  `gorm:"type:date;not null"`
	EndDate          time.Time  `gorm:"type:date;not null"`
	Status           string     `gorm:"not null;size:20;index"`
	PartySize        int        `gorm:"not null;default:1"`
	Preferences      string     `gorm:"size:2000"`
	Comments         string     `gorm:"size:500"`
	NightlyRateCents int64      `gorm:"not null"`
	TotalPriceCents  int64      `gorm:"not null"`
	ConfirmedAt      *time.Time `gorm:""`
	CancelledAt      *time.Time `gorm:""`
	CompletedAt      *time.Time `gorm:""`
	CancelNote       string     `gorm:"size:500"`
	Version          int64      `gorm:"not null;default:1"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ReservationModel) TableName() string {
	return "reservations"
}

// GormReservationRepository is the GORM-based implementation of
// reservation.Repository.
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GormReservationRepository.
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// FindByID retrieves a reservation by its unique identifier.
func (r *GormReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var model ReservationModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Reservation", id.String())
		}
		return nil, fmt.Errorf("failed to find reservation by ID: %w", err)
	}
	return toDomainReservation(&model)
}

// FindByClientID retrieves all reservations belonging to a client.
func (r *GormReservationRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*reservation.Reservation, error) {
	var models []ReservationModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("start_date DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find client reservations: %w", err)
	}
	return toDomainReservations(models)
}

// FindByRoomID retrieves all reservations against a room.
func (r *GormReservationRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*reservation.Reservation, error) {
	var models []ReservationModel
	if err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("start_date DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find room reservations: %w", err)
	}
	return toDomainReservations(models)
}

// FindLiveByRoomID retrieves the non-cancelled reservations of a room.
func (r *GormReservationRepository) FindLiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*reservation.Reservation, error) {
	var models []ReservationModel
	if err := r.db.WithContext(ctx).
		Where("room_id = ? AND status <> ?", roomID, string(reservation.StatusCancelled)).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find live room reservations: %w", err)
	}
	return toDomainReservations(models)
}

// FindByStatus retrieves all reservations in the given status.
func (r *GormReservationRepository) FindByStatus(ctx context.Context, status reservation.Status) ([]*reservation.Reservation, error) {
	var models []ReservationModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("start_date DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find reservations by status: %w", err)
	}
	return toDomainReservations(models)
}

// FindCurrentAndUpcoming retrieves live reservations whose stay has not
// ended before the given date, ordered by check-in date.
func (r *GormReservationRepository) FindCurrentAndUpcoming(ctx context.Context, date time.Time) ([]*reservation.Reservation, error) {
	var models []ReservationModel
	if err := r.db.WithContext(ctx).
		Where("end_date >= ? AND status <> ?", date, string(reservation.StatusCancelled)).
		Order("start_date ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find current and upcoming reservations: %w", err)
	}
	return toDomainReservations(models)
}

// FindByDateRange retrieves reservations whose stay falls entirely within
// [start, end], regardless of status.
func (r *GormReservationRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*reservation.Reservation, error) {
	var models []ReservationModel
	if err := r.db.WithContext(ctx).
		Where("start_date >= ? AND end_date <= ?", start, end).
		Order("start_date ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find reservations by date range: %w", err)
	}
	return toDomainReservations(models)
}

// ListAll retrieves all reservations with pagination.
func (r *GormReservationRepository) ListAll(ctx context.Context, page, limit int) ([]*reservation.Reservation, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&ReservationModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	var models []ReservationModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reservations: %w", err)
	}

	list, err := toDomainReservations(models)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// CountByStatus returns reservation counts grouped by status.
func (r *GormReservationRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var results []statusCount
	if err := r.db.WithContext(ctx).Model(&ReservationModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}

	counts := make(map[string]int64)
	for _, sc := range results {
		counts[sc.Status] = sc.Count
	}
	return counts, nil
}

// Save persists a new reservation.
func (r *GormReservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	model := toReservationModel(res)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save reservation: %w", err)
	}
	return nil
}

// Update persists changes to an existing reservation with optimistic locking.
func (r *GormReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	model := toReservationModel(res)

	// Only update if the version matches (current version - 1, since
	// IncrementVersion was called before persisting).
	expectedVersion := res.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&ReservationModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"client_id":          model.ClientID,
			"room_id":            model.RoomID,
			"start_date":         model.StartDate,
			"end_date":           model.EndDate,
			"status":             model.Status,
			"party_size":         model.PartySize,
			"preferences":        model.Preferences,
			"comments":           model.Comments,
			"nightly_rate_cents": model.NightlyRateCents,
			"total_price_cents":  model.TotalPriceCents,
			"confirmed_at":       model.ConfirmedAt,
			"cancelled_at":       model.CancelledAt,
			"completed_at":       model.CompletedAt,
			"cancel_note":        model.CancelNote,
			"version":            model.Version,
			"updated_at":         model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("reservation was modified by another transaction")
	}
	return nil
}

// Delete removes a reservation unconditionally.
func (r *GormReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&ReservationModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}

// DeleteByClientID removes all reservations of a client.
func (r *GormReservationRepository) DeleteByClientID(ctx context.Context, clientID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&ReservationModel{}, "client_id = ?", clientID).Error; err != nil {
		return fmt.Errorf("failed to delete client reservations: %w", err)
	}
	return nil
}

// --- Conversion Helpers ---

func toReservationModel(res *reservation.Reservation) *ReservationModel {
	return &ReservationModel{
		ID:               res.ID(),
		ClientID:         res.ClientID(),
		RoomID:           res.RoomID(),
		StartDate:        res.Period().Start(),
		EndDate:          res.Period().End(),
		Status:           string(res.Status()),
		PartySize:        res.PartySize(),
		Preferences:      res.Preferences(),
		Comments:         res.Comments(),
		NightlyRateCents: res.NightlyRateCents(),
		TotalPriceCents:  res.TotalPriceCents(),
		ConfirmedAt:      res.ConfirmedAt(),
		CancelledAt:      res.CancelledAt(),
		CompletedAt:      res.CompletedAt(),
		CancelNote:       res.CancelNote(),
		Version:          res.Version(),
		CreatedAt:        res.CreatedAt(),
		UpdatedAt:        res.UpdatedAt(),
	}
}

func toDomainReservation(m *ReservationModel) (*reservation.Reservation, error) {
	period, err := reservation.NewStayPeriod(m.StartDate, m.EndDate)
	if err != nil {
		return nil, fmt.Errorf("corrupt stay period on reservation %s: %w", m.ID, err)
	}

	status, err := reservation.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}

	return reservation.Reconstruct(
		m.ID,
		m.ClientID,
		m.RoomID,
		period,
		status,
		m.PartySize,
		m.Preferences,
		m.Comments,
		m.NightlyRateCents,
		m.TotalPriceCents,
		m.ConfirmedAt,
		m.CancelledAt,
		m.CompletedAt,
		m.CancelNote,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toDomainReservations(models []ReservationModel) ([]*reservation.Reservation, error) {
	list := make([]*reservation.Reservation, len(models))
	for i := range models {
		res, err := toDomainReservation(&models[i])
		if err != nil {
			return nil, err
		}
		list[i] = res
	}
	return list, nil
}
