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
	roomDomain "github.com/Beausejour-Hotels/service-reservation/internal/domain/room"
	"github.com/Beausejour-Hotels/service-reservation/internal/events"
	"github.com/Beausejour-Hotels/service-reservation/internal/kafka"
	"github.com/Beausejour-Hotels/service-reservation/internal/locking"
)

// EventPublisher publishes CloudEvents; satisfied by kafka.Producer.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}

// CreateReservationRequest holds the data needed to book a room.
type CreateReservationRequest struct {
	ClientID    uuid.UUID `json:"client_id" binding:"required"`
	RoomID      uuid.UUID `json:"room_id" binding:"required"`
	StartDate   string    `json:"start_date" binding:"required"`
	EndDate     string    `json:"end_date" binding:"required"`
	PartySize   int       `json:"party_size" binding:"required"`
	Preferences string    `json:"preferences"`
	Comments    string    `json:"comments"`
}

// AmendReservationRequest holds a partial update of an existing reservation.
// Nil fields are left unchanged.
type AmendReservationRequest struct {
	ClientID    *uuid.UUID `json:"client_id"`
	RoomID      *uuid.UUID `json:"room_id"`
	StartDate   *string    `json:"start_date"`
	EndDate     *string    `json:"end_date"`
	PartySize   *int       `json:"party_size"`
	Preferences *string    `json:"preferences"`
	Comments    *string    `json:"comments"`
}

// ReservationDTO is the response representation of a reservation.
type ReservationDTO struct {
	ID               uuid.UUID  `json:"id"`
	ClientID         uuid.UUID  `json:"client_id"`
	RoomID           uuid.UUID  `json:"room_id"`
	StartDate        string     `json:"start_date"`
	EndDate          string     `json:"end_date"`
	Status           string     `json:"status"`
	PartySize        int        `json:"party_size"`
	Preferences      string     `json:"preferences,omitempty"`
	Comments         string     `json:"comments,omitempty"`
	NightlyRateCents int64      `json:"nightly_rate_cents"`
	TotalPriceCents  int64      `json:"total_price_cents"`
	ConfirmedAt      *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CancelNote       string     `json:"cancel_note,omitempty"`
	Version          int64      `json:"version"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ReservationStatsDTO holds reservation counts for the admin dashboard.
type ReservationStatsDTO struct {
	TotalReservations int64            `json:"total_reservations"`
	ByStatus          map[string]int64 `json:"by_status"`
}

// ReservationService is the booking coordinator. It owns the whole
// check-then-write sequence: date validation, client and room resolution, the
// availability scan under the room's serialization lock, pricing, and the
// single persist per request.
type ReservationService struct {
	reservations reservation.Repository
	clients      clientDomain.Repository
	rooms        roomDomain.Repository
	pricing      reservation.PricingStrategy
	locker       locking.RoomLocker
	producer     EventPublisher
	logger       *zap.Logger
}

// NewReservationService creates a new ReservationService.
func NewReservationService(
	reservations reservation.Repository,
	clients clientDomain.Repository,
	rooms roomDomain.Repository,
	pricing reservation.PricingStrategy,
	locker locking.RoomLocker,
	producer EventPublisher,
	logger *zap.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		clients:      clients,
		rooms:        rooms,
		pricing:      pricing,
		locker:       locker,
		producer:     producer,
		logger:       logger,
	}
}

// CreateReservation books a room for a client. Validation is fail-fast in a
// fixed order: date range, past dates, client existence, room existence, then
// availability. The availability scan and the insert run inside the room's
// critical section so two overlapping requests for the same room can never
// both succeed.
func (s *ReservationService) CreateReservation(ctx context.Context, req CreateReservationRequest) (*ReservationDTO, error) {
	period, err := reservation.ParseStayPeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if period.StartsBefore(reservation.Today()) {
		return nil, domain.NewPastDateRangeError(period.Start())
	}

	if _, err := s.clients.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}
	rm, err := s.rooms.FindByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	release, err := s.locker.Acquire(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := s.reservations.FindLiveByRoomID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load room reservations: %w", err)
	}
	if !reservation.IsAvailable(existing, period, uuid.Nil) {
		return nil, domain.NewRoomUnavailableError(req.RoomID.String(), period.Start(), period.End())
	}

	total, err := s.pricing.Quote(rm.RateCents(), period)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("pricing error: %v", err))
	}

	res, err := reservation.NewReservation(
		req.ClientID,
		req.RoomID,
		period,
		req.PartySize,
		req.Preferences,
		req.Comments,
		rm.RateCents(),
		total,
	)
	if err != nil {
		return nil, err
	}

	if err := s.reservations.Save(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to save reservation: %w", err)
	}
	release()

	s.publishEvent(ctx, events.ReservationCreated, res.ID().String(), events.ReservationCreatedEvent{
		ReservationID:   res.ID(),
		ClientID:        res.ClientID(),
		RoomID:          res.RoomID(),
		StartDate:       res.Period().Start().Format(reservation.DateLayout),
		EndDate:         res.Period().End().Format(reservation.DateLayout),
		TotalPriceCents: res.TotalPriceCents(),
		OccurredAt:      time.Now().UTC(),
	})

	result := toReservationDTO(res)
	return &result, nil
}

// AmendReservation applies a partial update to an existing reservation.
// When the room or the dates change, availability is re-checked excluding the
// reservation's own footprint and the stay is repriced at the target room's
// current rate. Detail-only amendments (party size, preferences, comments)
// skip the availability index and keep the stored price untouched.
func (s *ReservationService) AmendReservation(ctx context.Context, id uuid.UUID, req AmendReservationRequest) (*ReservationDTO, error) {
	res, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	period := res.Period()
	datesChanged := false
	if req.StartDate != nil || req.EndDate != nil {
		start := period.Start().Format(reservation.DateLayout)
		end := period.End().Format(reservation.DateLayout)
		if req.StartDate != nil {
			start = *req.StartDate
		}
		if req.EndDate != nil {
			end = *req.EndDate
		}
		newPeriod, err := reservation.ParseStayPeriod(start, end)
		if err != nil {
			return nil, err
		}
		datesChanged = !newPeriod.Equal(period)
		if datesChanged && newPeriod.StartsBefore(reservation.Today()) {
			return nil, domain.NewPastDateRangeError(newPeriod.Start())
		}
		period = newPeriod
	}

	roomID := res.RoomID()
	roomChanged := req.RoomID != nil && *req.RoomID != roomID
	if roomChanged {
		roomID = *req.RoomID
	}

	if req.ClientID != nil && *req.ClientID != res.ClientID() {
		if _, err := s.clients.FindByID(ctx, *req.ClientID); err != nil {
			return nil, err
		}
		if err := res.ReassignClient(*req.ClientID); err != nil {
			return nil, err
		}
	}

	repriced := false
	if roomChanged || datesChanged {
		rm, err := s.rooms.FindByID(ctx, roomID)
		if err != nil {
			return nil, err
		}

		release, err := s.locker.Acquire(ctx, roomID)
		if err != nil {
			return nil, err
		}
		defer release()

		existing, err := s.reservations.FindLiveByRoomID(ctx, roomID)
		if err != nil {
			return nil, fmt.Errorf("failed to load room reservations: %w", err)
		}
		if !reservation.IsAvailable(existing, period, res.ID()) {
			return nil, domain.NewRoomUnavailableError(roomID.String(), period.Start(), period.End())
		}

		total, err := s.pricing.Quote(rm.RateCents(), period)
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("pricing error: %v", err))
		}
		if err := res.Reschedule(roomID, period, rm.RateCents(), total); err != nil {
			return nil, err
		}
		repriced = true

		if err := s.applyDetails(res, req); err != nil {
			return nil, err
		}
		res.IncrementVersion()
		if err := s.reservations.Update(ctx, res); err != nil {
			return nil, err
		}
	} else {
		if err := s.applyDetails(res, req); err != nil {
			return nil, err
		}
		res.IncrementVersion()
		if err := s.reservations.Update(ctx, res); err != nil {
			return nil, err
		}
	}

	s.publishEvent(ctx, events.ReservationAmended, res.ID().String(), events.ReservationAmendedEvent{
		ReservationID:   res.ID(),
		ClientID:        res.ClientID(),
		RoomID:          res.RoomID(),
		StartDate:       res.Period().Start().Format(reservation.DateLayout),
		EndDate:         res.Period().End().Format(reservation.DateLayout),
		TotalPriceCents: res.TotalPriceCents(),
		Repriced:        repriced,
		OccurredAt:      time.Now().UTC(),
	})

	result := toReservationDTO(res)
	return &result, nil
}

func (s *ReservationService) applyDetails(res *reservation.Reservation, req AmendReservationRequest) error {
	if req.PartySize == nil && req.Preferences == nil && req.Comments == nil {
		return nil
	}
	partySize := res.PartySize()
	preferences := res.Preferences()
	comments := res.Comments()
	if req.PartySize != nil {
		partySize = *req.PartySize
	}
	if req.Preferences != nil {
		preferences = *req.Preferences
	}
	if req.Comments != nil {
		comments = *req.Comments
	}
	return res.UpdateDetails(partySize, preferences, comments)
}

// ChangeStatus applies a guarded lifecycle transition.
func (s *ReservationService) ChangeStatus(ctx context.Context, id uuid.UUID, target string) (*ReservationDTO, error) {
	status, err := reservation.ParseStatus(target)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	res, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := res.Status()
	if err := res.ChangeStatus(status); err != nil {
		return nil, err
	}

	res.IncrementVersion()
	if err := s.reservations.Update(ctx, res); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.ReservationStatusChanged, res.ID().String(), events.ReservationStatusChangedEvent{
		ReservationID: res.ID(),
		From:          string(from),
		To:            string(status),
		OccurredAt:    time.Now().UTC(),
	})

	result := toReservationDTO(res)
	return &result, nil
}

// CancelReservation cancels a reservation, releasing its dates for other
// bookings immediately.
func (s *ReservationService) CancelReservation(ctx context.Context, id uuid.UUID, reason string) (*ReservationDTO, error) {
	res, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := res.Cancel(reason); err != nil {
		return nil, err
	}

	res.IncrementVersion()
	if err := s.reservations.Update(ctx, res); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.ReservationCancelled, res.ID().String(), events.ReservationCancelledEvent{
		ReservationID: res.ID(),
		RoomID:        res.RoomID(),
		Reason:        reason,
		OccurredAt:    time.Now().UTC(),
	})

	result := toReservationDTO(res)
	return &result, nil
}

// DeleteReservation removes a reservation unconditionally. This is an
// administrative override outside the lifecycle, not the cancellation flow.
func (s *ReservationService) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	if _, err := s.reservations.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.reservations.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.publishEvent(ctx, events.ReservationDeleted, id.String(), events.ReservationDeletedEvent{
		ReservationID: id,
		OccurredAt:    time.Now().UTC(),
	})
	return nil
}

// ApplyCheckIn confirms a reservation in response to a recorded front-desk
// check-in.
func (s *ReservationService) ApplyCheckIn(ctx context.Context, id uuid.UUID) error {
	_, err := s.ChangeStatus(ctx, id, string(reservation.StatusConfirmed))
	return err
}

// ApplyCheckOut completes a reservation in response to a recorded front-desk
// check-out.
func (s *ReservationService) ApplyCheckOut(ctx context.Context, id uuid.UUID) error {
	_, err := s.ChangeStatus(ctx, id, string(reservation.StatusCompleted))
	return err
}

// GetReservation retrieves a single reservation by ID.
func (s *ReservationService) GetReservation(ctx context.Context, id uuid.UUID) (*ReservationDTO, error) {
	res, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toReservationDTO(res)
	return &result, nil
}

// CheckAvailability reports whether the room is free for the given dates.
// This is the display-oriented read path: it runs lock-free against the
// current snapshot and takes no part in the booking serialization.
func (s *ReservationService) CheckAvailability(ctx context.Context, roomID uuid.UUID, startDate, endDate string) (bool, error) {
	period, err := reservation.ParseStayPeriod(startDate, endDate)
	if err != nil {
		return false, err
	}
	if _, err := s.rooms.FindByID(ctx, roomID); err != nil {
		return false, err
	}

	existing, err := s.reservations.FindLiveByRoomID(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("failed to load room reservations: %w", err)
	}
	return reservation.IsAvailable(existing, period, uuid.Nil), nil
}

// ListForClient retrieves all reservations belonging to a client.
func (s *ReservationService) ListForClient(ctx context.Context, clientID uuid.UUID) ([]ReservationDTO, error) {
	list, err := s.reservations.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toReservationDTOs(list), nil
}

// ListForRoom retrieves all reservations against a room.
func (s *ReservationService) ListForRoom(ctx context.Context, roomID uuid.UUID) ([]ReservationDTO, error) {
	list, err := s.reservations.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return toReservationDTOs(list), nil
}

// ListByStatus retrieves all reservations in the given status.
func (s *ReservationService) ListByStatus(ctx context.Context, status string) ([]ReservationDTO, error) {
	st, err := reservation.ParseStatus(status)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	list, err := s.reservations.FindByStatus(ctx, st)
	if err != nil {
		return nil, err
	}
	return toReservationDTOs(list), nil
}

// ListByDateRange retrieves reservations whose stay falls entirely within
// the given dates, regardless of status.
func (s *ReservationService) ListByDateRange(ctx context.Context, startDate, endDate string) ([]ReservationDTO, error) {
	period, err := reservation.ParseStayPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}
	list, err := s.reservations.FindByDateRange(ctx, period.Start(), period.End())
	if err != nil {
		return nil, err
	}
	return toReservationDTOs(list), nil
}

// ListCurrentAndUpcoming retrieves live reservations whose stay has not yet
// ended, ordered by check-in date.
func (s *ReservationService) ListCurrentAndUpcoming(ctx context.Context) ([]ReservationDTO, error) {
	list, err := s.reservations.FindCurrentAndUpcoming(ctx, reservation.Today())
	if err != nil {
		return nil, err
	}
	return toReservationDTOs(list), nil
}

// ListAllReservations returns a paginated list of all reservations (admin).
func (s *ReservationService) ListAllReservations(ctx context.Context, page, limit int) (*domain.PaginatedResult[ReservationDTO], error) {
	list, total, err := s.reservations.ListAll(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	result := domain.NewPaginatedResult(toReservationDTOs(list), total, page, limit)
	return &result, nil
}

// GetReservationStats returns aggregate reservation counts (admin).
func (s *ReservationService) GetReservationStats(ctx context.Context) (*ReservationStatsDTO, error) {
	counts, err := s.reservations.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation stats: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return &ReservationStatsDTO{TotalReservations: total, ByStatus: counts}, nil
}

// --- Helpers ---

func toReservationDTO(res *reservation.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:               res.ID(),
		ClientID:         res.ClientID(),
		RoomID:           res.RoomID(),
		StartDate:        res.Period().Start().Format(reservation.DateLayout),
		EndDate:          res.Period().End().Format(reservation.DateLayout),
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

func toReservationDTOs(list []*reservation.Reservation) []ReservationDTO {
	dtos := make([]ReservationDTO, len(list))
	for i, res := range list {
		dtos[i] = toReservationDTO(res)
	}
	return dtos
}

func (s *ReservationService) publishEvent(ctx context.Context, eventType, key string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent("service-reservation", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishEvent(ctx, events.TopicReservationEvents, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
