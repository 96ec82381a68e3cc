package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
	clientDomain "github.com/Beausejour-Hotels/service-reservation/internal/domain/client"
	"github.com/Beausejour-Hotels/service-reservation/internal/domain/reservation"
	roomDomain "github.com/Beausejour-Hotels/service-reservation/internal/domain/room"
	"github.com/Beausejour-Hotels/service-reservation/internal/kafka"
	"github.com/Beausejour-Hotels/service-reservation/internal/locking"
)

// --- In-memory fakes ---

type fakeReservationRepo struct {
	mu            sync.Mutex
	items         map[uuid.UUID]*reservation.Reservation
	liveScanCount int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{items: make(map[uuid.UUID]*reservation.Reservation)}
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.items[id]
	if !ok {
		return nil, domain.NewNotFoundError("Reservation", id.String())
	}
	return res, nil
}

func (f *fakeReservationRepo) FindByClientID(_ context.Context, clientID uuid.UUID) ([]*reservation.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*reservation.Reservation
	for _, res := range f.items {
		if res.ClientID() == clientID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindByRoomID(_ context.Context, roomID uuid.UUID) ([]*reservation.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*reservation.Reservation
	for _, res := range f.items {
		if res.RoomID() == roomID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindLiveByRoomID(_ context.Context, roomID uuid.UUID) ([]*reservation.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.liveScanCount++
	var out []*reservation.Reservation
	for _, res := range f.items {
		if res.RoomID() == roomID && res.Status().IsLive() {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindByStatus(_ context.Context, status reservation.Status) ([]*reservation.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*reservation.Reservation
	for _, res := range f.items {
		if res.Status() == status {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindCurrentAndUpcoming(_ context.Context, date time.Time) ([]*reservation.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*reservation.Reservation
	for _, res := range f.items {
		if res.Status().IsLive() && !res.Period().EndsBefore(date) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindByDateRange(_ context.Context, start, end time.Time) ([]*reservation.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*reservation.Reservation
	for _, res := range f.items {
		if !res.Period().Start().Before(start) && !res.Period().End().After(end) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListAll(_ context.Context, page, limit int) ([]*reservation.Reservation, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*reservation.Reservation
	for _, res := range f.items {
		out = append(out, res)
	}
	return out, int64(len(out)), nil
}

func (f *fakeReservationRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int64)
	for _, res := range f.items {
		counts[string(res.Status())]++
	}
	return counts, nil
}

func (f *fakeReservationRepo) Save(_ context.Context, res *reservation.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[res.ID()] = res
	return nil
}

func (f *fakeReservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[res.ID()]; !ok {
		return domain.NewNotFoundError("Reservation", res.ID().String())
	}
	f.items[res.ID()] = res
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

func (f *fakeReservationRepo) DeleteByClientID(_ context.Context, clientID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, res := range f.items {
		if res.ClientID() == clientID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeReservationRepo) scanCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.liveScanCount
}

type fakeClientRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*clientDomain.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{items: make(map[uuid.UUID]*clientDomain.Client)}
}

func (f *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*clientDomain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.items[id]
	if !ok {
		return nil, domain.NewNotFoundError("Client", id.String())
	}
	return c, nil
}

func (f *fakeClientRepo) FindByEmail(_ context.Context, email string) (*clientDomain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.items {
		if c.Email() == email {
			return c, nil
		}
	}
	return nil, domain.NewNotFoundError("Client", email)
}

func (f *fakeClientRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.items {
		if c.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClientRepo) FindAll(_ context.Context) ([]*clientDomain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*clientDomain.Client
	for _, c := range f.items {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClientRepo) Save(_ context.Context, c *clientDomain.Client) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[c.ID()] = c
	return nil
}

func (f *fakeClientRepo) Update(_ context.Context, c *clientDomain.Client) error {
	return f.Save(context.Background(), c)
}

func (f *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

type fakeRoomRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*roomDomain.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{items: make(map[uuid.UUID]*roomDomain.Room)}
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*roomDomain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rm, ok := f.items[id]
	if !ok {
		return nil, domain.NewNotFoundError("Room", id.String())
	}
	return rm, nil
}

func (f *fakeRoomRepo) FindByNumber(_ context.Context, number string) (*roomDomain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rm := range f.items {
		if rm.Number() == number {
			return rm, nil
		}
	}
	return nil, domain.NewNotFoundError("Room", number)
}

func (f *fakeRoomRepo) ExistsByNumber(_ context.Context, number string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rm := range f.items {
		if rm.Number() == number {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoomRepo) FindAll(_ context.Context) ([]*roomDomain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*roomDomain.Room
	for _, rm := range f.items {
		out = append(out, rm)
	}
	return out, nil
}

func (f *fakeRoomRepo) FindAvailable(_ context.Context) ([]*roomDomain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*roomDomain.Room
	for _, rm := range f.items {
		if rm.Available() {
			out = append(out, rm)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) FindByType(_ context.Context, roomType roomDomain.Type) ([]*roomDomain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*roomDomain.Room
	for _, rm := range f.items {
		if rm.RoomType() == roomType {
			out = append(out, rm)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) Save(_ context.Context, rm *roomDomain.Room) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[rm.ID()] = rm
	return nil
}

func (f *fakeRoomRepo) Update(_ context.Context, rm *roomDomain.Room) error {
	return f.Save(context.Background(), rm)
}

func (f *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []kafka.CloudEvent
}

func (f *fakePublisher) PublishEvent(_ context.Context, _ string, event kafka.CloudEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) eventTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, len(f.events))
	for i, e := range f.events {
		types[i] = e.Type
	}
	return types
}

// --- Test fixture ---

type serviceFixture struct {
	service      *ReservationService
	reservations *fakeReservationRepo
	clients      *fakeClientRepo
	rooms        *fakeRoomRepo
	publisher    *fakePublisher
	clientID     uuid.UUID
	roomID       uuid.UUID
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	reservations := newFakeReservationRepo()
	clients := newFakeClientRepo()
	rooms := newFakeRoomRepo()
	publisher := &fakePublisher{}

	c, err := clientDomain.NewClient("Marie", "Dubois", "marie.dubois@example.com", "+33612345678")
	require.NoError(t, err)
	require.NoError(t, clients.Save(context.Background(), c))

	rm, err := roomDomain.NewRoom("101", roomDomain.TypeDouble, 10000, 2, "garden view", nil)
	require.NoError(t, err)
	require.NoError(t, rooms.Save(context.Background(), rm))

	service := NewReservationService(
		reservations,
		clients,
		rooms,
		reservation.NewNightlyRatePricing(),
		locking.NewKeyedRoomLocker(2*time.Second),
		publisher,
		zap.NewNop(),
	)

	return &serviceFixture{
		service:      service,
		reservations: reservations,
		clients:      clients,
		rooms:        rooms,
		publisher:    publisher,
		clientID:     c.ID(),
		roomID:       rm.ID(),
	}
}

func (fx *serviceFixture) createRequest(start, end string) CreateReservationRequest {
	return CreateReservationRequest{
		ClientID:  fx.clientID,
		RoomID:    fx.roomID,
		StartDate: start,
		EndDate:   end,
		PartySize: 2,
	}
}

// --- Tests ---

func TestCreateReservation(t *testing.T) {
	fx := newServiceFixture(t)

	dto, err := fx.service.CreateReservation(context.Background(), fx.createRequest("2030-06-10", "2030-06-13"))
	require.NoError(t, err)

	assert.Equal(t, "pending", dto.Status)
	assert.Equal(t, int64(10000), dto.NightlyRateCents)
	assert.Equal(t, int64(30000), dto.TotalPriceCents, "3 nights at 100.00")
	assert.Equal(t, []string{"reservation.created"}, fx.publisher.eventTypes())
}

func TestCreateReservation_InvalidDateRangeFirst(t *testing.T) {
	fx := newServiceFixture(t)

	// Everything else is wrong too, but the date range must win.
	req := CreateReservationRequest{
		ClientID:  uuid.New(), // unknown client
		RoomID:    uuid.New(), // unknown room
		StartDate: "2030-06-13",
		EndDate:   "2030-06-10",
		PartySize: 2,
	}
	_, err := fx.service.CreateReservation(context.Background(), req)

	var invalidRange *domain.InvalidDateRangeError
	assert.ErrorAs(t, err, &invalidRange)
}

func TestCreateReservation_PastDateBeforeExistenceChecks(t *testing.T) {
	fx := newServiceFixture(t)

	req := CreateReservationRequest{
		ClientID:  uuid.New(), // unknown client would also fail, but later
		RoomID:    fx.roomID,
		StartDate: "2001-06-10",
		EndDate:   "2001-06-13",
		PartySize: 2,
	}
	_, err := fx.service.CreateReservation(context.Background(), req)

	var pastRange *domain.PastDateRangeError
	assert.ErrorAs(t, err, &pastRange)
}

func TestCreateReservation_ClientNotFoundBeforeRoom(t *testing.T) {
	fx := newServiceFixture(t)

	req := fx.createRequest("2030-06-10", "2030-06-13")
	req.ClientID = uuid.New()
	req.RoomID = uuid.New() // also unknown

	_, err := fx.service.CreateReservation(context.Background(), req)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Client", notFound.Entity)
}

func TestCreateReservation_RoomNotFound(t *testing.T) {
	fx := newServiceFixture(t)

	req := fx.createRequest("2030-06-10", "2030-06-13")
	req.RoomID = uuid.New()

	_, err := fx.service.CreateReservation(context.Background(), req)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Room", notFound.Entity)
}

func TestCreateReservation_OverlapConflict(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	_, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-15"))
	require.NoError(t, err)

	// Back-to-back stay sharing the checkout day still conflicts.
	_, err = fx.service.CreateReservation(ctx, fx.createRequest("2030-06-15", "2030-06-20"))
	var unavailable *domain.RoomUnavailableError
	assert.ErrorAs(t, err, &unavailable)

	// The day after is free.
	_, err = fx.service.CreateReservation(ctx, fx.createRequest("2030-06-16", "2030-06-20"))
	assert.NoError(t, err)
}

func TestCreateReservation_CancellationFreesDates(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	first, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-15"))
	require.NoError(t, err)

	_, err = fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-15"))
	require.Error(t, err)

	_, err = fx.service.CancelReservation(ctx, first.ID, "guest request")
	require.NoError(t, err)

	_, err = fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-15"))
	assert.NoError(t, err, "cancelled reservations must not block the room")
}

func TestCreateReservation_RateChangeDoesNotRepriceExisting(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	dto, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-13"))
	require.NoError(t, err)
	require.Equal(t, int64(30000), dto.TotalPriceCents)

	// Double the room's rate.
	rm, err := fx.rooms.FindByID(ctx, fx.roomID)
	require.NoError(t, err)
	require.NoError(t, rm.ChangeRate(20000))
	require.NoError(t, fx.rooms.Update(ctx, rm))

	// The stored reservation keeps its snapshot.
	got, err := fx.service.GetReservation(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), got.NightlyRateCents)
	assert.Equal(t, int64(30000), got.TotalPriceCents)
}

func TestCreateReservation_ExactlyOneWinsUnderContention(t *testing.T) {
	fx := newServiceFixture(t)

	const attempts = 10
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = fx.service.CreateReservation(context.Background(), fx.createRequest("2030-06-10", "2030-06-15"))
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var unavailable *domain.RoomUnavailableError
		var timeout *domain.ConcurrencyTimeoutError
		assert.True(t, errors.As(err, &unavailable) || errors.As(err, &timeout),
			"unexpected error: %v", err)
	}
	assert.Equal(t, 1, successes, "exactly one overlapping booking may succeed")
}

func TestCreateReservation_DifferentRoomsDoNotInterfere(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	rm2, err := roomDomain.NewRoom("102", roomDomain.TypeSingle, 8000, 1, "", nil)
	require.NoError(t, err)
	require.NoError(t, fx.rooms.Save(ctx, rm2))

	_, err = fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-15"))
	require.NoError(t, err)

	req := fx.createRequest("2030-06-10", "2030-06-15")
	req.RoomID = rm2.ID()
	req.PartySize = 1
	dto, err := fx.service.CreateReservation(ctx, req)
	require.NoError(t, err, "another room with the same dates must not conflict")
	assert.Equal(t, int64(8000*5), dto.TotalPriceCents)
}

func TestAmendReservation_ExcludesOwnFootprint(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	dto, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-15"))
	require.NoError(t, err)

	// Shift by one day over its own dates.
	start, end := "2030-06-11", "2030-06-16"
	amended, err := fx.service.AmendReservation(ctx, dto.ID, AmendReservationRequest{
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err, "a reservation must not conflict with itself")
	assert.Equal(t, "2030-06-11", amended.StartDate)
	assert.Equal(t, "2030-06-16", amended.EndDate)
}

func TestAmendReservation_RepricesAtCurrentRate(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	dto, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-13"))
	require.NoError(t, err)
	require.Equal(t, int64(30000), dto.TotalPriceCents)

	rm, err := fx.rooms.FindByID(ctx, fx.roomID)
	require.NoError(t, err)
	require.NoError(t, rm.ChangeRate(20000))
	require.NoError(t, fx.rooms.Update(ctx, rm))

	end := "2030-06-14"
	amended, err := fx.service.AmendReservation(ctx, dto.ID, AmendReservationRequest{EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, int64(20000), amended.NightlyRateCents, "date change reprices at the current rate")
	assert.Equal(t, int64(80000), amended.TotalPriceCents, "4 nights at 200.00")
}

func TestAmendReservation_DetailOnlySkipsAvailabilityAndPrice(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	dto, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-13"))
	require.NoError(t, err)

	scansBefore := fx.reservations.scanCount()

	comments := "anniversary stay"
	partySize := 1
	amended, err := fx.service.AmendReservation(ctx, dto.ID, AmendReservationRequest{
		Comments:  &comments,
		PartySize: &partySize,
	})
	require.NoError(t, err)

	assert.Equal(t, scansBefore, fx.reservations.scanCount(), "detail-only amendment must not hit the availability index")
	assert.Equal(t, int64(30000), amended.TotalPriceCents, "detail-only amendment must not reprice")
	assert.Equal(t, "anniversary stay", amended.Comments)
	assert.Equal(t, 1, amended.PartySize)
}

func TestAmendReservation_TerminalRejected(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	dto, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-13"))
	require.NoError(t, err)
	_, err = fx.service.CancelReservation(ctx, dto.ID, "")
	require.NoError(t, err)

	end := "2030-06-14"
	_, err = fx.service.AmendReservation(ctx, dto.ID, AmendReservationRequest{EndDate: &end})
	var transition *domain.InvalidTransitionError
	assert.ErrorAs(t, err, &transition)
}

func TestChangeStatus(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	dto, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-13"))
	require.NoError(t, err)

	confirmed, err := fx.service.ChangeStatus(ctx, dto.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)

	completed, err := fx.service.ChangeStatus(ctx, dto.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
}

func TestChangeStatus_InvalidTransition(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	dto, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-13"))
	require.NoError(t, err)

	_, err = fx.service.ChangeStatus(ctx, dto.ID, "completed")
	var transition *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transition)

	// State unchanged after the rejected transition.
	got, err := fx.service.GetReservation(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
}

func TestChangeStatus_UnknownStatus(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	dto, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-13"))
	require.NoError(t, err)

	_, err = fx.service.ChangeStatus(ctx, dto.ID, "checked_in")
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestCheckAvailability(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	available, err := fx.service.CheckAvailability(ctx, fx.roomID, "2030-06-10", "2030-06-15")
	require.NoError(t, err)
	assert.True(t, available)

	_, err = fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-15"))
	require.NoError(t, err)

	available, err = fx.service.CheckAvailability(ctx, fx.roomID, "2030-06-12", "2030-06-14")
	require.NoError(t, err)
	assert.False(t, available)
}

func TestDeleteReservation(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	dto, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-13"))
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteReservation(ctx, dto.ID))

	_, err = fx.service.GetReservation(ctx, dto.ID)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteReservation_NotFound(t *testing.T) {
	fx := newServiceFixture(t)

	err := fx.service.DeleteReservation(context.Background(), uuid.New())
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestListByStatus_UnknownStatus(t *testing.T) {
	fx := newServiceFixture(t)

	_, err := fx.service.ListByStatus(context.Background(), "bogus")
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestListByDateRange(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	inside, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-13"))
	require.NoError(t, err)

	// Straddles the end of the range, so it is not contained.
	_, err = fx.service.CreateReservation(ctx, fx.createRequest("2030-06-25", "2030-07-02"))
	require.NoError(t, err)

	// Cancelled stays still show up: the range listing is status-blind.
	cancelled, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-15", "2030-06-18"))
	require.NoError(t, err)
	_, err = fx.service.CancelReservation(ctx, cancelled.ID, "")
	require.NoError(t, err)

	list, err := fx.service.ListByDateRange(ctx, "2030-06-01", "2030-06-30")
	require.NoError(t, err)
	require.Len(t, list, 2)
	ids := []string{list[0].ID.String(), list[1].ID.String()}
	assert.Contains(t, ids, inside.ID.String())
	assert.Contains(t, ids, cancelled.ID.String())
}

func TestListByDateRange_InvalidRange(t *testing.T) {
	fx := newServiceFixture(t)

	_, err := fx.service.ListByDateRange(context.Background(), "2030-06-30", "2030-06-01")
	var invalid *domain.InvalidDateRangeError
	assert.ErrorAs(t, err, &invalid)
}

func TestListCurrentAndUpcoming_ExcludesCancelled(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	kept, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-06-10", "2030-06-13"))
	require.NoError(t, err)

	cancelled, err := fx.service.CreateReservation(ctx, fx.createRequest("2030-07-01", "2030-07-05"))
	require.NoError(t, err)
	_, err = fx.service.CancelReservation(ctx, cancelled.ID, "")
	require.NoError(t, err)

	list, err := fx.service.ListCurrentAndUpcoming(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, kept.ID, list[0].ID)
}
