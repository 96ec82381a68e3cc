package reservation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
)

func newTestReservation(t *testing.T, start, end string) *Reservation {
	t.Helper()
	period := mustPeriod(t, start, end)
	res, err := NewReservation(uuid.New(), uuid.New(), period, 2, "", "", 10000, 10000*period.Nights())
	require.NoError(t, err)
	return res
}

func TestNewReservation(t *testing.T) {
	res := newTestReservation(t, "2030-01-10", "2030-01-13")

	assert.Equal(t, StatusPending, res.Status())
	assert.Equal(t, int64(30000), res.TotalPriceCents())
	assert.Equal(t, int64(1), res.Version())
	assert.Nil(t, res.ConfirmedAt())
}

func TestNewReservation_Validation(t *testing.T) {
	period := mustPeriod(t, "2030-01-10", "2030-01-13")

	_, err := NewReservation(uuid.Nil, uuid.New(), period, 2, "", "", 10000, 30000)
	assert.Error(t, err)

	_, err = NewReservation(uuid.New(), uuid.Nil, period, 2, "", "", 10000, 30000)
	assert.Error(t, err)

	_, err = NewReservation(uuid.New(), uuid.New(), period, 0, "", "", 10000, 30000)
	assert.Error(t, err)

	_, err = NewReservation(uuid.New(), uuid.New(), period, 2, "", "", 0, 0)
	assert.Error(t, err)
}

func TestChangeStatus_ValidPath(t *testing.T) {
	res := newTestReservation(t, "2030-01-10", "2030-01-13")

	require.NoError(t, res.Confirm())
	assert.Equal(t, StatusConfirmed, res.Status())
	assert.NotNil(t, res.ConfirmedAt())

	require.NoError(t, res.Complete())
	assert.Equal(t, StatusCompleted, res.Status())
	assert.NotNil(t, res.CompletedAt())
}

func TestChangeStatus_InvalidTransition(t *testing.T) {
	res := newTestReservation(t, "2030-01-10", "2030-01-13")

	// pending -> completed skips confirmation
	err := res.Complete()
	require.Error(t, err)

	var transition *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, StatusPending, res.Status(), "failed transition must not change state")
}

func TestCancelledIsAbsorbing(t *testing.T) {
	res := newTestReservation(t, "2030-01-10", "2030-01-13")
	require.NoError(t, res.Cancel("change of plans"))

	assert.Equal(t, StatusCancelled, res.Status())
	assert.Equal(t, "change of plans", res.CancelNote())
	assert.NotNil(t, res.CancelledAt())

	var transition *domain.InvalidTransitionError
	assert.ErrorAs(t, res.Confirm(), &transition)
	assert.ErrorAs(t, res.Complete(), &transition)
	assert.ErrorAs(t, res.Cancel("again"), &transition)
}

func TestReschedule(t *testing.T) {
	res := newTestReservation(t, "2030-01-10", "2030-01-13")
	newRoom := uuid.New()
	newPeriod := mustPeriod(t, "2030-02-01", "2030-02-05")

	require.NoError(t, res.Reschedule(newRoom, newPeriod, 15000, 60000))

	assert.Equal(t, newRoom, res.RoomID())
	assert.True(t, res.Period().Equal(newPeriod))
	assert.Equal(t, int64(15000), res.NightlyRateCents())
	assert.Equal(t, int64(60000), res.TotalPriceCents())
}

func TestReschedule_TerminalRejected(t *testing.T) {
	res := newTestReservation(t, "2030-01-10", "2030-01-13")
	require.NoError(t, res.Cancel(""))

	err := res.Reschedule(uuid.New(), mustPeriod(t, "2030-02-01", "2030-02-05"), 15000, 60000)
	var invalid *domain.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "cancelled", invalid.From)
}

func TestUpdateDetails_TerminalRejected(t *testing.T) {
	res := newTestReservation(t, "2030-01-10", "2030-01-13")
	require.NoError(t, res.Confirm())
	require.NoError(t, res.Complete())

	err := res.UpdateDetails(3, "late checkout", "")
	var invalid *domain.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "completed", invalid.From)
}

func TestFindConflict(t *testing.T) {
	existing := newTestReservation(t, "2030-01-10", "2030-01-15")

	// Overlapping request conflicts.
	assert.False(t, IsAvailable([]*Reservation{existing}, mustPeriod(t, "2030-01-12", "2030-01-20"), uuid.Nil))

	// Back-to-back sharing a boundary day still conflicts.
	assert.False(t, IsAvailable([]*Reservation{existing}, mustPeriod(t, "2030-01-15", "2030-01-20"), uuid.Nil))

	// Disjoint request is fine.
	assert.True(t, IsAvailable([]*Reservation{existing}, mustPeriod(t, "2030-01-16", "2030-01-20"), uuid.Nil))
}

func TestFindConflict_ExcludesOwnID(t *testing.T) {
	existing := newTestReservation(t, "2030-01-10", "2030-01-15")

	// Amending the reservation over its own dates is not a conflict.
	assert.True(t, IsAvailable([]*Reservation{existing}, mustPeriod(t, "2030-01-11", "2030-01-16"), existing.ID()))
	assert.False(t, IsAvailable([]*Reservation{existing}, mustPeriod(t, "2030-01-11", "2030-01-16"), uuid.New()))
}

func TestFindConflict_IgnoresCancelled(t *testing.T) {
	cancelled := newTestReservation(t, "2030-01-10", "2030-01-15")
	require.NoError(t, cancelled.Cancel(""))

	assert.True(t, IsAvailable([]*Reservation{cancelled}, mustPeriod(t, "2030-01-10", "2030-01-15"), uuid.Nil))
	assert.Nil(t, FindConflict([]*Reservation{cancelled}, mustPeriod(t, "2030-01-10", "2030-01-15"), uuid.Nil))
}

func TestFindConflict_CompletedStillBlocks(t *testing.T) {
	completed := newTestReservation(t, "2030-01-10", "2030-01-15")
	require.NoError(t, completed.Confirm())
	require.NoError(t, completed.Complete())

	assert.False(t, IsAvailable([]*Reservation{completed}, mustPeriod(t, "2030-01-12", "2030-01-14"), uuid.Nil))
}
