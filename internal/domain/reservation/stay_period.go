package reservation

import (
	"time"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
)

// DateLayout is the wire format for stay dates. Stays are date-granular; no
// time-of-day component is carried.
const DateLayout = "2006-01-02"

// StayPeriod is the closed date interval [start, end] of a reservation.
// Both bounds are normalized to UTC midnight.
type StayPeriod struct {
	start time.Time
	end   time.Time
}

// NewStayPeriod builds a stay period, normalizing both dates to UTC midnight.
// A period whose start is after its end is rejected. Equal dates are allowed
// and represent a zero-night stay.
func NewStayPeriod(start, end time.Time) (StayPeriod, error) {
	s := NormalizeDate(start)
	e := NormalizeDate(end)
	if s.After(e) {
		return StayPeriod{}, domain.NewInvalidDateRangeError(s, e)
	}
	return StayPeriod{start: s, end: e}, nil
}

// ParseStayPeriod builds a stay period from two dates in DateLayout form.
func ParseStayPeriod(start, end string) (StayPeriod, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return StayPeriod{}, domain.NewValidationError("invalid start date: " + start)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return StayPeriod{}, domain.NewValidationError("invalid end date: " + end)
	}
	return NewStayPeriod(s, e)
}

// NormalizeDate truncates a timestamp to its UTC calendar date.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC calendar date.
func Today() time.Time {
	return NormalizeDate(time.Now())
}

// Start returns the check-in date.
func (p StayPeriod) Start() time.Time { return p.start }

// End returns the check-out date.
func (p StayPeriod) End() time.Time { return p.end }

// Nights returns the number of nights in the stay. A same-day period counts
// as zero nights.
func (p StayPeriod) Nights() int64 {
	return int64(p.end.Sub(p.start).Hours() / 24)
}

// Overlaps reports whether two periods share at least one calendar day.
// The comparison is inclusive on both ends, so a checkout and a check-in on
// the same day are treated as conflicting.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return !p.start.After(other.end) && !other.start.After(p.end)
}

// StartsBefore reports whether the stay begins before the given date.
func (p StayPeriod) StartsBefore(date time.Time) bool {
	return p.start.Before(NormalizeDate(date))
}

// EndsBefore reports whether the stay ends before the given date.
func (p StayPeriod) EndsBefore(date time.Time) bool {
	return p.end.Before(NormalizeDate(date))
}

// Equal reports whether two periods cover the same dates.
func (p StayPeriod) Equal(other StayPeriod) bool {
	return p.start.Equal(other.start) && p.end.Equal(other.end)
}
