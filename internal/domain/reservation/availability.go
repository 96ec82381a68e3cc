package reservation

import "github.com/google/uuid"

// FindConflict scans a room's reservations for a live one whose stay overlaps
// the requested period. Cancelled reservations never conflict; their dates are
// released the moment they are cancelled. A reservation being amended passes
// its own id as excludeID so its prior footprint is ignored.
//
// The scan is a pure function over the slice it is given; serializing the
// snapshot against concurrent writers is the coordinator's job.
func FindConflict(existing []*Reservation, period StayPeriod, excludeID uuid.UUID) *Reservation {
	for _, r := range existing {
		if r.ID() == excludeID {
			continue
		}
		if !r.Status().IsLive() {
			continue
		}
		if r.Period().Overlaps(period) {
			return r
		}
	}
	return nil
}

// IsAvailable reports whether the period is free of conflicts on the room
// whose reservations are given.
func IsAvailable(existing []*Reservation, period StayPeriod, excludeID uuid.UUID) bool {
	return FindConflict(existing, period, excludeID) == nil
}
