package reservation

import "fmt"

// PricingStrategy defines the interface for computing a stay's total price.
type PricingStrategy interface {
	// Quote returns the total price in cents for a stay at the given nightly rate.
	Quote(nightlyRateCents int64, period StayPeriod) (int64, error)
}

// NightlyRatePricing prices a stay as nightly rate times number of nights.
// A zero-night stay prices to zero.
type NightlyRatePricing struct{}

// NewNightlyRatePricing creates a new NightlyRatePricing.
func NewNightlyRatePricing() *NightlyRatePricing {
	return &NightlyRatePricing{}
}

// Quote computes the total price in cents.
//
// The nightly rate is whatever the room charges at the moment of the quote;
// the result is baked into the reservation and never recomputed when the
// room's rate later changes.
func (p *NightlyRatePricing) Quote(nightlyRateCents int64, period StayPeriod) (int64, error) {
	if nightlyRateCents <= 0 {
		return 0, fmt.Errorf("nightly rate must be positive, got %d", nightlyRateCents)
	}
	return nightlyRateCents * period.Nights(), nil
}
