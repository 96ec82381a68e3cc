package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNightlyRatePricing(t *testing.T) {
	pricing := NewNightlyRatePricing()

	// 100.00 per night for 3 nights = 300.00
	total, err := pricing.Quote(10000, mustPeriod(t, "2030-01-10", "2030-01-13"))
	require.NoError(t, err)
	assert.Equal(t, int64(30000), total)
}

func TestNightlyRatePricing_SingleNight(t *testing.T) {
	pricing := NewNightlyRatePricing()

	total, err := pricing.Quote(12550, mustPeriod(t, "2030-01-10", "2030-01-11"))
	require.NoError(t, err)
	assert.Equal(t, int64(12550), total)
}

func TestNightlyRatePricing_ZeroNights(t *testing.T) {
	pricing := NewNightlyRatePricing()

	total, err := pricing.Quote(10000, mustPeriod(t, "2030-01-10", "2030-01-10"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestNightlyRatePricing_Deterministic(t *testing.T) {
	pricing := NewNightlyRatePricing()
	period := mustPeriod(t, "2030-01-10", "2030-01-13")

	first, err := pricing.Quote(9999, period)
	require.NoError(t, err)
	second, err := pricing.Quote(9999, period)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNightlyRatePricing_NonPositiveRate(t *testing.T) {
	pricing := NewNightlyRatePricing()

	_, err := pricing.Quote(0, mustPeriod(t, "2030-01-10", "2030-01-13"))
	assert.Error(t, err)

	_, err = pricing.Quote(-100, mustPeriod(t, "2030-01-10", "2030-01-13"))
	assert.Error(t, err)
}
