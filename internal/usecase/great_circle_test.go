package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/usecase"
)

func TestGreatCircleEstimator_Estimate(t *testing.T) {
	estimator := usecase.NewGreatCircleEstimator()

	newYork := location("New York", "United States", 40.7128, -74.0060)
	paris := location("Paris", "France", 48.8566, 2.3522)

	t.Run("same point is zero", func(t *testing.T) {
		estimate := estimator.Estimate(newYork, newYork)
		assert.Zero(t, estimate.DistanceMeters)
		assert.Zero(t, estimate.DurationSeconds)
		assert.Zero(t, estimate.CostUSD)
	})

	t.Run("new york to paris", func(t *testing.T) {
		estimate := estimator.Estimate(newYork, paris)

		km := estimate.DistanceMeters / 1000
		assert.InDelta(t, 5837, km, 5)
		assert.InDelta(t, km/usecase.AirCruiseSpeedKmh*3600, estimate.DurationSeconds, 1e-6)
		assert.InDelta(t, km*usecase.AirCostPerKmUSD, estimate.CostUSD, 1e-6)
	})

	t.Run("symmetric", func(t *testing.T) {
		there := estimator.Estimate(newYork, paris)
		back := estimator.Estimate(paris, newYork)
		assert.InDelta(t, there.DistanceMeters, back.DistanceMeters, 1e-6)
	})

	t.Run("antipodal points", func(t *testing.T) {
		estimate := estimator.Estimate(location("A", "", 0, 0), location("B", "", 0, 180))
		// half the circumference with R = 6371 km
		assert.InDelta(t, 20015.09, estimate.DistanceMeters/1000, 0.5)
	})

	t.Run("missing coordinates panic", func(t *testing.T) {
		assert.Panics(t, func() {
			estimator.Estimate(domain.ResolvedLocation{DisplayName: "nowhere"}, paris)
		})
	})
}
