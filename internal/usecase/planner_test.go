package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner/internal/domain"
	apperrors "github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/usecase"
)

func TestSelectMode(t *testing.T) {
	ny := location("New York", "United States", 40.7128, -74.0060)
	la := location("Los Angeles", "United States", 34.0522, -118.2437)
	paris := location("Paris", "France", 48.8566, 2.3522)
	lower := location("Boston", "united states", 42.3601, -71.0589)
	noCountryA := location("Somewhere", "", 1, 1)
	noCountryB := location("Elsewhere", "", 2, 2)

	tests := []struct {
		name    string
		origin  domain.ResolvedLocation
		dest    domain.ResolvedLocation
		vehicle domain.VehicleProfile
		want    domain.TripMode
	}{
		{"same country car", ny, la, domain.VehicleCar, domain.TripModeGround},
		{"same country foot", ny, la, domain.VehicleFoot, domain.TripModeGround},
		{"airplane always air", ny, la, domain.VehicleAirplane, domain.TripModeAir},
		{"different country", ny, paris, domain.VehicleCar, domain.TripModeAir},
		{"country compare is case sensitive", ny, lower, domain.VehicleCar, domain.TripModeAir},
		{"two empty countries are equal", noCountryA, noCountryB, domain.VehicleBike, domain.TripModeGround},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.SelectMode(tt.origin, tt.dest, tt.vehicle))
		})
	}
}

func TestTripPlanner_Plan(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	ny := location("New York", "United States", 40.7128, -74.0060)
	la := location("Los Angeles", "United States", 34.0522, -118.2437)
	paris := location("Paris", "France", 48.8566, 2.3522)

	route := &domain.GroundRoute{
		DistanceMeters:      4500000,
		DurationMs:          162000000,
		ElevationGainMeters: 120,
		ElevationLossMeters: 80,
		Instructions: []domain.Instruction{
			{Text: "Continue onto I-80", DistanceMeters: 4499000},
			{Text: "Arrive at destination", DistanceMeters: 1000},
		},
	}

	t.Run("ground trip by car", func(t *testing.T) {
		routes := &MockGroundRouteClient{}
		routes.On("Route", mock.Anything, ny, la, domain.VehicleCar).Return(route, nil).Once()
		planner := usecase.NewTripPlanner(routes, usecase.NewGreatCircleEstimator(), logger)

		result, err := planner.Plan(ctx, ny, la, domain.VehicleCar)

		require.NoError(t, err)
		assert.Equal(t, domain.TripModeGround, result.Mode)
		assert.Equal(t, 4500000.0, result.DistanceMeters)
		assert.Equal(t, 162000.0, result.DurationSeconds)
		assert.Equal(t, 120.0, result.ElevationGainMeters)
		assert.Equal(t, 80.0, result.ElevationLossMeters)
		assert.InDelta(t, 450.0, result.FuelLiters, 1e-9)
		assert.Zero(t, result.EstimatedCostUSD)
		assert.Len(t, result.Instructions, 2)
		assert.Equal(t, "Continue onto I-80", result.Instructions[0].Text)
		routes.AssertExpectations(t)
	})

	t.Run("no fuel outside car", func(t *testing.T) {
		routes := &MockGroundRouteClient{}
		routes.On("Route", mock.Anything, ny, la, domain.VehicleBike).Return(route, nil).Once()
		planner := usecase.NewTripPlanner(routes, usecase.NewGreatCircleEstimator(), logger)

		result, err := planner.Plan(ctx, ny, la, domain.VehicleBike)

		require.NoError(t, err)
		assert.Zero(t, result.FuelLiters)
	})

	t.Run("fractional duration kept", func(t *testing.T) {
		routes := &MockGroundRouteClient{}
		routes.On("Route", mock.Anything, ny, la, domain.VehicleFoot).
			Return(&domain.GroundRoute{DistanceMeters: 10, DurationMs: 1500}, nil).Once()
		planner := usecase.NewTripPlanner(routes, usecase.NewGreatCircleEstimator(), logger)

		result, err := planner.Plan(ctx, ny, la, domain.VehicleFoot)

		require.NoError(t, err)
		assert.Equal(t, 1.5, result.DurationSeconds)
		assert.NotNil(t, result.Instructions)
	})

	t.Run("international trip never calls routing", func(t *testing.T) {
		routes := &MockGroundRouteClient{}
		planner := usecase.NewTripPlanner(routes, usecase.NewGreatCircleEstimator(), logger)

		result, err := planner.Plan(ctx, ny, paris, domain.VehicleCar)

		require.NoError(t, err)
		assert.Equal(t, domain.TripModeAir, result.Mode)
		assert.Equal(t, domain.VehicleCar, result.Vehicle)
		assert.InDelta(t, 5837, result.DistanceKm(), 5)
		assert.Greater(t, result.EstimatedCostUSD, 0.0)
		assert.Zero(t, result.FuelLiters)
		assert.Empty(t, result.Instructions)
		routes.AssertNotCalled(t, "Route", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("airplane inside one country", func(t *testing.T) {
		routes := &MockGroundRouteClient{}
		planner := usecase.NewTripPlanner(routes, usecase.NewGreatCircleEstimator(), logger)

		result, err := planner.Plan(ctx, ny, la, domain.VehicleAirplane)

		require.NoError(t, err)
		assert.True(t, result.IsAir())
		routes.AssertNotCalled(t, "Route", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("routing failure is not replaced by a flight", func(t *testing.T) {
		routes := &MockGroundRouteClient{}
		upstream := apperrors.ErrRoutingFailed.WithCause(&apperrors.UpstreamError{
			Service:    "graphhopper",
			StatusCode: 400,
			Message:    "Connection between locations not found",
		})
		routes.On("Route", mock.Anything, ny, la, domain.VehicleCar).Return(nil, upstream).Once()
		planner := usecase.NewTripPlanner(routes, usecase.NewGreatCircleEstimator(), logger)

		result, err := planner.Plan(ctx, ny, la, domain.VehicleCar)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, apperrors.ErrRoutingFailed))
		up, ok := apperrors.Upstream(err)
		require.True(t, ok)
		assert.Equal(t, 400, up.StatusCode)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		routes := &MockGroundRouteClient{}
		planner := usecase.NewTripPlanner(routes, usecase.NewGreatCircleEstimator(), logger)

		_, err := planner.Plan(ctx, domain.ResolvedLocation{DisplayName: "Atlantis"}, la, domain.VehicleCar)

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrResolutionMissing))
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		routes := &MockGroundRouteClient{}
		planner := usecase.NewTripPlanner(routes, usecase.NewGreatCircleEstimator(), logger)

		_, err := planner.Plan(ctx, ny, location("Bad", "United States", 95, 10), domain.VehicleCar)

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCoordinates))
	})
}
