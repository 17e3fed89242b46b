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
	"github.com/trip-planner/internal/usecase/dto"
)

type tripFixture struct {
	resolver *MockLocationResolver
	routes   *MockGroundRouteClient
	sink     *memorySink
	uc       *usecase.TripUseCase
}

func newTripFixture(policy usecase.InputPolicy) *tripFixture {
	logger := zap.NewNop()
	f := &tripFixture{
		resolver: &MockLocationResolver{},
		routes:   &MockGroundRouteClient{},
		sink:     &memorySink{name: "memory"},
	}
	planner := usecase.NewTripPlanner(f.routes, usecase.NewGreatCircleEstimator(), logger)
	recorder := usecase.NewHistoryRecorder(logger, f.sink)
	f.uc = usecase.NewTripUseCase(f.resolver, planner, recorder, usecase.TripDefaults{
		Vehicle: "car",
		Units:   "km",
		Policy:  policy,
	}, logger)
	return f
}

func TestTripUseCase_PlanTrip(t *testing.T) {
	ctx := context.Background()

	ny := location("New York", "United States", 40.7128, -74.0060)
	la := location("Los Angeles", "United States", 34.0522, -118.2437)
	paris := location("Paris", "France", 48.8566, 2.3522)

	route := &domain.GroundRoute{
		DistanceMeters:      4500000,
		DurationMs:          162000000,
		ElevationGainMeters: 120,
		ElevationLossMeters: 80,
	}

	t.Run("domestic car trip end to end", func(t *testing.T) {
		f := newTripFixture(usecase.InputPolicyDefault)
		f.resolver.On("Resolve", mock.Anything, "New York").Return(&ny, nil)
		f.resolver.On("Resolve", mock.Anything, "Los Angeles").Return(&la, nil)
		f.routes.On("Route", mock.Anything, ny, la, domain.VehicleCar).Return(route, nil).Once()

		outcome, err := f.uc.PlanTrip(ctx, dto.PlanTripRequest{From: "New York", To: "Los Angeles"})

		require.NoError(t, err)
		assert.Equal(t, domain.TripModeGround, outcome.Result.Mode)
		assert.Equal(t, 162000.0, outcome.Result.DurationSeconds)
		assert.InDelta(t, 450.0, outcome.Result.FuelLiters, 1e-9)
		assert.Equal(t, domain.UnitKm, outcome.Unit)
		assert.NoError(t, outcome.HistoryErr)
		assert.Equal(t, "New York -> Los Angeles (car, 4500.00 km, 45:00:00)", outcome.HistoryLine)
		assert.Equal(t, []string{outcome.HistoryLine}, f.sink.lines())
		f.routes.AssertExpectations(t)
	})

	t.Run("international trip is a flight", func(t *testing.T) {
		f := newTripFixture(usecase.InputPolicyDefault)
		f.resolver.On("Resolve", mock.Anything, "New York").Return(&ny, nil)
		f.resolver.On("Resolve", mock.Anything, "Paris").Return(&paris, nil)

		outcome, err := f.uc.PlanTrip(ctx, dto.PlanTripRequest{From: "New York", To: "Paris", Vehicle: "car"})

		require.NoError(t, err)
		assert.Equal(t, domain.TripModeAir, outcome.Result.Mode)
		assert.Contains(t, outcome.HistoryLine, "(Airplane, ")
		assert.Contains(t, outcome.HistoryLine, " hrs)")
		f.routes.AssertNotCalled(t, "Route", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown vehicle and unit are coerced", func(t *testing.T) {
		f := newTripFixture(usecase.InputPolicyDefault)
		f.resolver.On("Resolve", mock.Anything, "New York").Return(&ny, nil)
		f.resolver.On("Resolve", mock.Anything, "Los Angeles").Return(&la, nil)
		f.routes.On("Route", mock.Anything, ny, la, domain.VehicleCar).Return(route, nil).Once()

		outcome, err := f.uc.PlanTrip(ctx, dto.PlanTripRequest{
			From: "New York", To: "Los Angeles", Vehicle: "rocket", Units: "furlongs",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.VehicleCar, outcome.Result.Vehicle)
		assert.Equal(t, domain.UnitKm, outcome.Unit)
		assert.True(t, outcome.VehicleDefaulted)
		assert.True(t, outcome.UnitDefaulted)
	})

	t.Run("unknown vehicle rejected before any lookup", func(t *testing.T) {
		f := newTripFixture(usecase.InputPolicyReject)

		_, err := f.uc.PlanTrip(ctx, dto.PlanTripRequest{From: "New York", To: "Los Angeles", Vehicle: "rocket"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidVehicle))
		f.resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})

	t.Run("both resolution failures are reported", func(t *testing.T) {
		f := newTripFixture(usecase.InputPolicyDefault)
		f.resolver.On("Resolve", mock.Anything, "Nowhereville").
			Return(nil, apperrors.ErrResolutionFailed.WithCause(&apperrors.UpstreamError{Service: "graphhopper", StatusCode: 200, Message: "no results"}))
		f.resolver.On("Resolve", mock.Anything, "Atlantis").
			Return(nil, apperrors.ErrResolutionFailed.WithCause(&apperrors.UpstreamError{Service: "graphhopper", StatusCode: 200, Message: "no results"}))

		outcome, err := f.uc.PlanTrip(ctx, dto.PlanTripRequest{From: "Nowhereville", To: "Atlantis"})

		require.Error(t, err)
		assert.Nil(t, outcome)
		assert.True(t, errors.Is(err, apperrors.ErrResolutionFailed))
		assert.Contains(t, err.Error(), "origin")
		assert.Contains(t, err.Error(), "destination")
		f.resolver.AssertNumberOfCalls(t, "Resolve", 2)
		assert.Empty(t, f.sink.lines())
	})

	t.Run("routing failure writes no history", func(t *testing.T) {
		f := newTripFixture(usecase.InputPolicyDefault)
		f.resolver.On("Resolve", mock.Anything, "New York").Return(&ny, nil)
		f.resolver.On("Resolve", mock.Anything, "Los Angeles").Return(&la, nil)
		f.routes.On("Route", mock.Anything, ny, la, domain.VehicleFoot).
			Return(nil, apperrors.ErrRoutingFailed.WithCause(&apperrors.UpstreamError{Service: "graphhopper", StatusCode: 400}))

		_, err := f.uc.PlanTrip(ctx, dto.PlanTripRequest{From: "New York", To: "Los Angeles", Vehicle: "foot"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrRoutingFailed))
		assert.Empty(t, f.sink.lines())
	})

	t.Run("history failure does not fail the trip", func(t *testing.T) {
		f := newTripFixture(usecase.InputPolicyDefault)
		f.sink.err = errors.New("read-only file system")
		f.resolver.On("Resolve", mock.Anything, "New York").Return(&ny, nil)
		f.resolver.On("Resolve", mock.Anything, "Paris").Return(&paris, nil)

		outcome, err := f.uc.PlanTrip(ctx, dto.PlanTripRequest{From: "New York", To: "Paris"})

		require.NoError(t, err)
		require.NotNil(t, outcome.Result)
		assert.True(t, errors.Is(outcome.HistoryErr, apperrors.ErrHistoryWrite))
		assert.NotEmpty(t, outcome.HistoryLine)
	})
}

func TestConvertTripResult(t *testing.T) {
	result := groundResult()
	result.Instructions = []domain.Instruction{{Text: "Head west", DistanceMeters: 1610}}

	resp := dto.ConvertTripResult(result, domain.UnitMiles)

	assert.Equal(t, "2795.03 miles", resp.Distance)
	assert.Equal(t, "45:00:00", resp.Duration)
	require.Len(t, resp.Instructions, 1)
	assert.Equal(t, "1.00 miles", resp.Instructions[0].Distance)

	air := dto.ConvertTripResult(airResult(), domain.UnitKm)
	assert.Equal(t, "6.87 hrs", air.Duration)
	assert.Empty(t, air.Instructions)
}
