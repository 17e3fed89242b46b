package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/pkg/utils"
)

// CarKmPerLiter - средний расход автомобиля, км на литр
const CarKmPerLiter = 10.0

// TripPlanner выбирает режим поездки и приводит результат к TripResult.
// Не хранит состояния, безопасен для конкурентных вызовов.
type TripPlanner struct {
	routeClient repository.GroundRouteClient
	estimator   *GreatCircleEstimator
	logger      *zap.Logger
}

func NewTripPlanner(
	routeClient repository.GroundRouteClient,
	estimator *GreatCircleEstimator,
	logger *zap.Logger,
) *TripPlanner {
	return &TripPlanner{
		routeClient: routeClient,
		estimator:   estimator,
		logger:      logger,
	}
}

// SelectMode: самолет или разные страны -> air, иначе ground
func SelectMode(origin, destination domain.ResolvedLocation, vehicle domain.VehicleProfile) domain.TripMode {
	if vehicle == domain.VehicleAirplane || !domain.SameCountry(origin, destination) {
		return domain.TripModeAir
	}
	return domain.TripModeGround
}

// Plan рассчитывает поездку. Режим выбирается до обращения к маршрутизации;
// ошибка маршрутизации не переключает расчет на перелет.
func (p *TripPlanner) Plan(
	ctx context.Context,
	origin domain.ResolvedLocation,
	destination domain.ResolvedLocation,
	vehicle domain.VehicleProfile,
) (*domain.TripResult, error) {
	if err := checkLocation(origin, "origin"); err != nil {
		return nil, err
	}
	if err := checkLocation(destination, "destination"); err != nil {
		return nil, err
	}

	mode := SelectMode(origin, destination, vehicle)

	p.logger.Debug("Trip mode selected",
		zap.String("origin", origin.DisplayName),
		zap.String("destination", destination.DisplayName),
		zap.String("vehicle", vehicle.String()),
		zap.String("mode", mode.String()))

	if mode == domain.TripModeAir {
		return p.planAir(origin, destination, vehicle), nil
	}
	return p.planGround(ctx, origin, destination, vehicle)
}

func (p *TripPlanner) planAir(origin, destination domain.ResolvedLocation, vehicle domain.VehicleProfile) *domain.TripResult {
	estimate := p.estimator.Estimate(origin, destination)

	return &domain.TripResult{
		Origin:           origin,
		Destination:      destination,
		Mode:             domain.TripModeAir,
		Vehicle:          vehicle,
		DistanceMeters:   estimate.DistanceMeters,
		DurationSeconds:  estimate.DurationSeconds,
		EstimatedCostUSD: estimate.CostUSD,
		Instructions:     []domain.Instruction{},
	}
}

func (p *TripPlanner) planGround(
	ctx context.Context,
	origin domain.ResolvedLocation,
	destination domain.ResolvedLocation,
	vehicle domain.VehicleProfile,
) (*domain.TripResult, error) {
	route, err := p.routeClient.Route(ctx, origin, destination, vehicle)
	if err != nil {
		p.logger.Warn("Ground routing failed",
			zap.String("origin", origin.DisplayName),
			zap.String("destination", destination.DisplayName),
			zap.String("vehicle", vehicle.String()),
			zap.Error(err))
		return nil, fmt.Errorf("plan ground trip: %w", err)
	}

	instructions := make([]domain.Instruction, len(route.Instructions))
	copy(instructions, route.Instructions)

	result := &domain.TripResult{
		Origin:              origin,
		Destination:         destination,
		Mode:                domain.TripModeGround,
		Vehicle:             vehicle,
		DistanceMeters:      route.DistanceMeters,
		DurationSeconds:     float64(route.DurationMs) / 1000.0,
		ElevationGainMeters: route.ElevationGainMeters,
		ElevationLossMeters: route.ElevationLossMeters,
		Instructions:        instructions,
		Points:              route.Points,
	}
	if vehicle == domain.VehicleCar {
		result.FuelLiters = result.DistanceKm() / CarKmPerLiter
	}

	return result, nil
}

func checkLocation(loc domain.ResolvedLocation, role string) error {
	if !loc.HasCoordinates() {
		return errors.ErrResolutionMissing.WithDetails(map[string]interface{}{
			"location": role,
		})
	}
	if !utils.ValidateCoordinates(loc.Coordinates.Lat, loc.Coordinates.Lon) {
		return errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"location": role,
			"lat":      loc.Coordinates.Lat,
			"lon":      loc.Coordinates.Lon,
		})
	}
	return nil
}
