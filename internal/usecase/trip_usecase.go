package usecase

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/usecase/dto"
)

// TripDefaults - значения, которые используются, если запрос их не указал
type TripDefaults struct {
	Vehicle string
	Units   string
	Policy  InputPolicy
}

// TripOutcome - результат расчета поездки вместе с итогом записи истории
type TripOutcome struct {
	Result           *domain.TripResult
	Unit             domain.Unit
	HistoryLine      string
	HistoryErr       error
	VehicleDefaulted bool
	UnitDefaulted    bool
}

// TripUseCase - полный сценарий: нормализация, геокодирование, расчет, история
type TripUseCase struct {
	resolver repository.LocationResolver
	planner  *TripPlanner
	recorder *HistoryRecorder
	defaults TripDefaults
	logger   *zap.Logger
}

func NewTripUseCase(
	resolver repository.LocationResolver,
	planner *TripPlanner,
	recorder *HistoryRecorder,
	defaults TripDefaults,
	logger *zap.Logger,
) *TripUseCase {
	return &TripUseCase{
		resolver: resolver,
		planner:  planner,
		recorder: recorder,
		defaults: defaults,
		logger:   logger,
	}
}

// PlanTrip рассчитывает поездку. Если не удалось геокодировать хотя бы одну точку,
// расчет не выполняется. Ошибка записи истории возвращается в TripOutcome.HistoryErr.
func (uc *TripUseCase) PlanTrip(ctx context.Context, req dto.PlanTripRequest) (*TripOutcome, error) {
	rawVehicle := req.Vehicle
	if rawVehicle == "" {
		rawVehicle = uc.defaults.Vehicle
	}
	vehicle, vehicleDefaulted, err := NormalizeVehicle(rawVehicle, uc.defaults.Policy)
	if err != nil {
		return nil, err
	}

	rawUnits := req.Units
	if rawUnits == "" {
		rawUnits = uc.defaults.Units
	}
	unit, unitDefaulted, err := NormalizeUnit(rawUnits, uc.defaults.Policy)
	if err != nil {
		return nil, err
	}

	if vehicleDefaulted || unitDefaulted {
		uc.logger.Info("Unrecognized input replaced with defaults",
			zap.String("vehicle_input", rawVehicle),
			zap.String("vehicle", vehicle.String()),
			zap.String("units_input", rawUnits),
			zap.String("units", unit.String()))
	}

	origin, destination, err := uc.resolvePair(ctx, req.From, req.To)
	if err != nil {
		return nil, err
	}

	result, err := uc.planner.Plan(ctx, *origin, *destination, vehicle)
	if err != nil {
		return nil, err
	}

	outcome := &TripOutcome{
		Result:           result,
		Unit:             unit,
		VehicleDefaulted: vehicleDefaulted,
		UnitDefaulted:    unitDefaulted,
	}

	if uc.recorder != nil {
		outcome.HistoryLine, outcome.HistoryErr = uc.recorder.Record(ctx, result, unit)
	} else {
		outcome.HistoryLine = FormatHistoryLine(result, unit)
	}

	uc.logger.Info("Trip planned",
		zap.String("origin", result.Origin.DisplayName),
		zap.String("destination", result.Destination.DisplayName),
		zap.String("mode", result.Mode.String()),
		zap.String("vehicle", result.Vehicle.String()),
		zap.Float64("distance_m", result.DistanceMeters),
		zap.Bool("history_ok", outcome.HistoryErr == nil))

	return outcome, nil
}

// resolvePair геокодирует обе точки и возвращает все ошибки сразу
func (uc *TripUseCase) resolvePair(ctx context.Context, from, to string) (*domain.ResolvedLocation, *domain.ResolvedLocation, error) {
	origin, originErr := uc.resolver.Resolve(ctx, from)
	if originErr != nil {
		originErr = fmt.Errorf("resolve origin %q: %w", from, originErr)
	}

	destination, destErr := uc.resolver.Resolve(ctx, to)
	if destErr != nil {
		destErr = fmt.Errorf("resolve destination %q: %w", to, destErr)
	}

	if originErr != nil || destErr != nil {
		err := stderrors.Join(originErr, destErr)
		uc.logger.Warn("Location resolution failed", zap.Error(err))
		return nil, nil, err
	}

	return origin, destination, nil
}
