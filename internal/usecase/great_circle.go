package usecase

import (
	"github.com/umahmood/haversine"

	"github.com/trip-planner/internal/domain"
)

const (
	// AirCruiseSpeedKmh - средняя крейсерская скорость для оценки длительности перелета
	AirCruiseSpeedKmh = 850.0
	// AirCostPerKmUSD - оценка стоимости билета за километр
	AirCostPerKmUSD = 0.12
)

// GreatCircleEstimator оценивает перелет по дуге большого круга (haversine, R = 6371 км)
type GreatCircleEstimator struct{}

func NewGreatCircleEstimator() *GreatCircleEstimator {
	return &GreatCircleEstimator{}
}

// Estimate вычисляет расстояние, длительность и стоимость перелета.
// Обе локации обязаны иметь координаты, иначе это ошибка программиста.
func (e *GreatCircleEstimator) Estimate(origin, destination domain.ResolvedLocation) domain.AirEstimate {
	if !origin.HasCoordinates() || !destination.HasCoordinates() {
		panic("usecase: great-circle estimate requires resolved coordinates")
	}

	_, km := haversine.Distance(
		haversine.Coord{Lat: origin.Coordinates.Lat, Lon: origin.Coordinates.Lon},
		haversine.Coord{Lat: destination.Coordinates.Lat, Lon: destination.Coordinates.Lon},
	)

	return domain.AirEstimate{
		DistanceMeters:  km * 1000,
		DurationSeconds: km / AirCruiseSpeedKmh * 3600,
		CostUSD:         km * AirCostPerKmUSD,
	}
}
