package repository

import (
	"context"

	"github.com/trip-planner/internal/domain"
)

// GroundRouteClient определяет методы для работы с сервисом маршрутизации
type GroundRouteClient interface {
	// Route строит наземный маршрут между двумя локациями для профиля vehicle.
	// Любая ошибка означает, что маршрут для этой попытки не построен.
	Route(
		ctx context.Context,
		origin domain.ResolvedLocation,
		destination domain.ResolvedLocation,
		vehicle domain.VehicleProfile,
	) (*domain.GroundRoute, error)
}
