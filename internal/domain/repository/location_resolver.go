package repository

import (
	"context"

	"github.com/trip-planner/internal/domain"
)

// LocationResolver преобразует текстовый запрос в координаты
type LocationResolver interface {
	// Resolve возвращает найденную локацию или ошибку RESOLUTION_FAILED
	Resolve(ctx context.Context, query string) (*domain.ResolvedLocation, error)
}
