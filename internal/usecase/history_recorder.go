package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/pkg/utils"
)

// HistoryRecorder дописывает строку о каждой завершенной поездке во все получатели.
// Ошибки записи возвращаются отдельно и не влияют на результат поездки.
type HistoryRecorder struct {
	sinks  []repository.HistorySink
	logger *zap.Logger
	now    func() time.Time
	mu     sync.Mutex
}

func NewHistoryRecorder(logger *zap.Logger, sinks ...repository.HistorySink) *HistoryRecorder {
	return &HistoryRecorder{
		sinks:  sinks,
		logger: logger,
		now:    time.Now,
	}
}

// FormatHistoryLine формирует строку истории (без перевода строки):
//
//	New York -> Boston (car, 346.00 km, 04:00:00)
//	New York -> Paris (Airplane, 5837.21 km, 6.87 hrs)
func FormatHistoryLine(result *domain.TripResult, unit domain.Unit) string {
	distance := utils.FormatDistance(result.DistanceMeters, unit)

	if result.IsAir() {
		return fmt.Sprintf("%s -> %s (Airplane, %s, %s)",
			result.Origin.DisplayName,
			result.Destination.DisplayName,
			distance,
			utils.FormatFlightHours(result.DurationSeconds))
	}

	return fmt.Sprintf("%s -> %s (%s, %s, %s)",
		result.Origin.DisplayName,
		result.Destination.DisplayName,
		result.Vehicle,
		distance,
		utils.FormatDurationSeconds(result.DurationSeconds))
}

// Record записывает поездку и возвращает строку истории.
// Ошибка (HISTORY_WRITE_FAILED) собирает сбои всех получателей.
func (r *HistoryRecorder) Record(ctx context.Context, result *domain.TripResult, unit domain.Unit) (string, error) {
	line := FormatHistoryLine(result, unit)
	event := domain.NewHistoryEvent(result, line, r.now())

	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, sink := range r.sinks {
		if err := sink.Append(ctx, event); err != nil {
			r.logger.Error("Failed to record trip history",
				zap.String("sink", sink.Name()),
				zap.String("event_id", event.ID.String()),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
			continue
		}
		r.logger.Debug("Trip history recorded",
			zap.String("sink", sink.Name()),
			zap.String("event_id", event.ID.String()))
	}

	if len(errs) > 0 {
		return line, errors.ErrHistoryWrite.WithCause(stderrors.Join(errs...))
	}
	return line, nil
}
