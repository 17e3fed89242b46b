package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

const tripHistorySchema = `
CREATE TABLE IF NOT EXISTS trip_history (
	id               UUID PRIMARY KEY,
	line             TEXT NOT NULL,
	origin           TEXT NOT NULL,
	destination      TEXT NOT NULL,
	mode             VARCHAR(16) NOT NULL,
	vehicle          VARCHAR(16) NOT NULL,
	distance_meters  DOUBLE PRECISION NOT NULL,
	duration_seconds DOUBLE PRECISION NOT NULL,
	recorded_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trip_history_recorded_at ON trip_history (recorded_at DESC);
`

type historyArchiveRepository struct {
	db     *DB
	logger *zap.Logger
}

// HistoryArchive - архив истории поездок с созданием схемы
type HistoryArchive interface {
	repository.HistoryArchiveRepository
	Migrate(ctx context.Context) error
}

func NewHistoryArchiveRepository(db *DB) HistoryArchive {
	return &historyArchiveRepository{
		db:     db,
		logger: db.logger,
	}
}

// Migrate создает таблицу архива, если ее нет
func (r *historyArchiveRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, tripHistorySchema); err != nil {
		return fmt.Errorf("failed to create trip_history: %w", err)
	}
	return nil
}

func (r *historyArchiveRepository) Save(ctx context.Context, event *domain.HistoryEvent) error {
	query := `
		INSERT INTO trip_history (
			id, line, origin, destination, mode, vehicle,
			distance_meters, duration_seconds, recorded_at
		) VALUES (
			:id, :line, :origin, :destination, :mode, :vehicle,
			:distance_meters, :duration_seconds, :recorded_at
		)
		ON CONFLICT (id) DO NOTHING
	`

	res, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		r.logger.Error("Failed to save history event",
			zap.String("event_id", event.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to save history event: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		r.logger.Debug("History event already archived",
			zap.String("event_id", event.ID.String()))
	}
	return nil
}

// ListRecent возвращает записи от новых к старым. Пустой modes означает все режимы.
func (r *historyArchiveRepository) ListRecent(ctx context.Context, limit int, modes []string) ([]*domain.HistoryEvent, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT id, line, origin, destination, mode, vehicle,
		       distance_meters, duration_seconds, recorded_at
		FROM trip_history`)

	args := []interface{}{}
	if len(modes) > 0 {
		args = append(args, pq.Array(modes))
		sb.WriteString(fmt.Sprintf(" WHERE mode = ANY($%d)", len(args)))
	}

	args = append(args, limit)
	sb.WriteString(fmt.Sprintf(" ORDER BY recorded_at DESC LIMIT $%d", len(args)))

	var events []*domain.HistoryEvent
	if err := r.db.SelectContext(ctx, &events, sb.String(), args...); err != nil {
		r.logger.Error("Failed to list history",
			zap.Int("limit", limit),
			zap.Strings("modes", modes),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return events, nil
}
