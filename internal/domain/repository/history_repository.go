package repository

import (
	"context"

	"github.com/trip-planner/internal/domain"
)

// HistorySink - получатель строк истории поездок (файл, стрим)
type HistorySink interface {
	// Name возвращает имя получателя для логов
	Name() string

	// Append дописывает запись истории
	Append(ctx context.Context, event *domain.HistoryEvent) error
}

// HistoryArchiveRepository - архив истории поездок в БД
type HistoryArchiveRepository interface {
	// Save сохраняет событие, повторное сохранение того же ID игнорируется
	Save(ctx context.Context, event *domain.HistoryEvent) error

	// ListRecent возвращает последние записи, опционально фильтруя по режимам
	ListRecent(ctx context.Context, limit int, modes []string) ([]*domain.HistoryEvent, error)
}
