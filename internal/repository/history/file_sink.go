package history

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
)

// FileSink дописывает строки истории в текстовый файл, по одной на поездку.
// Файл открывается на каждую запись: O_APPEND гарантирует, что строки
// разных процессов не перезаписывают друг друга.
type FileSink struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewFileSink создает получатель истории для файла path
func NewFileSink(path string, logger *zap.Logger) repository.HistorySink {
	return &FileSink{
		path:   path,
		logger: logger,
	}
}

func (s *FileSink) Name() string {
	return "file"
}

// Append дописывает event.Line и перевод строки одним вызовом Write
func (s *FileSink) Append(_ context.Context, event *domain.HistoryEvent) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = stderrors.Join(err, fmt.Errorf("failed to close history file: %w", cerr))
		}
	}()

	if _, err = f.Write([]byte(event.Line + "\n")); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("failed to sync history file: %w", err)
	}

	s.logger.Debug("History line appended",
		zap.String("path", s.path),
		zap.String("event_id", event.ID.String()))
	return nil
}
