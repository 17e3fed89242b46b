package worker

import (
	"context"
)

// Worker - фоновый процесс, читающий стрим
type Worker interface {
	// Start блокирует до остановки или отмены ctx
	Start(ctx context.Context) error

	Stop() error

	Name() string
}
