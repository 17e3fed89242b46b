package repository

import (
	"context"
	"time"

	"github.com/trip-planner/internal/domain"
)

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	// ConsumeBatch читает до count новых сообщений
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// ConsumePending перечитывает до count сообщений, выданных consumer'у, но не подтвержденных
	ConsumePending(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// ClaimIdle забирает consumer'у сообщения, которые висят в pending дольше minIdle.
	// Возвращает число перехваченных сообщений.
	ClaimIdle(ctx context.Context, stream, group, consumer string, minIdle time.Duration, count int) (int, error)

	// AckMessages подтверждает обработку сообщений
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// CreateConsumerGroup создаёт consumer group
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream публикует сообщение в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
