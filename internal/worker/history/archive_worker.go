package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/worker"
)

const (
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second            // пауза после ошибки чтения или сохранения
	claimInterval   = 30 * time.Second       // как часто забирать зависшие сообщения
	claimMinIdle    = time.Minute            // сколько сообщение должно провисеть в pending чужого consumer'а
)

// ArchiveWorker переносит события истории из стрима в архив БД
type ArchiveWorker struct {
	*worker.BaseWorker
	streamRepo  repository.StreamRepository
	archiveRepo repository.HistoryArchiveRepository
	batchSize   int

	// retryPending - в pending этого consumer'а есть неподтвержденные сообщения
	retryPending bool
	lastClaim    time.Time
}

func NewArchiveWorker(
	streamRepo repository.StreamRepository,
	archiveRepo repository.HistoryArchiveRepository,
	stream string,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *ArchiveWorker {
	if stream == "" {
		stream = domain.StreamTripHistory
	}
	w := &ArchiveWorker{
		BaseWorker:  worker.NewBaseWorker("trip-history-archive", stream, consumerGroup, logger),
		streamRepo:  streamRepo,
		archiveRepo: archiveRepo,
		batchSize:   batchSize,
	}
	// после рестарта у consumer'а может остаться свой backlog
	w.retryPending = true
	return w
}

func (w *ArchiveWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ArchiveWorker",
		zap.String("stream", w.Stream()),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.Stream(), w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.ProcessBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.pause(ctx, errorSleep)
			continue
		}
		if processed == 0 {
			w.pause(ctx, emptyQueueSleep)
		}
	}
}

func (w *ArchiveWorker) pause(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-w.StopChan():
	case <-ctx.Done():
	}
}

// ProcessBatch читает пачку сообщений и сохраняет их в архив.
// Сначала перечитывается pending (свой и перехваченный у мертвых consumer'ов), затем новые сообщения.
// Битые сообщения подтверждаются сразу, неудачно сохраненные остаются в pending до следующей пачки.
func (w *ArchiveWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, pending, err := w.fetch(ctx)
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	ackIDs := make([]string, 0, len(messages))
	saved, failed := 0, 0

	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		if err := w.archiveRepo.Save(ctx, event); err != nil {
			logger.Error("Failed to archive history event",
				zap.String("message_id", msg.ID),
				zap.String("event_id", event.ID.String()),
				zap.Error(err))
			failed++
			continue
		}

		saved++
		ackIDs = append(ackIDs, msg.ID)
	}

	ackFailed := false
	if len(ackIDs) > 0 {
		if err := w.streamRepo.AckMessages(ctx, w.Stream(), w.ConsumerGroup(), ackIDs); err != nil {
			logger.Error("Failed to ack messages", zap.Error(err))
			ackFailed = true
		}
	}

	// полная пачка pending значит, что за ней может быть еще backlog
	w.retryPending = failed > 0 || ackFailed || pending >= w.batchSize

	logger.Info("Batch processed",
		zap.Int("received", len(messages)),
		zap.Int("redelivered", pending),
		zap.Int("archived", saved),
		zap.Int("failed", failed),
		zap.Int("acked", len(ackIDs)))

	if failed > 0 {
		return len(messages), fmt.Errorf("failed to archive %d of %d events", failed, len(messages))
	}
	return len(messages), nil
}

// fetch собирает пачку: pending-сообщения, затем новые в пределах batchSize.
// Второе значение - сколько сообщений пришло повторно.
func (w *ArchiveWorker) fetch(ctx context.Context) ([]domain.StreamMessage, int, error) {
	if time.Since(w.lastClaim) >= claimInterval {
		claimed, err := w.streamRepo.ClaimIdle(ctx, w.Stream(), w.ConsumerGroup(), w.ConsumerName(), claimMinIdle, w.batchSize)
		if err != nil {
			return nil, 0, err
		}
		w.lastClaim = time.Now()
		if claimed > 0 {
			w.retryPending = true
		}
	}

	var messages []domain.StreamMessage
	if w.retryPending {
		pending, err := w.streamRepo.ConsumePending(ctx, w.Stream(), w.ConsumerGroup(), w.ConsumerName(), w.batchSize)
		if err != nil {
			return nil, 0, err
		}
		messages = pending
		w.retryPending = len(pending) > 0
	}
	pending := len(messages)

	if room := w.batchSize - pending; room > 0 {
		fresh, err := w.streamRepo.ConsumeBatch(ctx, w.Stream(), w.ConsumerGroup(), w.ConsumerName(), room)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to consume batch: %w", err)
		}
		messages = append(messages, fresh...)
	}

	return messages, pending, nil
}

func parseMessage(msg domain.StreamMessage) (*domain.HistoryEvent, error) {
	data, ok := msg.Data["data"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var event domain.HistoryEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.Line == "" {
		return nil, fmt.Errorf("event %s has empty line", event.ID)
	}

	return &event, nil
}
