package history

import (
	"context"
	"fmt"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
)

// StreamSink публикует события истории в Redis Stream для архивного воркера
type StreamSink struct {
	streams repository.StreamRepository
	stream  string
}

func NewStreamSink(streams repository.StreamRepository, stream string) repository.HistorySink {
	if stream == "" {
		stream = domain.StreamTripHistory
	}
	return &StreamSink{
		streams: streams,
		stream:  stream,
	}
}

func (s *StreamSink) Name() string {
	return "stream"
}

func (s *StreamSink) Append(ctx context.Context, event *domain.HistoryEvent) error {
	if err := s.streams.PublishToStream(ctx, s.stream, event); err != nil {
		return fmt.Errorf("failed to publish history event: %w", err)
	}
	return nil
}
