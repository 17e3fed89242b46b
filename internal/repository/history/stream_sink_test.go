package history_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/repository/history"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ConsumePending(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ClaimIdle(ctx context.Context, stream, group, consumer string, minIdle time.Duration, count int) (int, error) {
	args := m.Called(ctx, stream, group, consumer, minIdle, count)
	return args.Int(0), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	return m.Called(ctx, stream, group, messageIDs).Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	return m.Called(ctx, stream, data).Error(0)
}

func TestStreamSink_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes to configured stream", func(t *testing.T) {
		streams := &MockStreamRepository{}
		e := event("A -> B (car, 1.00 km, 00:01:00)")
		streams.On("PublishToStream", ctx, "custom:stream", e).Return(nil).Once()

		sink := history.NewStreamSink(streams, "custom:stream")

		assert.NoError(t, sink.Append(ctx, e))
		assert.Equal(t, "stream", sink.Name())
		streams.AssertExpectations(t)
	})

	t.Run("empty name falls back to default stream", func(t *testing.T) {
		streams := &MockStreamRepository{}
		e := event("line")
		streams.On("PublishToStream", ctx, domain.StreamTripHistory, e).Return(nil).Once()

		assert.NoError(t, history.NewStreamSink(streams, "").Append(ctx, e))
		streams.AssertExpectations(t)
	})

	t.Run("publish failure", func(t *testing.T) {
		streams := &MockStreamRepository{}
		streams.On("PublishToStream", ctx, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		err := history.NewStreamSink(streams, "s").Append(ctx, event("line"))
		assert.ErrorContains(t, err, "connection refused")
	})
}
