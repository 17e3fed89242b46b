package usecase_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/trip-planner/internal/domain"
)

// MockLocationResolver is a mock of LocationResolver
type MockLocationResolver struct {
	mock.Mock
}

func (m *MockLocationResolver) Resolve(ctx context.Context, query string) (*domain.ResolvedLocation, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedLocation), args.Error(1)
}

// MockGroundRouteClient is a mock of GroundRouteClient
type MockGroundRouteClient struct {
	mock.Mock
}

func (m *MockGroundRouteClient) Route(
	ctx context.Context,
	origin domain.ResolvedLocation,
	destination domain.ResolvedLocation,
	vehicle domain.VehicleProfile,
) (*domain.GroundRoute, error) {
	args := m.Called(ctx, origin, destination, vehicle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroundRoute), args.Error(1)
}

// memorySink keeps appended events in memory
type memorySink struct {
	mu     sync.Mutex
	name   string
	err    error
	events []*domain.HistoryEvent
}

func (s *memorySink) Name() string {
	return s.name
}

func (s *memorySink) Append(_ context.Context, event *domain.HistoryEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func (s *memorySink) lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Line)
	}
	return out
}

func location(name, country string, lat, lon float64) domain.ResolvedLocation {
	return domain.NewResolvedLocation(name, country, lat, lon)
}
