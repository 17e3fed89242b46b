package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/repository/postgres"
	"github.com/trip-planner/internal/repository/postgres/testhelpers"
)

func newEvent(line string, mode domain.TripMode, at time.Time) *domain.HistoryEvent {
	return &domain.HistoryEvent{
		ID:              uuid.New(),
		Line:            line,
		Origin:          "New York",
		Destination:     "Boston",
		Mode:            mode,
		Vehicle:         "car",
		DistanceMeters:  346000,
		DurationSeconds: 14400,
		RecordedAt:      at.UTC(),
	}
}

func setupArchive(t *testing.T) postgres.HistoryArchive {
	tdb := testhelpers.SetupTestDB(t)
	repo := postgres.NewHistoryArchiveRepository(tdb.NewDBForTest())

	ctx := context.Background()
	require.NoError(t, repo.Migrate(ctx))
	require.NoError(t, tdb.Cleanup(ctx))
	return repo
}

func TestHistoryArchiveRepository_SaveAndList(t *testing.T) {
	repo := setupArchive(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	older := newEvent("older", domain.TripModeGround, now.Add(-time.Hour))
	newer := newEvent("newer", domain.TripModeAir, now)
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	events, err := repo.ListRecent(ctx, 10, nil)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "newer", events[0].Line)
	assert.Equal(t, "older", events[1].Line)
	assert.Equal(t, older.ID, events[1].ID)
	assert.Equal(t, domain.TripModeGround, events[1].Mode)
}

func TestHistoryArchiveRepository_SaveIsIdempotent(t *testing.T) {
	repo := setupArchive(t)
	ctx := context.Background()

	event := newEvent("once", domain.TripModeGround, time.Now())
	require.NoError(t, repo.Save(ctx, event))
	require.NoError(t, repo.Save(ctx, event))

	events, err := repo.ListRecent(ctx, 10, nil)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestHistoryArchiveRepository_ListRecent_Filters(t *testing.T) {
	repo := setupArchive(t)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(ctx, newEvent("ground", domain.TripModeGround, now.Add(time.Duration(i)*time.Minute))))
	}
	require.NoError(t, repo.Save(ctx, newEvent("air", domain.TripModeAir, now)))

	t.Run("by mode", func(t *testing.T) {
		events, err := repo.ListRecent(ctx, 10, []string{"air"})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "air", events[0].Line)
	})

	t.Run("limit", func(t *testing.T) {
		events, err := repo.ListRecent(ctx, 2, []string{"ground", "air"})
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("zero limit uses default", func(t *testing.T) {
		events, err := repo.ListRecent(ctx, 0, nil)
		require.NoError(t, err)
		assert.Len(t, events, 4)
	})
}
