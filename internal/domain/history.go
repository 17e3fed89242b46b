package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamTripHistory = "stream:trip:history"
)

// HistoryEvent - запись истории поездок, публикуемая в стрим и архивируемая воркером
type HistoryEvent struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Line            string    `json:"line" db:"line"`
	Origin          string    `json:"origin" db:"origin"`
	Destination     string    `json:"destination" db:"destination"`
	Mode            TripMode  `json:"mode" db:"mode"`
	Vehicle         string    `json:"vehicle" db:"vehicle"`
	DistanceMeters  float64   `json:"distance_meters" db:"distance_meters"`
	DurationSeconds float64   `json:"duration_seconds" db:"duration_seconds"`
	RecordedAt      time.Time `json:"recorded_at" db:"recorded_at"`
}

// NewHistoryEvent создает событие истории для результата поездки
func NewHistoryEvent(result *TripResult, line string, now time.Time) *HistoryEvent {
	return &HistoryEvent{
		ID:              uuid.New(),
		Line:            line,
		Origin:          result.Origin.DisplayName,
		Destination:     result.Destination.DisplayName,
		Mode:            result.Mode,
		Vehicle:         result.Vehicle.String(),
		DistanceMeters:  result.DistanceMeters,
		DurationSeconds: result.DurationSeconds,
		RecordedAt:      now.UTC(),
	}
}
