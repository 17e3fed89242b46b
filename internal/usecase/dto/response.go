package dto

import (
	"time"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/pkg/utils"
)

// TripResponse - ответ на расчет поездки
type TripResponse struct {
	Origin              domain.ResolvedLocation `json:"origin"`
	Destination         domain.ResolvedLocation `json:"destination"`
	Mode                domain.TripMode         `json:"mode"`
	Vehicle             domain.VehicleProfile   `json:"vehicle"`
	Units               domain.Unit             `json:"units"`
	DistanceMeters      float64                 `json:"distance_meters"`
	Distance            string                  `json:"distance"`
	DurationSeconds     float64                 `json:"duration_seconds"`
	Duration            string                  `json:"duration"`
	ElevationGainMeters float64                 `json:"elevation_gain_meters"`
	ElevationLossMeters float64                 `json:"elevation_loss_meters"`
	FuelLiters          float64                 `json:"fuel_liters"`
	EstimatedCostUSD    float64                 `json:"estimated_cost_usd"`
	Instructions        []InstructionDTO        `json:"instructions"`
	HistoryLine         string                  `json:"history_line"`
	HistoryError        string                  `json:"history_error,omitempty"`
	VehicleDefaulted    bool                    `json:"vehicle_defaulted,omitempty"`
	UnitsDefaulted      bool                    `json:"units_defaulted,omitempty"`
}

// InstructionDTO - шаг маршрута с отформатированным расстоянием
type InstructionDTO struct {
	Text           string  `json:"text"`
	DistanceMeters float64 `json:"distance_meters"`
	Distance       string  `json:"distance"`
}

// HistoryEntryDTO - запись архива истории
type HistoryEntryDTO struct {
	ID              string    `json:"id"`
	Line            string    `json:"line"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	Mode            string    `json:"mode"`
	Vehicle         string    `json:"vehicle"`
	DistanceMeters  float64   `json:"distance_meters"`
	DurationSeconds float64   `json:"duration_seconds"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// ConvertTripResult конвертирует результат поездки в ответ API
func ConvertTripResult(result *domain.TripResult, unit domain.Unit) TripResponse {
	duration := utils.FormatDurationSeconds(result.DurationSeconds)
	if result.IsAir() {
		duration = utils.FormatFlightHours(result.DurationSeconds)
	}

	instructions := make([]InstructionDTO, 0, len(result.Instructions))
	for _, instr := range result.Instructions {
		instructions = append(instructions, InstructionDTO{
			Text:           instr.Text,
			DistanceMeters: instr.DistanceMeters,
			Distance:       utils.FormatDistance(instr.DistanceMeters, unit),
		})
	}

	return TripResponse{
		Origin:              result.Origin,
		Destination:         result.Destination,
		Mode:                result.Mode,
		Vehicle:             result.Vehicle,
		Units:               unit,
		DistanceMeters:      result.DistanceMeters,
		Distance:            utils.FormatDistance(result.DistanceMeters, unit),
		DurationSeconds:     result.DurationSeconds,
		Duration:            duration,
		ElevationGainMeters: result.ElevationGainMeters,
		ElevationLossMeters: result.ElevationLossMeters,
		FuelLiters:          result.FuelLiters,
		EstimatedCostUSD:    result.EstimatedCostUSD,
		Instructions:        instructions,
	}
}

// ConvertHistoryEvent конвертирует событие истории в DTO
func ConvertHistoryEvent(event *domain.HistoryEvent) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:              event.ID.String(),
		Line:            event.Line,
		Origin:          event.Origin,
		Destination:     event.Destination,
		Mode:            event.Mode.String(),
		Vehicle:         event.Vehicle,
		DistanceMeters:  event.DistanceMeters,
		DurationSeconds: event.DurationSeconds,
		RecordedAt:      event.RecordedAt,
	}
}
