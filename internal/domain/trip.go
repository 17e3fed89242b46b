package domain

// Instruction - шаг маршрута
type Instruction struct {
	Text           string  `json:"text"`
	DistanceMeters float64 `json:"distance_meters"`
}

// GroundRoute - маршрут, полученный от сервиса маршрутизации
type GroundRoute struct {
	DistanceMeters      float64       `json:"distance_meters"`
	DurationMs          int64         `json:"duration_ms"`
	ElevationGainMeters float64       `json:"elevation_gain_meters"`
	ElevationLossMeters float64       `json:"elevation_loss_meters"`
	Instructions        []Instruction `json:"instructions"`
	// Points - геометрия маршрута, если сервис ее вернул
	Points []Point `json:"points,omitempty"`
}

// AirEstimate - оценка перелета по дуге большого круга
type AirEstimate struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	CostUSD         float64 `json:"cost_usd"`
}

// TripResult - нормализованный результат расчета поездки в любом режиме.
// Для air заполняется EstimatedCostUSD, для ground - поля высоты и инструкции.
type TripResult struct {
	Origin              ResolvedLocation `json:"origin"`
	Destination         ResolvedLocation `json:"destination"`
	Mode                TripMode         `json:"mode"`
	Vehicle             VehicleProfile   `json:"vehicle"`
	DistanceMeters      float64          `json:"distance_meters"`
	DurationSeconds     float64          `json:"duration_seconds"`
	ElevationGainMeters float64          `json:"elevation_gain_meters"`
	ElevationLossMeters float64          `json:"elevation_loss_meters"`
	FuelLiters          float64          `json:"fuel_liters"`
	EstimatedCostUSD    float64          `json:"estimated_cost_usd"`
	Instructions        []Instruction    `json:"instructions"`
	Points              []Point          `json:"points,omitempty"`
}

// DistanceKm возвращает расстояние в километрах
func (r *TripResult) DistanceKm() float64 {
	return r.DistanceMeters / 1000.0
}

// IsAir проверяет, рассчитана ли поездка как перелет
func (r *TripResult) IsAir() bool {
	return r.Mode == TripModeAir
}
