package utils

import (
	"fmt"

	"github.com/trip-planner/internal/domain"
)

// MilesDivisor - делитель км -> мили. Именно 1.61, а не 1.60934:
// строки в истории поездок должны совпадать с уже записанными.
const MilesDivisor = 1.61

// KmToMiles переводит километры в мили
func KmToMiles(km float64) float64 {
	return km / MilesDivisor
}

// FormatDuration форматирует миллисекунды как HH:MM:SS. Часы не ограничены 24.
func FormatDuration(ms int64) string {
	return formatClock(ms / 1000)
}

// FormatDurationSeconds форматирует длительность в секундах как HH:MM:SS
func FormatDurationSeconds(seconds float64) string {
	return formatClock(int64(seconds))
}

func formatClock(totalSeconds int64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatDistance форматирует расстояние в метрах в выбранных единицах, два знака после запятой
func FormatDistance(meters float64, unit domain.Unit) string {
	km := meters / 1000.0
	if unit == domain.UnitMiles {
		return fmt.Sprintf("%.2f miles", KmToMiles(km))
	}
	return fmt.Sprintf("%.2f km", km)
}

// FormatStepDistance показывает расстояние шага маршрута сразу в км и милях
func FormatStepDistance(meters float64) string {
	km := meters / 1000.0
	return fmt.Sprintf("%.2f km / %.2f mi", km, KmToMiles(km))
}

// FormatFlightHours форматирует длительность перелета в часах
func FormatFlightHours(seconds float64) string {
	return fmt.Sprintf("%.2f hrs", seconds/3600.0)
}
