package usecase

import (
	"strings"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/pkg/errors"
)

// InputPolicy определяет, что делать с нераспознанным профилем или единицей
type InputPolicy string

const (
	// InputPolicyDefault подставляет car / km вместо неизвестного значения
	InputPolicyDefault InputPolicy = "default"
	// InputPolicyReject возвращает ошибку валидации
	InputPolicyReject InputPolicy = "reject"
)

// ParseInputPolicy разбирает политику, все кроме reject трактуется как default
func ParseInputPolicy(s string) InputPolicy {
	if InputPolicy(strings.ToLower(strings.TrimSpace(s))) == InputPolicyReject {
		return InputPolicyReject
	}
	return InputPolicyDefault
}

// NormalizeVehicle приводит ввод к профилю. defaulted = true, если значение
// не распознано и заменено на car. Пустой ввод означает профиль по умолчанию.
func NormalizeVehicle(raw string, policy InputPolicy) (vehicle domain.VehicleProfile, defaulted bool, err error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return domain.DefaultVehicle, false, nil
	}

	vehicle = domain.VehicleProfile(value)
	if vehicle.IsValid() {
		return vehicle, false, nil
	}

	if policy == InputPolicyReject {
		return "", false, errors.ErrInvalidVehicle.WithDetails(map[string]interface{}{
			"vehicle": raw,
			"allowed": domain.VehicleProfiles,
		})
	}
	return domain.DefaultVehicle, true, nil
}

// NormalizeUnit приводит ввод к единице измерения, неизвестное значение -> km
func NormalizeUnit(raw string, policy InputPolicy) (unit domain.Unit, defaulted bool, err error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return domain.DefaultUnit, false, nil
	}

	unit = domain.Unit(value)
	if unit.IsValid() {
		return unit, false, nil
	}

	if policy == InputPolicyReject {
		return "", false, errors.ErrInvalidUnit.WithDetails(map[string]interface{}{
			"units":   raw,
			"allowed": []domain.Unit{domain.UnitKm, domain.UnitMiles},
		})
	}
	return domain.DefaultUnit, true, nil
}
