package domain

// VehicleProfile - профиль передвижения
type VehicleProfile string

const (
	VehicleCar      VehicleProfile = "car"
	VehicleBike     VehicleProfile = "bike"
	VehicleFoot     VehicleProfile = "foot"
	VehicleAirplane VehicleProfile = "airplane"
)

// DefaultVehicle подставляется вместо нераспознанного профиля
const DefaultVehicle = VehicleCar

// VehicleProfiles - все поддерживаемые профили
var VehicleProfiles = []VehicleProfile{VehicleCar, VehicleBike, VehicleFoot, VehicleAirplane}

// IsValid проверяет, что профиль известен
func (v VehicleProfile) IsValid() bool {
	for _, p := range VehicleProfiles {
		if v == p {
			return true
		}
	}
	return false
}

func (v VehicleProfile) String() string {
	return string(v)
}

// TripMode - способ расчета поездки
type TripMode string

const (
	TripModeGround TripMode = "ground"
	TripModeAir    TripMode = "air"
)

func (m TripMode) String() string {
	return string(m)
}

// Unit - единицы отображения расстояния
type Unit string

const (
	UnitKm    Unit = "km"
	UnitMiles Unit = "miles"
)

// DefaultUnit подставляется вместо нераспознанной единицы
const DefaultUnit = UnitKm

// IsValid проверяет, что единица известна
func (u Unit) IsValid() bool {
	return u == UnitKm || u == UnitMiles
}

func (u Unit) String() string {
	return string(u)
}
