package domain

type Point struct {
	Lat float64 `json:"lat" db:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" db:"lon" validate:"min=-180,max=180"`
}
