package domain

// ResolvedLocation - результат геокодирования текстового запроса.
// Coordinates равен nil, если геокодирование не дало координат.
type ResolvedLocation struct {
	DisplayName string `json:"display_name"`
	Country     string `json:"country"`
	State       string `json:"state,omitempty"`
	OSMValue    string `json:"osm_value,omitempty"`
	Coordinates *Point `json:"coordinates,omitempty" validate:"omitempty"`
}

// NewResolvedLocation создает локацию с координатами
func NewResolvedLocation(name, country string, lat, lon float64) ResolvedLocation {
	return ResolvedLocation{
		DisplayName: name,
		Country:     country,
		Coordinates: &Point{Lat: lat, Lon: lon},
	}
}

// HasCoordinates проверяет наличие координат
func (l ResolvedLocation) HasCoordinates() bool {
	return l.Coordinates != nil
}

// SameCountry сравнивает страны буквально: регистр учитывается,
// две пустые страны считаются одинаковыми.
func SameCountry(a, b ResolvedLocation) bool {
	return a.Country == b.Country
}
