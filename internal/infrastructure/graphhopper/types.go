package graphhopper

// geocodeResponse - ответ /geocode
type geocodeResponse struct {
	Hits    []geocodeHit `json:"hits"`
	Message string       `json:"message"`
}

// geocodePoint - координаты хита; nil, если сервис не вернул point
type geocodePoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geocodeHit struct {
	Point    *geocodePoint `json:"point"`
	Name     string        `json:"name"`
	Country  string        `json:"country"`
	State    string        `json:"state"`
	OSMValue string        `json:"osm_value"`
}

// routeResponse - ответ /route при points_encoded=false
type routeResponse struct {
	Paths   []routePath `json:"paths"`
	Message string      `json:"message"`
}

type routePath struct {
	Distance     float64            `json:"distance"`
	Time         int64              `json:"time"`
	Ascend       float64            `json:"ascend"`
	Descend      float64            `json:"descend"`
	Instructions []routeInstruction `json:"instructions"`
	Points       *routePoints       `json:"points"`
}

type routeInstruction struct {
	Text     string  `json:"text"`
	Distance float64 `json:"distance"`
}

// routePoints - GeoJSON LineString, координаты в порядке [lng, lat] (или [lng, lat, ele])
type routePoints struct {
	Coordinates [][]float64 `json:"coordinates"`
}
