package presenter

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/pkg/utils"
)

const (
	graphHopperMapsURL = "https://graphhopper.com/maps/"
	openStreetMapURL   = "https://www.openstreetmap.org/"
)

// MapURL возвращает ссылку на карту: маршрут GraphHopper для ground,
// OpenStreetMap с центром в середине дуги большого круга для air.
// Пустая строка, если у точек нет координат.
func MapURL(result *domain.TripResult) string {
	if !result.Origin.HasCoordinates() || !result.Destination.HasCoordinates() {
		return ""
	}
	o, d := result.Origin.Coordinates, result.Destination.Coordinates

	if result.IsAir() {
		lat, lon := utils.Midpoint(o.Lat, o.Lon, d.Lat, d.Lon)
		q := url.Values{}
		q.Set("mlat", formatCoord(lat))
		q.Set("mlon", formatCoord(lon))
		return fmt.Sprintf("%s?%s#map=4/%s/%s", openStreetMapURL, q.Encode(), formatCoord(lat), formatCoord(lon))
	}

	q := url.Values{}
	q.Add("point", formatCoord(o.Lat)+","+formatCoord(o.Lon))
	q.Add("point", formatCoord(d.Lat)+","+formatCoord(d.Lon))
	q.Set("profile", result.Vehicle.String())
	return graphHopperMapsURL + "?" + q.Encode()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 5, 64)
}
