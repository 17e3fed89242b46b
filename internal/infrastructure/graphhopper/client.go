package graphhopper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/trip-planner/internal/config"
	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/pkg/errors"
)

const serviceName = "graphhopper"

// Client - клиент GraphHopper API (геокодирование и маршрутизация)
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	locale     string
	logger     *zap.Logger
}

// NewClient создает новый клиент для GraphHopper API
func NewClient(cfg *config.GraphHopperConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		locale:  cfg.Locale,
		logger:  logger,
	}
}

// Resolve геокодирует текстовый запрос, берется первый найденный результат
func (c *Client) Resolve(ctx context.Context, query string) (*domain.ResolvedLocation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.ErrResolutionFailed.WithCause(&errors.UpstreamError{
			Service:    serviceName,
			StatusCode: http.StatusBadRequest,
			Message:    "empty location query",
		})
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", "1")
	if c.locale != "" {
		params.Set("locale", c.locale)
	}
	params.Set("key", c.apiKey)

	var geoResp geocodeResponse
	status, err := c.get(ctx, "/geocode", params, &geoResp)
	if err != nil {
		return nil, errors.ErrResolutionFailed.WithCause(err).WithDetails(map[string]interface{}{
			"query": query,
		})
	}

	if status != http.StatusOK || len(geoResp.Hits) == 0 {
		message := geoResp.Message
		if message == "" {
			message = "no results"
		}
		c.logger.Warn("Geocoding returned no location",
			zap.String("query", query),
			zap.Int("status_code", status),
			zap.String("message", message))
		return nil, errors.ErrResolutionFailed.WithCause(&errors.UpstreamError{
			Service:    serviceName,
			StatusCode: status,
			Message:    message,
		}).WithDetails(map[string]interface{}{
			"query": query,
		})
	}

	hit := geoResp.Hits[0]
	if hit.Point == nil {
		c.logger.Warn("Geocoding hit has no coordinates",
			zap.String("query", query),
			zap.String("name", hit.Name))
		return nil, errors.ErrResolutionFailed.WithCause(&errors.UpstreamError{
			Service:    serviceName,
			StatusCode: status,
			Message:    "result has no coordinates",
		}).WithDetails(map[string]interface{}{
			"query": query,
		})
	}

	name := hit.Name
	if name == "" {
		name = query
	}
	if hit.State != "" && hit.Country != "" {
		name = fmt.Sprintf("%s, %s, %s", name, hit.State, hit.Country)
	}

	location := &domain.ResolvedLocation{
		DisplayName: name,
		Country:     hit.Country,
		State:       hit.State,
		OSMValue:    hit.OSMValue,
		Coordinates: &domain.Point{Lat: hit.Point.Lat, Lon: hit.Point.Lng},
	}

	c.logger.Debug("Location resolved",
		zap.String("query", query),
		zap.String("name", location.DisplayName),
		zap.String("country", location.Country),
		zap.Float64("lat", hit.Point.Lat),
		zap.Float64("lon", hit.Point.Lng))

	return location, nil
}

// Route строит наземный маршрут между двумя точками
func (c *Client) Route(
	ctx context.Context,
	origin domain.ResolvedLocation,
	destination domain.ResolvedLocation,
	vehicle domain.VehicleProfile,
) (*domain.GroundRoute, error) {
	if !origin.HasCoordinates() || !destination.HasCoordinates() {
		return nil, errors.ErrResolutionMissing
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("vehicle", vehicle.String())
	if c.locale != "" {
		params.Set("locale", c.locale)
	}
	params.Set("points_encoded", "false")
	params.Set("instructions", "true")
	params.Set("calc_points", "true")
	params.Add("point", formatPoint(*origin.Coordinates))
	params.Add("point", formatPoint(*destination.Coordinates))

	var routeResp routeResponse
	status, err := c.get(ctx, "/route", params, &routeResp)
	if err != nil {
		return nil, errors.ErrRoutingFailed.WithCause(err)
	}

	if status != http.StatusOK || len(routeResp.Paths) == 0 {
		message := routeResp.Message
		if message == "" {
			message = "no path found"
		}
		c.logger.Warn("Routing returned no path",
			zap.Int("status_code", status),
			zap.String("vehicle", vehicle.String()),
			zap.String("message", message))
		return nil, errors.ErrRoutingFailed.WithCause(&errors.UpstreamError{
			Service:    serviceName,
			StatusCode: status,
			Message:    message,
		})
	}

	path := routeResp.Paths[0]
	route := &domain.GroundRoute{
		DistanceMeters:      path.Distance,
		DurationMs:          path.Time,
		ElevationGainMeters: path.Ascend,
		ElevationLossMeters: path.Descend,
		Instructions:        make([]domain.Instruction, 0, len(path.Instructions)),
	}
	for _, instr := range path.Instructions {
		route.Instructions = append(route.Instructions, domain.Instruction{
			Text:           instr.Text,
			DistanceMeters: instr.Distance,
		})
	}
	if path.Points != nil {
		route.Points = make([]domain.Point, 0, len(path.Points.Coordinates))
		for _, coord := range path.Points.Coordinates {
			if len(coord) < 2 {
				continue
			}
			route.Points = append(route.Points, domain.Point{Lat: coord[1], Lon: coord[0]})
		}
	}

	c.logger.Debug("GraphHopper route call successful",
		zap.Float64("distance_m", route.DistanceMeters),
		zap.Int64("time_ms", route.DurationMs),
		zap.Int("instructions", len(route.Instructions)))

	return route, nil
}

// get выполняет GET-запрос и декодирует JSON-ответ в out.
// Ошибка возвращается только если ответ не получен или не разобран; статус отдается вызывающему.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) (int, error) {
	reqURL := c.baseURL + path + "?" + params.Encode()

	c.logger.Debug("Calling GraphHopper API",
		zap.String("url", maskKey(reqURL, c.apiKey)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("path", path), zap.Error(err))
		return 0, &errors.UpstreamError{
			Service: serviceName,
			Message: err.Error(),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read response", zap.Error(err))
		return resp.StatusCode, &errors.UpstreamError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to read response: %v", err),
		}
	}

	if len(body) == 0 {
		return resp.StatusCode, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		if resp.StatusCode != http.StatusOK {
			// тело ошибки не в формате ответа, достаточно статуса
			c.logger.Error("GraphHopper API returned error",
				zap.Int("status_code", resp.StatusCode),
				zap.String("body", string(body)))
			return resp.StatusCode, nil
		}
		c.logger.Error("Failed to decode response", zap.Error(err))
		return resp.StatusCode, &errors.UpstreamError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to decode response: %v", err),
		}
	}

	return resp.StatusCode, nil
}

func formatPoint(p domain.Point) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lon, 'f', -1, 64)
}

func maskKey(rawURL, key string) string {
	if key == "" {
		return rawURL
	}
	return strings.ReplaceAll(rawURL, url.QueryEscape(key), "***")
}
