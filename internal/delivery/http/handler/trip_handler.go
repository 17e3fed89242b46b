package handler

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/pkg/utils"
	"github.com/trip-planner/internal/pkg/validator"
	"github.com/trip-planner/internal/usecase"
	"github.com/trip-planner/internal/usecase/dto"
)

// TripPlanner - сценарий расчета поездки
type TripPlanner interface {
	PlanTrip(ctx context.Context, req dto.PlanTripRequest) (*usecase.TripOutcome, error)
}

// TripHandler - обработчик расчета поездок и истории
type TripHandler struct {
	tripUC  TripPlanner
	archive repository.HistoryArchiveRepository
	logger  *zap.Logger
}

// NewTripHandler создает обработчик. archive может быть nil, если БД не настроена.
func NewTripHandler(tripUC TripPlanner, archive repository.HistoryArchiveRepository, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripUC:  tripUC,
		archive: archive,
		logger:  logger,
	}
}

// PlanTrip godoc
// @Summary Расчет поездки
// @Description Геокодирует обе точки, выбирает наземный маршрут или перелет и записывает строку в историю
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body dto.PlanTripRequest true "Точки и профиль"
// @Success 200 {object} utils.SuccessResponse{data=dto.TripResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/trips [post]
func (h *TripHandler) PlanTrip(c *fiber.Ctx) error {
	start := time.Now()

	var req dto.PlanTripRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithCause(err))
	}

	req.From = strings.TrimSpace(req.From)
	req.To = strings.TrimSpace(req.To)

	if err := validator.ValidateRequest(&req); err != nil {
		return utils.SendError(c, err)
	}

	outcome, err := h.tripUC.PlanTrip(c.UserContext(), req)
	if err != nil {
		h.logger.Warn("Trip planning failed",
			zap.String("from", req.From),
			zap.String("to", req.To),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	resp := dto.ConvertTripResult(outcome.Result, outcome.Unit)
	resp.HistoryLine = outcome.HistoryLine
	resp.VehicleDefaulted = outcome.VehicleDefaulted
	resp.UnitsDefaulted = outcome.UnitDefaulted
	if outcome.HistoryErr != nil {
		resp.HistoryError = outcome.HistoryErr.Error()
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

// ListHistory godoc
// @Summary История поездок
// @Description Последние записи из архива истории, от новых к старым
// @Tags Trips
// @Produce json
// @Param limit query int false "Количество записей" default(50)
// @Param modes query string false "Режимы через запятую (ground, air)"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.HistoryEntryDTO}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/trips/history [get]
func (h *TripHandler) ListHistory(c *fiber.Ctx) error {
	if h.archive == nil {
		return utils.SendError(c, errors.ErrArchiveDisabled)
	}

	req := dto.HistoryListRequest{
		Limit: c.QueryInt("limit", 50),
	}
	if modes := c.Query("modes"); modes != "" {
		for _, m := range strings.Split(modes, ",") {
			if m = strings.TrimSpace(m); m != "" {
				req.Modes = append(req.Modes, strings.ToLower(m))
			}
		}
	}

	if err := validator.ValidateRequest(&req); err != nil {
		return utils.SendError(c, err)
	}

	events, err := h.archive.ListRecent(c.UserContext(), req.Limit, req.Modes)
	if err != nil {
		h.logger.Error("Failed to list history", zap.Error(err))
		return utils.SendError(c, errors.ErrDatabaseError.WithCause(err))
	}

	entries := make([]dto.HistoryEntryDTO, 0, len(events))
	for _, e := range events {
		entries = append(entries, dto.ConvertHistoryEvent(e))
	}

	return utils.SendSuccess(c, entries, &utils.Meta{
		Total: len(entries),
		Limit: req.Limit,
	})
}
