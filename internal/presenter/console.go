package presenter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/pkg/utils"
	"github.com/trip-planner/internal/usecase"
)

// Console печатает результаты поездок в терминал
type Console struct {
	out     io.Writer
	showMap bool

	title   *color.Color
	label   *color.Color
	value   *color.Color
	warn    *color.Color
	failure *color.Color
}

func NewConsole(out io.Writer, showMap bool) *Console {
	return &Console{
		out:     out,
		showMap: showMap,
		title:   color.New(color.FgCyan, color.Bold),
		label:   color.New(color.FgWhite, color.Bold),
		value:   color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
	}
}

// Trip печатает результат поездки целиком
func (c *Console) Trip(outcome *usecase.TripOutcome) {
	result := outcome.Result

	if outcome.VehicleDefaulted {
		c.Notice(fmt.Sprintf("Unknown vehicle, using %s", domain.DefaultVehicle))
	}
	if outcome.UnitDefaulted {
		c.Notice(fmt.Sprintf("Unknown units, using %s", domain.DefaultUnit))
	}

	c.Location("From", result.Origin)
	c.Location("To", result.Destination)
	fmt.Fprintln(c.out)

	if result.IsAir() {
		c.air(result, outcome.Unit)
	} else {
		c.ground(result, outcome.Unit)
	}

	if c.showMap {
		c.label.Fprint(c.out, "Map: ")
		fmt.Fprintln(c.out, MapURL(result))
	}

	if outcome.HistoryErr != nil {
		c.warn.Fprintf(c.out, "History not saved: %v\n", outcome.HistoryErr)
	} else if outcome.HistoryLine != "" {
		c.label.Fprint(c.out, "Saved: ")
		fmt.Fprintln(c.out, outcome.HistoryLine)
	}
}

// Location печатает найденную точку: "From: Boston, Massachusetts, United States (city)"
func (c *Console) Location(role string, loc domain.ResolvedLocation) {
	c.label.Fprintf(c.out, "%s: ", role)
	c.value.Fprint(c.out, loc.DisplayName)
	if loc.OSMValue != "" {
		fmt.Fprintf(c.out, " (%s)", loc.OSMValue)
	}
	fmt.Fprintln(c.out)
}

func (c *Console) ground(result *domain.TripResult, unit domain.Unit) {
	c.title.Fprintf(c.out, "Ground route by %s\n", result.Vehicle)

	// расход есть только у машины; нулевой маршрут тоже без расхода
	fuel := "N/A"
	if result.FuelLiters > 0 {
		fuel = fmt.Sprintf("%.2f L", result.FuelLiters)
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Distance\t%s\n", utils.FormatDistance(result.DistanceMeters, unit))
	fmt.Fprintf(tw, "Duration\t%s\n", utils.FormatDurationSeconds(result.DurationSeconds))
	fmt.Fprintf(tw, "Elevation gain\t%.2f m\n", result.ElevationGainMeters)
	fmt.Fprintf(tw, "Elevation loss\t%.2f m\n", result.ElevationLossMeters)
	fmt.Fprintf(tw, "Fuel\t%s\n", fuel)
	_ = tw.Flush()

	if len(result.Instructions) == 0 {
		return
	}

	fmt.Fprintln(c.out)
	c.title.Fprintln(c.out, "Directions")
	tw = tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tInstruction\tDistance")
	for i, step := range result.Instructions {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, step.Text, utils.FormatStepDistance(step.DistanceMeters))
	}
	_ = tw.Flush()
}

func (c *Console) air(result *domain.TripResult, unit domain.Unit) {
	c.title.Fprintln(c.out, "Flight estimate")

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Distance\t%s\n", utils.FormatDistance(result.DistanceMeters, unit))
	fmt.Fprintf(tw, "Duration\t%.2f hours\n", result.DurationSeconds/3600)
	fmt.Fprintf(tw, "Estimated cost\t$%.2f\n", result.EstimatedCostUSD)
	_ = tw.Flush()
}

// Notice печатает предупреждение, не прерывающее работу
func (c *Console) Notice(msg string) {
	c.warn.Fprintln(c.out, msg)
}

// Error печатает ошибку; для ответа внешнего сервиса добавляет его статус
func (c *Console) Error(err error) {
	c.failure.Fprintf(c.out, "Error: %v\n", err)
	if up, ok := errors.Upstream(err); ok && up.StatusCode != 0 {
		c.warn.Fprintf(c.out, "%s responded with status %d\n", up.Service, up.StatusCode)
	}
}
