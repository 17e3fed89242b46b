package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/trip-planner/internal/config"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/infrastructure/graphhopper"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/pkg/logger"
	"github.com/trip-planner/internal/presenter"
	redisRepo "github.com/trip-planner/internal/repository/redis"
	"github.com/trip-planner/internal/repository/history"
	"github.com/trip-planner/internal/usecase"
	"github.com/trip-planner/internal/usecase/dto"
)

const (
	exitOK                 = 0
	exitFailure            = 1
	exitMissingCredentials = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	from       string
	to         string
	debug      bool
	showMap    bool
	configFile string
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("tripplanner", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.from, "from", "", "starting location")
	fs.StringVar(&opts.to, "to", "", "destination")
	fs.String("vehicle", "", "vehicle profile: car, bike, foot, airplane")
	fs.String("units", "", "distance units: km, miles")
	fs.String("api-key", "", "GraphHopper API key (overrides GRAPHHOPPER_API_KEY)")
	fs.String("history", "", "history file path")
	fs.BoolVar(&opts.debug, "debug", false, "verbose logging to stderr")
	fs.BoolVar(&opts.showMap, "show-map", false, "print a map link for each trip")
	fs.StringVar(&opts.configFile, "config", ".env", "optional env file")

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return exitOK
		}
		return exitFailure
	}

	console := presenter.NewConsole(stdout, opts.showMap)

	cfg, err := config.LoadFrom(opts.configFile, fs)
	if err != nil {
		console.Error(err)
		return exitFailure
	}

	level := "warn"
	if opts.debug {
		level = "debug"
	}
	log, err := logger.NewWithOutput(level, "stderr")
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return exitFailure
	}
	defer func() { _ = log.Sync() }()

	if !cfg.HasAPIKey() {
		console.Error(errors.ErrMissingCredentials.WithDetails(map[string]interface{}{
			"hint": "set GRAPHHOPPER_API_KEY or pass --api-key",
		}))
		return exitMissingCredentials
	}

	sinks, closeSinks := buildSinks(cfg, log)
	defer closeSinks()

	ghClient := graphhopper.NewClient(&cfg.GraphHopper, log)
	planner := usecase.NewTripPlanner(ghClient, usecase.NewGreatCircleEstimator(), log)
	recorder := usecase.NewHistoryRecorder(log, sinks...)
	tripUC := usecase.NewTripUseCase(ghClient, planner, recorder, usecase.TripDefaults{
		Vehicle: cfg.Trip.Vehicle,
		Units:   cfg.Trip.Units,
		Policy:  usecase.ParseInputPolicy(cfg.Trip.OnInvalidInput),
	}, log)

	log.Debug("Trip planner configured",
		zap.String("graphhopper_url", cfg.GraphHopper.BaseURL),
		zap.String("history_file", cfg.History.File),
		zap.Bool("history_stream", cfg.History.StreamEnabled))

	if opts.from != "" && opts.to != "" {
		req := dto.PlanTripRequest{From: opts.from, To: opts.to}
		if !planOnce(ctx, tripUC, console, req) {
			return exitFailure
		}
		return exitOK
	}

	interactive(ctx, tripUC, console, stdin, stdout)
	return exitOK
}

// buildSinks возвращает файл истории и, если включен, стрим Redis
func buildSinks(cfg *config.Config, log *zap.Logger) ([]repository.HistorySink, func()) {
	sinks := []repository.HistorySink{history.NewFileSink(cfg.History.File, log)}
	closeFn := func() {}

	if !cfg.History.StreamEnabled {
		return sinks, closeFn
	}

	client, err := redisRepo.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Warn("History stream disabled, Redis unavailable", zap.Error(err))
		return sinks, closeFn
	}

	streams := redisRepo.NewStreamRepository(client.Redis(), log)
	sinks = append(sinks, history.NewStreamSink(streams, cfg.History.Stream))
	return sinks, func() {
		if err := client.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}
}

func planOnce(ctx context.Context, tripUC *usecase.TripUseCase, console *presenter.Console, req dto.PlanTripRequest) bool {
	outcome, err := tripUC.PlanTrip(ctx, req)
	if err != nil {
		console.Error(err)
		return false
	}
	console.Trip(outcome)
	return true
}

// interactive спрашивает профиль, единицы и точки, пока пользователь не введет q/quit
func interactive(ctx context.Context, tripUC *usecase.TripUseCase, console *presenter.Console, stdin io.Reader, stdout io.Writer) {
	scanner := bufio.NewScanner(stdin)

	ask := func(prompt string) (string, bool) {
		fmt.Fprint(stdout, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			return "", false
		}
		answer := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(answer) {
		case "q", "quit":
			return "", false
		}
		return answer, true
	}

	for ctx.Err() == nil {
		vehicle, ok := ask("Vehicle (car, bike, foot, airplane; q to quit): ")
		if !ok {
			return
		}
		units, ok := ask("Units (km, miles): ")
		if !ok {
			return
		}
		from, ok := ask("Starting location: ")
		if !ok {
			return
		}
		to, ok := ask("Destination: ")
		if !ok {
			return
		}

		if from == "" || to == "" {
			console.Notice("Both locations are required")
			continue
		}

		planOnce(ctx, tripUC, console, dto.PlanTripRequest{
			From:    from,
			To:      to,
			Vehicle: vehicle,
			Units:   units,
		})
		fmt.Fprintln(stdout)
	}
}
