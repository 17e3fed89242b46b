package main

// @title Trip Planner API
// @version 1.0.0
// @description Расчет поездок между двумя точками: наземный маршрут через GraphHopper внутри одной страны,
// @description оценка перелета по дуге большого круга между странами или для профиля airplane.

// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/trip-planner/docs"
	"github.com/trip-planner/internal/config"
	httpDelivery "github.com/trip-planner/internal/delivery/http"
	"github.com/trip-planner/internal/delivery/http/handler"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/infrastructure/graphhopper"
	"github.com/trip-planner/internal/pkg/logger"
	"github.com/trip-planner/internal/repository/history"
	"github.com/trip-planner/internal/repository/postgres"
	redisRepo "github.com/trip-planner/internal/repository/redis"
	"github.com/trip-planner/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load(nil)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Trip Planner API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("history_stream", cfg.History.StreamEnabled),
		zap.Bool("archive", cfg.ArchiveEnabled()),
	)

	if !cfg.HasAPIKey() {
		log.Fatal("GraphHopper API key is not configured, set GRAPHHOPPER_API_KEY")
	}

	// 3. History sinks: file always, Redis stream if enabled
	sinks := []repository.HistorySink{history.NewFileSink(cfg.History.File, log)}

	var redisClient *redisRepo.Client
	if cfg.History.StreamEnabled {
		redisClient, err = redisRepo.NewClient(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		streamRepo := redisRepo.NewStreamRepository(redisClient.Redis(), log)
		sinks = append(sinks, history.NewStreamSink(streamRepo, cfg.History.Stream))
	}

	// 4. History archive (read side)
	var archive repository.HistoryArchiveRepository
	var db *postgres.DB
	if cfg.ArchiveEnabled() {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		archiveRepo := postgres.NewHistoryArchiveRepository(db)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = archiveRepo.Migrate(ctx)
		cancel()
		if err != nil {
			log.Fatal("Failed to migrate history archive", zap.Error(err))
		}
		archive = archiveRepo
	}

	// 5. Use cases
	ghClient := graphhopper.NewClient(&cfg.GraphHopper, log)
	planner := usecase.NewTripPlanner(ghClient, usecase.NewGreatCircleEstimator(), log)
	recorder := usecase.NewHistoryRecorder(log, sinks...)
	tripUC := usecase.NewTripUseCase(ghClient, planner, recorder, usecase.TripDefaults{
		Vehicle: cfg.Trip.Vehicle,
		Units:   cfg.Trip.Units,
		Policy:  usecase.ParseInputPolicy(cfg.Trip.OnInvalidInput),
	}, log)

	// 6. HTTP server
	tripHandler := handler.NewTripHandler(tripUC, archive, log)
	checks := map[string]httpDelivery.HealthChecker{}
	if redisClient != nil {
		checks["redis"] = redisClient
	}
	if db != nil {
		checks["postgres"] = db
	}
	server := httpDelivery.NewServer(cfg, log, tripHandler, checks)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
