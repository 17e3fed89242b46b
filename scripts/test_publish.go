//go:build ignore

// Публикует тестовое событие истории в стрим, чтобы проверить архивный воркер:
//
//	go run scripts/test_publish.go --redis localhost:6379
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/trip-planner/internal/domain"
	redisRepo "github.com/trip-planner/internal/repository/redis"
	"github.com/trip-planner/internal/usecase"
)

func main() {
	redisAddr := pflag.String("redis", "localhost:6379", "Redis address")
	stream := pflag.String("stream", domain.StreamTripHistory, "history stream")
	air := pflag.Bool("air", false, "publish a flight instead of a ground trip")
	pflag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	result := &domain.TripResult{
		Origin:          domain.NewResolvedLocation("New York", "United States", 40.7128, -74.0060),
		Destination:     domain.NewResolvedLocation("Boston", "United States", 42.3601, -71.0589),
		Mode:            domain.TripModeGround,
		Vehicle:         domain.VehicleCar,
		DistanceMeters:  346000,
		DurationSeconds: 14400,
	}
	if *air {
		result.Destination = domain.NewResolvedLocation("Paris", "France", 48.8566, 2.3522)
		result.Mode = domain.TripModeAir
		result.DistanceMeters = 5837210
		result.DurationSeconds = 24722
	}

	line := usecase.FormatHistoryLine(result, domain.UnitKm)
	event := domain.NewHistoryEvent(result, line, time.Now())

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	if err := repo.PublishToStream(ctx, *stream, event); err != nil {
		log.Fatalf("Failed to publish: %v", err)
	}

	fmt.Printf("Published %s: %s\n", event.ID, line)
}
