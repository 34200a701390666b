package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avialab/flightorders/config"
	"github.com/avialab/flightorders/internal/bootstrap"
	"github.com/avialab/flightorders/internal/cache"
	"github.com/avialab/flightorders/internal/kafka"
	"github.com/avialab/flightorders/internal/repository"
	"github.com/avialab/flightorders/internal/service/flights"
	"github.com/avialab/flightorders/internal/service/order"
	"github.com/avialab/flightorders/internal/service/reference"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	refRepo := repository.NewReferenceRepository(pool)

	flightService := flights.NewFlightService(flightRepo, refRepo, redisCache, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)
	orderService := order.NewOrderService(
		orderRepo,
		redisCache,
		producer,
		cfg.Kafka.OrdersTopic,
		time.Duration(cfg.Booking.SeatLockTTLSeconds)*time.Second,
		order.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	referenceService := reference.NewReferenceService(refRepo)

	if err := bootstrap.Run(ctx, cfg, flightService, orderService, referenceService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
