package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avialab/flightorders/config"
	"github.com/avialab/flightorders/internal/cache"
	"github.com/avialab/flightorders/internal/domain"
	"github.com/avialab/flightorders/internal/email"
	"github.com/avialab/flightorders/internal/kafka"
	"github.com/avialab/flightorders/internal/repository"
	"github.com/avialab/flightorders/internal/service/flights"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)
	flightRepo := repository.NewFlightRepository(pool)
	flightService := flights.NewFlightService(flightRepo, nil, redisCache, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, event kafka.OrderEvent) error {
			return emailSender.Send(ctx, event)
		}); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	refreshTicker := time.NewTicker(time.Duration(cfg.Worker.CacheRefreshMinutes) * time.Minute)
	defer refreshTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-refreshTicker.C:
			// Repopulates the unfiltered flight listing so availability
			// counts in the cache never go stale past one interval.
			if err := redisCache.InvalidateFlights(ctx); err != nil {
				log.Printf("invalidate flights cache error: %v", err)
				continue
			}
			if _, err := flightService.List(ctx, domain.FlightFilter{}); err != nil {
				log.Printf("refresh flights cache error: %v", err)
			}
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
