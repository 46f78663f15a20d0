package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/tair/storefront/docs"
	"github.com/tair/storefront/internal/app"
	"github.com/tair/storefront/internal/config"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/database"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/tracing"
)

const serviceName = "storefront-api"

func main() {
	config.LoadDotEnv()
	cfg := config.LoadServerConfig()

	// Initialize logger
	logger.Init(serviceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting storefront API")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName, cfg.JaegerEndpoint, cfg.TracingEnabled)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	infra := app.Infra{
		DB:        db,
		Registry:  app.NewRegistry(),
		Redis:     connectRedis(cfg),
		Publisher: connectPublisher(cfg),
	}
	if infra.Redis != nil {
		defer infra.Redis.Close()
	}
	if infra.Publisher != nil {
		defer infra.Publisher.Close()
	}

	// Initialize server with Wire DI
	srv, err := app.InitializeServer(cfg, infra)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := srv.Migrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Logger.Info().Msg("Database initialized successfully")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Seed(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Catalog seeding failed")
	}

	if consumer := startStockConsumer(ctx, cfg, srv); consumer != nil {
		defer consumer.Close()
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

// connectRedis returns nil when Redis is not configured or unreachable
func connectRedis(cfg *config.ServerConfig) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unavailable, caching and rate limiting disabled")
		client.Close()
		return nil
	}

	logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Connected to Redis")
	return client
}

func connectPublisher(cfg *config.ServerConfig) *kafka.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	publisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka publisher unavailable, order events disabled")
		return nil
	}
	return publisher
}

func startStockConsumer(ctx context.Context, cfg *config.ServerConfig, srv *app.Server) *kafka.Consumer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, []string{kafka.TopicOrderPlaced})
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka consumer unavailable, stock reservation disabled")
		return nil
	}
	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, srv.StockReservation())
	consumer.Start(ctx)
	return consumer
}
