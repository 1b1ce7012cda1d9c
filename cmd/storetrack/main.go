package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/storetrack/storetrack/internal/catalog"
	catalogdomain "github.com/storetrack/storetrack/internal/catalog/domain"
	"github.com/storetrack/storetrack/internal/inventory"
	inventorydomain "github.com/storetrack/storetrack/internal/inventory/domain"
	inventorycmd "github.com/storetrack/storetrack/internal/inventory/usecase/command"
	"github.com/storetrack/storetrack/internal/order"
	orderdomain "github.com/storetrack/storetrack/internal/order/domain"
	ordercmd "github.com/storetrack/storetrack/internal/order/usecase/command"
	"github.com/storetrack/storetrack/internal/report"
	"github.com/storetrack/storetrack/internal/report/cache"
	"github.com/storetrack/storetrack/internal/server"
	"github.com/storetrack/storetrack/kafka"
	"github.com/storetrack/storetrack/pkg/config"
	"github.com/storetrack/storetrack/pkg/database"
	"github.com/storetrack/storetrack/pkg/logger"
	"github.com/storetrack/storetrack/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting StoreTrack backend")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
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
	db, err := database.NewGormConnection(cfg.DB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&catalogdomain.Category{},
		&catalogdomain.Product{},
		&orderdomain.Order{},
		&orderdomain.OrderItem{},
		&inventorydomain.Movement{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Optional Redis report cache
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Logger.Warn().Err(err).Msg("Redis unavailable, report caching disabled")
			redisClient = nil
		}
		cancel()
	}
	reportCache := cache.NewReportCache(redisClient, cache.DefaultTTL)

	// Optional Kafka event publisher
	var (
		movementPublisher inventorycmd.EventPublisher
		orderPublisher    ordercmd.EventPublisher
	)
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unavailable, events disabled")
		} else {
			defer publisher.Close()
			movementPublisher = publisher
			orderPublisher = publisher
		}
	}

	// Initialize handlers with Wire DI
	catalogHandler, err := catalog.InitializeHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}
	inventoryHandler, err := inventory.InitializeHandler(db, movementPublisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handler")
	}
	orderHandler, err := order.InitializeHandler(db, orderPublisher, reportCache)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}
	reportHandler, err := report.InitializeHandler(db, reportCache)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize report handler")
	}

	router := server.NewRouter(server.Handlers{
		Catalog:   catalogHandler,
		Inventory: inventoryHandler,
		Order:     orderHandler,
		Report:    reportHandler,
	}, sqlDB)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := server.TracingMiddleware(cfg.ServiceName, c.Handler(router))

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := http.ListenAndServe(":"+cfg.HTTPPort, handler); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}
