package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/shammazp/restaurant-backend/internal/commons"
	"github.com/shammazp/restaurant-backend/internal/config"
	"github.com/shammazp/restaurant-backend/internal/infrastructure/kafka"
	"github.com/shammazp/restaurant-backend/internal/infrastructure/logger"
	"github.com/shammazp/restaurant-backend/internal/infrastructure/mysql"
	"github.com/shammazp/restaurant-backend/internal/infrastructure/objectstore"
	redisinfra "github.com/shammazp/restaurant-backend/internal/infrastructure/redis"
	"github.com/shammazp/restaurant-backend/internal/media"
	mediausecase "github.com/shammazp/restaurant-backend/internal/media/usecase"
	"github.com/shammazp/restaurant-backend/internal/menu"
	"github.com/shammazp/restaurant-backend/internal/order"
	orderusecase "github.com/shammazp/restaurant-backend/internal/order/usecase"
	"github.com/shammazp/restaurant-backend/internal/server"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	// Optional collaborators stay typed nil interfaces when disabled; the
	// usecases check for nil, never for a concrete type.
	var (
		restaurantCache  orderusecase.RestaurantCache
		cacheInvalidator mediausecase.CacheInvalidator
	)
	if cfg.Redis.Enabled() {
		redisClient, err := redisinfra.NewClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("connecting to redis", zap.Error(err))
		}
		defer redisClient.Close()

		cache := redisinfra.NewRestaurantCache(redisClient, cfg.Redis.RestaurantTTL)
		restaurantCache = cache
		cacheInvalidator = cache
		zapLogger.Info("restaurant cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	var (
		orderPublisher  orderusecase.EventPublisher
		statusPublisher orderusecase.StatusEventPublisher
	)
	if cfg.Kafka.Enabled() {
		writer := kafka.NewWriter(cfg.Kafka)
		defer writer.Close()

		publisher := kafka.NewOrderEventPublisher(writer)
		orderPublisher = publisher
		statusPublisher = publisher
		zapLogger.Info("order events enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.OrderTopic))
	}

	var store objectstore.Store
	if cfg.S3.Enabled() {
		s3Store, err := objectstore.NewS3Store(cfg.S3)
		if err != nil {
			zapLogger.Fatal("creating object store", zap.Error(err))
		}
		store = s3Store
		zapLogger.Info("object store enabled", zap.String("bucket", cfg.S3.Bucket))
	} else {
		store = objectstore.NewNoopStore(zapLogger)
	}

	orderCtrl := order.NewModule(db, restaurantCache, orderPublisher, statusPublisher, cfg, zapLogger)
	uploadCtrl := media.NewModule(db, store, cacheInvalidator, cfg, zapLogger)
	menuCtrl := menu.NewModule(db, zapLogger)

	router := server.NewRouter(orderCtrl, uploadCtrl, menuCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
