package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/avelora/storefront-admin-service/config"
	"github.com/avelora/storefront-admin-service/internal/auth"
	"github.com/avelora/storefront-admin-service/pkg/broker"
	"github.com/avelora/storefront-admin-service/pkg/cache"
	"github.com/avelora/storefront-admin-service/pkg/database/postgres"
	"github.com/avelora/storefront-admin-service/pkg/logger"

	catalogH "github.com/avelora/storefront-admin-service/internal/catalog/handler"
	catalogRepoPkg "github.com/avelora/storefront-admin-service/internal/catalog/repository"
	catalogUCPkg "github.com/avelora/storefront-admin-service/internal/catalog/usecase"

	prodH "github.com/avelora/storefront-admin-service/internal/product/handler"
	prodRepoPkg "github.com/avelora/storefront-admin-service/internal/product/repository"
	prodUCPkg "github.com/avelora/storefront-admin-service/internal/product/usecase"

	salesH "github.com/avelora/storefront-admin-service/internal/sales/handler"
	salesListenerPkg "github.com/avelora/storefront-admin-service/internal/sales/listener"
	salesRepoPkg "github.com/avelora/storefront-admin-service/internal/sales/repository"
	salesUCPkg "github.com/avelora/storefront-admin-service/internal/sales/usecase"

	storeH "github.com/avelora/storefront-admin-service/internal/store/handler"
	storeRepoPkg "github.com/avelora/storefront-admin-service/internal/store/repository"
	storeUCPkg "github.com/avelora/storefront-admin-service/internal/store/usecase"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Redis, catalog cache disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize Kafka Consumer
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 6. Initialize Repositories
	catalogRepo := catalogRepoPkg.NewPGRepository(db)
	productRepo := prodRepoPkg.NewPGRepository(db)
	salesRepo := salesRepoPkg.NewPGRepository(db)
	storeRepo := storeRepoPkg.NewPGRepository(db)

	// 7. Initialize UseCases
	catalogUC := catalogUCPkg.NewCatalogUseCase(catalogRepo, redisClient, appLogger)
	storeUC := storeUCPkg.NewStoreUseCase(storeRepo, appLogger)
	productUC := prodUCPkg.NewProductUseCase(productRepo, catalogUC, storeUC, cfg.Product.LenientUpdate, appLogger)
	salesUC := salesUCPkg.NewSalesUseCase(salesRepo, catalogUC, appLogger)

	// 8. Start Order Listener
	orderListener := salesListenerPkg.NewOrderListener(kafkaConsumer, salesUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go orderListener.Start(ctx)

	// 9. Initialize Handlers + HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(auth.Middleware())

	api := e.Group("/api")
	catalogH.NewCatalogHandler(catalogUC, appLogger).Register(api)
	storeH.NewStoreHandler(storeUC, appLogger).Register(api)
	prodH.NewProductHandler(productUC, appLogger).Register(api)
	salesH.NewSalesHandler(salesUC, appLogger).Register(api)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := e.Start(port); err != nil {
			appLogger.Info("HTTP server stopped", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
