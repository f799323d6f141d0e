package main

// @title Eco Travel Service API
// @version 1.0.0
// @description Оценка стоимости и выбросов CO2 поездки из города отправления в одно из направлений справочника.
// @description
// @description Основные возможности:
// @description - Оценка плана поездки, рекомендация комбинации с минимальным eco-score, топ-3 и эко-уровень
// @description - Сравнение всех видов транспорта для группы путешественников
// @description - Справочник направлений, городов, вариантов проживания и питания
// @description - Учётные записи: создание, проверка пароля, сброс пароля

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
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

	_ "github.com/eco-travel-service/docs"
	"github.com/eco-travel-service/internal/config"
	httpDelivery "github.com/eco-travel-service/internal/delivery/http"
	"github.com/eco-travel-service/internal/delivery/http/handler"
	"github.com/eco-travel-service/internal/domain/repository"
	"github.com/eco-travel-service/internal/pkg/logger"
	"github.com/eco-travel-service/internal/planner"
	"github.com/eco-travel-service/internal/repository/cache"
	"github.com/eco-travel-service/internal/repository/catalog"
	"github.com/eco-travel-service/internal/repository/filestore"
	"github.com/eco-travel-service/internal/repository/postgres"
	"github.com/eco-travel-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Eco Travel Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.String("account_store", cfg.Account.Store),
	)

	// 3. Catalog and planner
	cat, err := catalog.Load(cfg.Catalog.Path, log)
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}
	tripPlanner := planner.New(cat, cfg.PlannerSettings())

	healthChecks := make(map[string]httpDelivery.HealthCheck)

	// 4. Evaluation cache: Redis when enabled, in-process LRU otherwise
	var (
		cacheRepo   repository.CacheRepository
		cacheType   string
		redisClient *cache.Redis
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
		cacheType = "redis"
		healthChecks["redis"] = redisClient.Health
		log.Info("Redis connected")
	} else {
		cacheRepo = cache.NewMemoryCacheRepository(cfg.Cache.EvaluationSize, cfg.Cache.EvaluationTTL, log)
		cacheType = "memory"
	}

	// 5. Account store
	var (
		accountRepo repository.AccountRepository
		db          *postgres.DB
	)
	switch cfg.Account.Store {
	case config.AccountStorePostgres:
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = db.Migrate(ctx)
		cancel()
		if err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}

		accountRepo = postgres.NewAccountRepository(db)
		healthChecks["postgres"] = db.Health
		log.Info("PostgreSQL connected")
	default:
		accountRepo = filestore.NewAccountRepository(cfg.Account.FilePath, log)
		log.Info("Using file account store", zap.String("path", cfg.Account.FilePath))
	}

	// 6. Initialize Use Cases
	evaluationUC := usecase.NewEvaluationUseCase(tripPlanner, cacheRepo, cacheType, cfg.Cache.EvaluationTTL, log)
	catalogUC := usecase.NewCatalogUseCase(cat, log)
	accountUC := usecase.NewAccountUseCase(accountRepo, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers and Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewEvaluationHandler(evaluationUC, log),
		handler.NewCatalogHandler(catalogUC, log),
		handler.NewAccountHandler(accountUC, log),
		healthChecks,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("catalog_version", cat.Version),
	)

	// 9. Graceful shutdown
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
