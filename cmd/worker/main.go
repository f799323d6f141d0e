package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/config"
	"github.com/eco-travel-service/internal/domain/repository"
	"github.com/eco-travel-service/internal/pkg/logger"
	"github.com/eco-travel-service/internal/planner"
	"github.com/eco-travel-service/internal/repository/cache"
	"github.com/eco-travel-service/internal/repository/catalog"
	redisRepo "github.com/eco-travel-service/internal/repository/redis"
	"github.com/eco-travel-service/internal/usecase"
	"github.com/eco-travel-service/internal/worker"
	"github.com/eco-travel-service/internal/worker/evaluation"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Trip Evaluation Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("consumer_name", cfg.Worker.ConsumerName),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries))

	// 3. Catalog and planner
	cat, err := catalog.Load(cfg.Catalog.Path, log)
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}
	tripPlanner := planner.New(cat, cfg.PlannerSettings())

	// 4. Connect to Redis Streams
	streamsClient, err := cache.NewRedisStreams(&cfg.RedisStreams, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis Streams", zap.Error(err))
	}
	defer func() {
		if err := streamsClient.Close(); err != nil {
			log.Error("Failed to close Redis Streams connection", zap.Error(err))
		}
	}()

	// 5. Evaluation cache shared with the API when Redis is enabled
	var cacheRepo repository.CacheRepository
	cacheType := "memory"
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		cacheRepo = cache.NewCacheRepository(redisClient)
		cacheType = "redis"
	} else {
		cacheRepo = cache.NewMemoryCacheRepository(cfg.Cache.EvaluationSize, cfg.Cache.EvaluationTTL, log)
	}

	// 6. Repositories and use cases
	streamRepo := redisRepo.NewStreamRepository(streamsClient, log)
	evaluationUC := usecase.NewEvaluationUseCase(tripPlanner, cacheRepo, cacheType, cfg.Cache.EvaluationTTL, log)

	// 7. Workers
	workerManager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	workerManager.Register(evaluation.NewTripEvaluationWorker(streamRepo, evaluationUC, cfg.Worker, log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Stop first so the current batch finishes and gets acked
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
