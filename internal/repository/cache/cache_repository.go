package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/domain/repository"
	"github.com/eco-travel-service/internal/pkg/errors"
)

const evaluationKeyPrefix = "eval:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w: %w", errors.ErrCacheError, err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w: %w", errors.ErrCacheError, err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w: %w", errors.ErrCacheError, err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetEvaluation - результат оценки по каноническому ключу запроса, nil при промахе
func (r *cacheRepository) GetEvaluation(ctx context.Context, key string) (*domain.EvaluationResult, error) {
	data, err := r.Get(ctx, evaluationKeyPrefix+key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var result domain.EvaluationResult
	if err := json.Unmarshal(data, &result); err != nil {
		r.logger.Error("Failed to unmarshal evaluation from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("unmarshal evaluation: %w", err)
	}

	return &result, nil
}

func (r *cacheRepository) SetEvaluation(ctx context.Context, key string, result *domain.EvaluationResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		r.logger.Error("Failed to marshal evaluation", zap.Error(err))
		return fmt.Errorf("marshal evaluation: %w", err)
	}

	return r.Set(ctx, evaluationKeyPrefix+key, data, ttl)
}
