package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/domain/repository"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// memoryRepository - процессный LRU, используется когда Redis выключен.
// maxTTL bounds every entry; a shorter per-call ttl is checked on read.
type memoryRepository struct {
	entries *expirable.LRU[string, memoryEntry]
	logger  *zap.Logger
	now     func() time.Time
}

func NewMemoryCacheRepository(size int, maxTTL time.Duration, logger *zap.Logger) repository.CacheRepository {
	if size <= 0 {
		size = 1024
	}
	return &memoryRepository{
		entries: expirable.NewLRU[string, memoryEntry](size, nil, maxTTL),
		logger:  logger,
		now:     time.Now,
	}
}

func (r *memoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	e, ok := r.entries.Get(key)
	if !ok {
		return nil, nil
	}
	if !e.expiresAt.IsZero() && !r.now().Before(e.expiresAt) {
		r.entries.Remove(key)
		return nil, nil
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return e.data, nil
}

func (r *memoryRepository) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := memoryEntry{data: value}
	if ttl > 0 {
		e.expiresAt = r.now().Add(ttl)
	}
	r.entries.Add(key, e)
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, key string) error {
	r.entries.Remove(key)
	return nil
}

func (r *memoryRepository) GetEvaluation(ctx context.Context, key string) (*domain.EvaluationResult, error) {
	data, err := r.Get(ctx, evaluationKeyPrefix+key)
	if err != nil || data == nil {
		return nil, err
	}

	var result domain.EvaluationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("unmarshal evaluation: %w", err)
	}
	return &result, nil
}

// SetEvaluation хранит JSON, а не указатель: вызывающий не должен видеть мутации чужой копии
func (r *memoryRepository) SetEvaluation(ctx context.Context, key string, result *domain.EvaluationResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal evaluation: %w", err)
	}
	return r.Set(ctx, evaluationKeyPrefix+key, data, ttl)
}
