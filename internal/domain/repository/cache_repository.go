package repository

import (
	"context"
	"time"

	"github.com/eco-travel-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу (nil, nil при промахе)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetEvaluation получает результат оценки поездки
	GetEvaluation(ctx context.Context, key string) (*domain.EvaluationResult, error)

	// SetEvaluation сохраняет результат оценки поездки
	SetEvaluation(ctx context.Context, key string, result *domain.EvaluationResult, ttl time.Duration) error
}
