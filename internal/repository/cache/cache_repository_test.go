package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain"
)

func setupTestRedis(t *testing.T) *Redis {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // Use separate DB for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	return NewRedisFromClient(client, zap.NewNop())
}

func TestCacheRepository_Evaluation(t *testing.T) {
	r := setupTestRedis(t)
	repo := NewCacheRepository(r)
	ctx := context.Background()

	miss, err := repo.GetEvaluation(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, miss)

	in := &domain.EvaluationResult{
		DistanceKm:    235,
		DistanceRatio: 235.0 / 280.0,
		Tier:          domain.TierWarrior,
		Modes:         []domain.ModeQuote{{Mode: domain.TransportBus, Available: true, TotalCost: 1342}},
	}
	require.NoError(t, repo.SetEvaluation(ctx, "abc", in, time.Minute))

	out, err := repo.GetEvaluation(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, in, out)

	ttl := r.Client().TTL(ctx, evaluationKeyPrefix+"abc").Val()
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, repo.Delete(ctx, evaluationKeyPrefix+"abc"))
	miss, err = repo.GetEvaluation(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, miss)
}
