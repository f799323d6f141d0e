package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain"
)

func TestMemoryCache_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepository(8, time.Hour, zap.NewNop())

	data, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))
	data, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)

	require.NoError(t, repo.Delete(ctx, "k"))
	data, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryCache_PerEntryTTL(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepository(8, time.Hour, zap.NewNop()).(*memoryRepository)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Set(ctx, "short", []byte("1"), time.Second))
	now = now.Add(2 * time.Second)

	data, err := repo.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, 0, repo.entries.Len())
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepository(2, time.Hour, zap.NewNop())

	require.NoError(t, repo.Set(ctx, "a", []byte("a"), 0))
	require.NoError(t, repo.Set(ctx, "b", []byte("b"), 0))
	_, _ = repo.Get(ctx, "a")
	require.NoError(t, repo.Set(ctx, "c", []byte("c"), 0))

	b, _ := repo.Get(ctx, "b")
	a, _ := repo.Get(ctx, "a")
	assert.Nil(t, b)
	assert.Equal(t, []byte("a"), a)
}

func TestMemoryCache_Evaluation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepository(8, time.Hour, zap.NewNop())

	in := &domain.EvaluationResult{
		DistanceKm: 235,
		Tier:       domain.TierGuardian,
		Recommended: domain.Combination{
			Choice:   domain.Choice{Transport: domain.TransportTrain, Accommodation: "Hostel/Dormitory", Food: "Food Stalls/Dhabas"},
			EcoScore: 12.5,
		},
		Top: []domain.Combination{{EcoScore: 12.5}},
	}
	require.NoError(t, repo.SetEvaluation(ctx, "key", in, time.Minute))

	out, err := repo.GetEvaluation(ctx, "key")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in, out)

	out.DistanceKm = 1
	again, err := repo.GetEvaluation(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, 235, again.DistanceKm)

	miss, err := repo.GetEvaluation(ctx, "other")
	require.NoError(t, err)
	assert.Nil(t, miss)
}
