package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain"
	redisRepo "github.com/eco-travel-service/internal/repository/redis"
)

const (
	testEvaluateStream  = "test:stream:trip:evaluate"
	testEvaluatedStream = "test:stream:trip:evaluated"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testEvaluateStream, testEvaluatedStream)
	t.Cleanup(func() {
		client.Del(context.Background(), testEvaluateStream, testEvaluatedStream)
		client.Close()
	})

	return client
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	err := repo.CreateConsumerGroup(ctx, testEvaluateStream, "test-group")
	require.NoError(t, err)

	groups, err := client.XInfoGroups(ctx, testEvaluateStream).Result()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "test-group", groups[0].Name)

	// BUSYGROUP is not an error
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testEvaluateStream, "test-group"))
}

func TestStreamRepository_PublishToStream(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	event := &domain.TripEvaluatedEvent{
		RequestID: uuid.New(),
		Result: &domain.EvaluationResult{
			DistanceKm: 235,
			Tier:       domain.TierGuardian,
		},
	}
	require.NoError(t, repo.PublishToStream(ctx, testEvaluatedStream, event))

	streams, err := client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{testEvaluatedStream, "0"},
		Count:   1,
	}).Result()
	require.NoError(t, err)
	require.Len(t, streams, 1)
	require.Len(t, streams[0].Messages, 1)

	data, ok := streams[0].Messages[0].Values["data"].(string)
	require.True(t, ok)

	var received domain.TripEvaluatedEvent
	require.NoError(t, json.Unmarshal([]byte(data), &received))
	assert.Equal(t, event.RequestID, received.RequestID)
	require.NotNil(t, received.Result)
	assert.Equal(t, 235, received.Result.DistanceKm)
	assert.Equal(t, domain.TierGuardian, received.Result.Tier)
}

func TestStreamRepository_ConsumeBatchAndAck(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	group := "test-consume-group"
	require.NoError(t, repo.CreateConsumerGroup(ctx, testEvaluateStream, group))

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		require.NoError(t, repo.PublishToStream(ctx, testEvaluateStream, &domain.TripEvaluateEvent{
			RequestID:   id,
			OriginCity:  "Delhi",
			Destination: "Jaipur",
			Travelers:   2,
			Days:        5,
		}))
	}
	// message without "data" field
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: testEvaluateStream,
		Values: map[string]interface{}{"other": "x"},
	}).Err())

	messages, err := repo.ConsumeBatch(ctx, testEvaluateStream, group, "c1", 2, 100*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	var first domain.TripEvaluateEvent
	require.NoError(t, json.Unmarshal([]byte(messages[0].Data), &first))
	assert.Equal(t, ids[0], first.RequestID)
	assert.Equal(t, "Delhi", first.OriginCity)

	rest, err := repo.ConsumeBatch(ctx, testEvaluateStream, group, "c1", 10, 100*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Empty(t, rest[1].Data)

	pending, err := client.XPending(ctx, testEvaluateStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(4), pending.Count)

	all := []string{messages[0].ID, messages[1].ID, rest[0].ID, rest[1].ID}
	require.NoError(t, repo.AckMessages(ctx, testEvaluateStream, group, all))

	pending, err = client.XPending(ctx, testEvaluateStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)

	empty, err := repo.ConsumeBatch(ctx, testEvaluateStream, group, "c1", 10, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStreamRepository_AckMessages_Empty(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())

	assert.NoError(t, repo.AckMessages(context.Background(), testEvaluateStream, "any", nil))
}

func TestStreamRepository_ConsumeBatch_ContextCancelled(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())

	group := "test-cancel-group"
	require.NoError(t, repo.CreateConsumerGroup(context.Background(), testEvaluateStream, group))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := repo.ConsumeBatch(ctx, testEvaluateStream, group, "c1", 1, 2*time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStreamRepository_ConsumePending(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	group := "test-pending-group"
	require.NoError(t, repo.CreateConsumerGroup(ctx, testEvaluateStream, group))

	empty, err := repo.ConsumePending(ctx, testEvaluateStream, group, "c1", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.PublishToStream(ctx, testEvaluateStream, &domain.TripEvaluateEvent{
			RequestID:  uuid.New(),
			OriginCity: "Delhi",
			Travelers:  1,
			Days:       1,
		}))
	}

	delivered, err := repo.ConsumeBatch(ctx, testEvaluateStream, group, "c1", 10, 100*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, delivered, 2)

	// ">" больше ничего не отдаёт, а PEL возвращает те же записи
	fresh, err := repo.ConsumeBatch(ctx, testEvaluateStream, group, "c1", 10, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, fresh)

	pending, err := repo.ConsumePending(ctx, testEvaluateStream, group, "c1", 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, delivered[0].ID, pending[0].ID)
	assert.Equal(t, delivered[0].Data, pending[0].Data)

	other, err := repo.ConsumePending(ctx, testEvaluateStream, group, "c2", 10)
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, repo.AckMessages(ctx, testEvaluateStream, group, []string{pending[0].ID}))

	left, err := repo.ConsumePending(ctx, testEvaluateStream, group, "c1", 10)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, delivered[1].ID, left[0].ID)
}
