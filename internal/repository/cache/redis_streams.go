package cache

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/config"
)

// NewRedisStreams - отдельный клиент для stream:trip:* (воркер и публикация событий).
// Блокирующий XREADGROUP держит соединение, поэтому пул кеша не используется.
func NewRedisStreams(cfg *config.RedisStreamsConfig, logger *zap.Logger) (*redis.Client, error) {
	client, err := dial(cfg.Host, cfg.Port, cfg.Password, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis streams: %w", err)
	}

	logger.Info("Redis Streams connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
	)

	return client, nil
}
