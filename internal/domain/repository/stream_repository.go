package repository

import (
	"context"
	"time"

	"github.com/eco-travel-service/internal/domain"
)

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	// ConsumeBatch читает до count новых сообщений, ожидая не дольше block.
	// Пустой результат без ошибки - сообщений нет.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int, block time.Duration) ([]domain.StreamMessage, error)

	// ConsumePending перечитывает до count доставленных этому consumer'у, но не подтверждённых сообщений.
	// Пустой результат - PEL consumer'а пуст.
	ConsumePending(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessages подтверждает обработку сообщений
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// CreateConsumerGroup создаёт consumer group
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream публикует сообщение в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
