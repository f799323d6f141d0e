package evaluation

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/config"
	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/domain/repository"
	"github.com/eco-travel-service/internal/pkg/errors"
	"github.com/eco-travel-service/internal/pkg/monitoring"
	"github.com/eco-travel-service/internal/worker"
)

const (
	workerName = "trip-evaluation"

	defaultBatchSize   = 10
	defaultReadTimeout = 5 * time.Second
	errorBackoff       = time.Second
	publishBackoff     = 200 * time.Millisecond
)

// TripEvaluator - то, что воркер умеет вызывать для одного события
type TripEvaluator interface {
	EvaluateEvent(ctx context.Context, event *domain.TripEvaluateEvent) (*domain.EvaluationResult, error)
}

// TripEvaluationWorker читает stream:trip:evaluate и публикует результаты в stream:trip:evaluated
type TripEvaluationWorker struct {
	*worker.BaseWorker
	streamRepo  repository.StreamRepository
	evaluator   TripEvaluator
	batchSize   int
	readTimeout time.Duration
	maxRetries  int

	// drainPending - сначала перечитать свой PEL, потом брать новые (">") сообщения.
	// Выставлен при старте и после неудачной публикации.
	drainPending bool
}

// NewTripEvaluationWorker создает новый TripEvaluationWorker
func NewTripEvaluationWorker(
	streamRepo repository.StreamRepository,
	evaluator TripEvaluator,
	cfg config.WorkerConfig,
	logger *zap.Logger,
) *TripEvaluationWorker {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	// XREADGROUP с BLOCK 0 ждёт бесконечно и не даёт воркеру остановиться
	readTimeout := cfg.StreamReadTimeout
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &TripEvaluationWorker{
		BaseWorker:   worker.NewBaseWorker(workerName, cfg.ConsumerGroup, cfg.ConsumerName, logger),
		streamRepo:   streamRepo,
		evaluator:    evaluator,
		batchSize:    batchSize,
		readTimeout:  readTimeout,
		maxRetries:   maxRetries,
		drainPending: true,
	}
}

// Start запускает воркер
func (w *TripEvaluationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting TripEvaluationWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize),
		zap.Duration("read_timeout", w.readTimeout))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamTripEvaluate, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		if _, err := w.processBatch(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Error("Failed to process batch", zap.Error(err))
			monitoring.RecordError("worker", "consume")
			w.Wait(ctx, errorBackoff)
		}
	}
}

// processBatch читает до batchSize событий, оценивает каждое, публикует результат и
// подтверждает обработанные сообщения. Возвращает количество прочитанных сообщений.
// Если хотя бы один результат не опубликован, возвращает ошибку: сообщение остаётся
// в PEL и будет перечитано следующим вызовом после backoff.
func (w *TripEvaluationWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.readMessages(ctx)
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	ackIDs := make([]string, 0, len(messages))
	unpublished := 0
	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			// битое сообщение без request_id некуда ответить, только ACK
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			monitoring.RecordStreamMessage(domain.StreamTripEvaluate, false)
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		out := w.evaluate(ctx, event)
		if err := w.publish(ctx, out); err != nil {
			// без ACK сообщение остаётся в PEL, следующий processBatch перечитает его
			logger.Error("Failed to publish evaluation result",
				zap.String("message_id", msg.ID),
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			monitoring.RecordError("worker", "publish")
			w.drainPending = true
			unpublished++
			continue
		}

		monitoring.RecordStreamMessage(domain.StreamTripEvaluate, out.Error == "")
		ackIDs = append(ackIDs, msg.ID)
	}

	if len(ackIDs) > 0 {
		if err := w.streamRepo.AckMessages(ctx, domain.StreamTripEvaluate, w.ConsumerGroup(), ackIDs); err != nil {
			// не критично: сообщения будут переобработаны
			logger.Error("Failed to ack messages", zap.Error(err))
		}
	}

	logger.Info("Batch processed",
		zap.Int("received", len(messages)),
		zap.Int("acked", len(ackIDs)))

	if unpublished > 0 {
		return len(messages), fmt.Errorf("%d evaluation results not published", unpublished)
	}
	return len(messages), nil
}

// readMessages отдаёт неподтверждённые сообщения этого consumer'а, пока они есть,
// и только потом переходит к новым.
func (w *TripEvaluationWorker) readMessages(ctx context.Context) ([]domain.StreamMessage, error) {
	if w.drainPending {
		pending, err := w.streamRepo.ConsumePending(
			ctx,
			domain.StreamTripEvaluate,
			w.ConsumerGroup(),
			w.ConsumerName(),
			w.batchSize,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to read pending messages: %w", err)
		}
		if len(pending) > 0 {
			w.Logger().Info("Reprocessing pending messages", zap.Int("count", len(pending)))
			return pending, nil
		}
		w.drainPending = false
	}

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamTripEvaluate,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
		w.readTimeout,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to consume batch: %w", err)
	}
	return messages, nil
}

func (w *TripEvaluationWorker) evaluate(ctx context.Context, event *domain.TripEvaluateEvent) *domain.TripEvaluatedEvent {
	out := &domain.TripEvaluatedEvent{RequestID: event.RequestID}

	result, err := w.evaluator.EvaluateEvent(ctx, event)
	if err != nil {
		out.Error = err.Error()
		out.ErrorCode = errors.ErrInternalServer.Code

		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			out.ErrorCode = appErr.Code
		}

		w.Logger().Info("Trip evaluation rejected",
			zap.String("request_id", event.RequestID.String()),
			zap.String("error_code", out.ErrorCode),
			zap.Error(err))
		return out
	}

	out.Result = result
	return out
}

// publish повторяет XADD до maxRetries раз
func (w *TripEvaluationWorker) publish(ctx context.Context, event *domain.TripEvaluatedEvent) error {
	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = w.streamRepo.PublishToStream(ctx, domain.StreamTripEvaluated, event); err == nil {
			return nil
		}
		if attempt < w.maxRetries && !w.Wait(ctx, publishBackoff) {
			break
		}
	}
	return err
}

func parseMessage(msg domain.StreamMessage) (*domain.TripEvaluateEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.TripEvaluateEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}
