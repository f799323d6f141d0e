package worker

import (
	"context"
)

// Worker интерфейс для всех воркеров
type Worker interface {
	// Start блокируется до остановки воркера или отмены ctx
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться после текущего batch
	Stop() error

	Name() string
}
