package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/pkg/monitoring"
)

// Recovery - middleware для восстановления после паники; паника пишется в zap со стеком
func Recovery(logger *zap.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			monitoring.RecordError("http", "panic")
			logger.Error("Panic recovered",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.String("panic", fmt.Sprint(e)),
				zap.Stack("stack"),
			)
		},
	})
}
