package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/config"
	"github.com/eco-travel-service/internal/delivery/http/handler"
	"github.com/eco-travel-service/internal/delivery/http/middleware"
	"github.com/eco-travel-service/internal/pkg/errors"
)

// HealthCheck - проверка внешней зависимости (Redis, PostgreSQL)
type HealthCheck func(ctx context.Context) error

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	evaluationHandler *handler.EvaluationHandler
	catalogHandler    *handler.CatalogHandler
	accountHandler    *handler.AccountHandler

	rateLimiter  *middleware.RateLimiter
	healthChecks map[string]HealthCheck
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	evaluationHandler *handler.EvaluationHandler,
	catalogHandler *handler.CatalogHandler,
	accountHandler *handler.AccountHandler,
	healthChecks map[string]HealthCheck,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Eco Travel Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		evaluationHandler: evaluationHandler,
		catalogHandler:    catalogHandler,
		accountHandler:    accountHandler,
		rateLimiter:       middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		healthChecks:      healthChecks,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (тесты через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	// Catalog routes
	catalog := api.Group("/catalog")
	catalog.Get("/destinations", s.catalogHandler.ListDestinations)
	catalog.Get("/destinations/:name", s.catalogHandler.GetDestination)
	catalog.Get("/cities", s.catalogHandler.ListCities)
	catalog.Get("/options", s.catalogHandler.ListOptions)
	catalog.Get("/stats", s.catalogHandler.GetStatistics)

	// Rate limited routes
	limit := s.rateLimiter.Handler()
	api.Post("/evaluate", limit, s.evaluationHandler.Evaluate)
	api.Post("/transport/compare", limit, s.evaluationHandler.CompareTransport)

	api.Post("/accounts", limit, s.accountHandler.Create)
	api.Post("/accounts/verify", limit, s.accountHandler.Verify)
	api.Post("/accounts/reset", limit, s.accountHandler.ResetPassword)
}

// health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK
	checks := make(map[string]string, len(s.healthChecks))
	for name, check := range s.healthChecks {
		if err := check(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = "unhealthy"
			status = "degraded"
			code = fiber.StatusServiceUnavailable
			continue
		}
		checks[name] = "healthy"
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404, 405, body limit) в формате ErrorResponse
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		appErr := errors.New(errorCode(code), message, code)
		return c.Status(code).JSON(fiber.Map{"error": appErr})
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	}
	if status >= fiber.StatusInternalServerError {
		return errors.ErrInternalServer.Code
	}
	return errors.ErrInvalidRequest.Code
}
