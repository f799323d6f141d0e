package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - дашборд ходит в API из браузера с другого origin; API без cookie-аутентификации
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Content-Type,Accept,Accept-Language," + RequestIDHeader,
		ExposeHeaders: RequestIDHeader,
	})
}
