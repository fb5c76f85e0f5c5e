package route

import (
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/handler"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api               *fiber.App
	Middleware        *middleware.Middleware
	SubmissionHandler handler.SubmissionHandler
	PracticeHandler   handler.PracticeHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	SetupSubmissionRoute(c.Api, c.SubmissionHandler, c.Middleware)
	SetupPracticeRoute(c.Api, c.PracticeHandler, c.Middleware)
}
