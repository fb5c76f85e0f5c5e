package route

import (
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/handler"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupSubmissionRoute(api *fiber.App, handler handler.SubmissionHandler, m *middleware.Middleware) {
	api.Post("/submissions", handler.Score)
	api.Post("/translate", handler.Translate)

	learnerRouter := api.Group("/learners/:learner_id")
	{
		learnerRouter.Get("/submissions", handler.History)
		learnerRouter.Get("/profile", handler.Profile)
	}
}
