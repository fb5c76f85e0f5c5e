package route

import (
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/handler"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupPracticeRoute(api *fiber.App, handler handler.PracticeHandler, m *middleware.Middleware) {
	learnerRouter := api.Group("/learners/:learner_id/practice")
	{
		learnerRouter.Get("/", handler.Queue)
		learnerRouter.Post("/assign", handler.Assign)
	}

	practiceRouter := api.Group("/practice")
	{
		practiceRouter.Post("/assignments/:assignment_id/complete", handler.Complete)
		practiceRouter.Post("/items", handler.CreateItem)
		practiceRouter.Get("/items", handler.ListBank)
	}
}
