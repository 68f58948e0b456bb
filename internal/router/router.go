package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/lms-quiz-api/internal/config"
	"github.com/noah-isme/lms-quiz-api/internal/handler"
	"github.com/noah-isme/lms-quiz-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AssignmentHandler *handler.AssignmentHandler
	SubmissionHandler *handler.SubmissionHandler
	StudentHandler    *handler.StudentHandler
	SeedHandler       *handler.SeedHandler
	InfoHandler       fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/", handler.APIIndex())
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck())
	if deps.InfoHandler != nil {
		api.Get("/info", deps.InfoHandler)
	}

	if deps.AssignmentHandler != nil {
		teacher := api.Group("/teacher")
		deps.AssignmentHandler.Register(teacher.Group("/assignments"))

		if deps.SubmissionHandler != nil {
			deps.SubmissionHandler.Register(teacher.Group("/submissions"))
		}
	}

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/student"))
	}

	if deps.SeedHandler != nil {
		deps.SeedHandler.Register(api.Group("/seed"))
	}
}
