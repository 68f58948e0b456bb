package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/lms-quiz-api/internal/service"
	"github.com/noah-isme/lms-quiz-api/internal/utils"
)

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthCheck returns a handler that reports liveness.
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendJSON(c, HealthResponse{
			Status:    "ok",
			Message:   "Server is running",
			Timestamp: time.Now().UTC(),
		})
	}
}

// ServerInfo returns a handler that reports storage counts and service identity.
func ServerInfo(stats service.StatsService, logger zerolog.Logger) fiber.Handler {
	log := logger.With().Str("component", "info_handler").Logger()

	return func(c *fiber.Ctx) error {
		info, err := stats.Info(c.Context())
		if err != nil {
			log.Error().Err(err).Msg("failed to collect server info")
			return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
		}

		return utils.SendJSON(c, info)
	}
}

// APIIndex returns the root endpoint listing the available route groups.
func APIIndex() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendJSON(c, fiber.Map{
			"message": "LMS Demo API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health": "/api/health",
				"info":   "/api/info",
				"teacher": fiber.Map{
					"assignments":           "GET /api/teacher/assignments",
					"assignment":            "GET /api/teacher/assignments/:id",
					"submissions":           "GET /api/teacher/submissions",
					"submission":            "GET /api/teacher/submissions/:id",
					"assignmentSubmissions": "GET /api/teacher/assignments/:id/submissions",
				},
				"student": fiber.Map{
					"assignments": "GET /api/student/assignments",
					"assignment":  "GET /api/student/assignments/:id",
					"submissions": "GET /api/student/submissions?studentName=name",
					"submission":  "GET /api/student/submissions/:id",
				},
			},
		})
	}
}
