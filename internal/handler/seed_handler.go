package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/lms-quiz-api/internal/service"
	"github.com/noah-isme/lms-quiz-api/internal/utils"
)

// SeedHandler exposes tooling endpoints for seeding demo data.
type SeedHandler struct {
	service service.SeedService
	logger  zerolog.Logger
}

// NewSeedHandler constructs a seed handler.
func NewSeedHandler(service service.SeedService, logger zerolog.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		logger:  logger.With().Str("component", "seed_handler").Logger(),
	}
}

// Register wires seed routes.
func (h *SeedHandler) Register(router fiber.Router) {
	router.Post("/assignments", h.assignments)
}

func (h *SeedHandler) assignments(c *fiber.Ctx) error {
	token := c.Get("X-Seed-Token")

	affected, err := h.service.SeedAssignments(c.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSeedDisabled):
			return utils.SendError(c, fiber.StatusNotFound, "seeding is disabled")
		case errors.Is(err, service.ErrSeedUnauthorized):
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid seed token")
		default:
			h.logger.Error().Err(err).Msg("seeding failed")
			return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return utils.SendJSON(c, fiber.Map{
		"message":  "sample assignments seeded",
		"affected": affected,
	})
}
