package handler

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/lms-quiz-api/internal/dto"
	"github.com/noah-isme/lms-quiz-api/internal/service"
	"github.com/noah-isme/lms-quiz-api/internal/utils"
)

// SubmissionHandler wires the teacher-facing submission routes, including
// feedback generation and finalization.
type SubmissionHandler struct {
	submissions service.SubmissionService
	grading     service.GradingService
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewSubmissionHandler constructs the handler.
func NewSubmissionHandler(submissions service.SubmissionService, grading service.GradingService, validate *validator.Validate, logger zerolog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissions: submissions,
		grading:     grading,
		validator:   validate,
		logger:      logger.With().Str("component", "submission_handler").Logger(),
	}
}

// Register attaches the teacher submission endpoints to the router group.
func (h *SubmissionHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("/:id/generate-feedback", h.generateFeedback)
	router.Post("/:id/finalize", h.finalize)
}

func (h *SubmissionHandler) list(c *fiber.Ctx) error {
	submissions, err := h.submissions.ListAll(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendJSON(c, submissions)
}

func (h *SubmissionHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	submission, err := h.submissions.GetForTeacher(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "Submission not found")
		}
		return h.internalError(c, err)
	}

	return utils.SendJSON(c, submission)
}

func (h *SubmissionHandler) generateFeedback(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	feedbackCount, err := h.grading.GenerateFeedback(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "Submission not found")
		case errors.Is(err, service.ErrAssignmentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "Assignment not found")
		case errors.Is(err, service.ErrFeedbackNotConfigured):
			return utils.SendError(c, fiber.StatusInternalServerError, "OpenAI API key not configured")
		case errors.Is(err, service.ErrSubmissionNotGraded):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendJSON(c, dto.FeedbackResponse{
		Message:       fmt.Sprintf("Generated feedback for %d questions", feedbackCount),
		FeedbackCount: feedbackCount,
	})
}

func (h *SubmissionHandler) finalize(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.FinalizeRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	submission, err := h.grading.Finalize(c.Context(), id, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "Submission not found")
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendJSON(c, submission)
}

func (h *SubmissionHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
}
