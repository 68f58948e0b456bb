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

// AssignmentHandler wires the teacher-facing assignment routes, including the
// auto-grade batch operation.
type AssignmentHandler struct {
	assignments service.AssignmentService
	submissions service.SubmissionService
	grading     service.GradingService
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewAssignmentHandler constructs the handler.
func NewAssignmentHandler(assignments service.AssignmentService, submissions service.SubmissionService, grading service.GradingService, validate *validator.Validate, logger zerolog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		assignments: assignments,
		submissions: submissions,
		grading:     grading,
		validator:   validate,
		logger:      logger.With().Str("component", "assignment_handler").Logger(),
	}
}

// Register attaches the teacher assignment endpoints to the router group.
func (h *AssignmentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Get("/:id/submissions", h.listSubmissions)
	router.Post("/:id/auto-grade", h.autoGrade)
}

func (h *AssignmentHandler) list(c *fiber.Ctx) error {
	assignments, err := h.assignments.ListForTeacher(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendJSON(c, assignments)
}

func (h *AssignmentHandler) create(c *fiber.Ctx) error {
	var payload dto.AssignmentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	assignment, err := h.assignments.Create(c.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuestion):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendJSON(c, assignment)
}

func (h *AssignmentHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	assignment, err := h.assignments.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return h.internalError(c, err)
	}

	return utils.SendJSON(c, assignment)
}

func (h *AssignmentHandler) listSubmissions(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	submissions, err := h.submissions.ListByAssignment(c.Context(), id)
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendJSON(c, submissions)
}

func (h *AssignmentHandler) autoGrade(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	gradedCount, err := h.grading.AutoGrade(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return h.internalError(c, err)
	}

	return utils.SendJSON(c, dto.AutoGradeResponse{
		Message:     fmt.Sprintf("Auto-graded %d submissions", gradedCount),
		GradedCount: gradedCount,
	})
}

func (h *AssignmentHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
}
