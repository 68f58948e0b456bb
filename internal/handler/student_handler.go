package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/lms-quiz-api/internal/dto"
	"github.com/noah-isme/lms-quiz-api/internal/service"
	"github.com/noah-isme/lms-quiz-api/internal/utils"
)

// StudentHandler wires the student-facing routes. Student views never expose
// the answer key before the review endpoint.
type StudentHandler struct {
	assignments service.AssignmentService
	submissions service.SubmissionService
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(assignments service.AssignmentService, submissions service.SubmissionService, validate *validator.Validate, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		assignments: assignments,
		submissions: submissions,
		validator:   validate,
		logger:      logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches the student endpoints to the router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("/assignments", h.listAssignments)
	router.Get("/assignments/:id", h.getAssignment)
	router.Post("/assignments/:id/submit", h.submit)
	router.Get("/submissions", h.listSubmissions)
	router.Get("/submissions/:id", h.getSubmission)
	router.Get("/submissions/:id/details", h.getSubmissionDetails)
}

func (h *StudentHandler) listAssignments(c *fiber.Ctx) error {
	assignments, err := h.assignments.ListForStudent(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendJSON(c, assignments)
}

func (h *StudentHandler) getAssignment(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	assignment, err := h.assignments.GetForStudent(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return h.internalError(c, err)
	}

	return utils.SendJSON(c, assignment)
}

func (h *StudentHandler) submit(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.SubmitRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	submission, err := h.submissions.Submit(c.Context(), id, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "Assignment not found")
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendJSON(c, submission)
}

func (h *StudentHandler) listSubmissions(c *fiber.Ctx) error {
	studentName := strings.TrimSpace(c.Query("studentName"))

	submissions, err := h.submissions.ListForStudent(c.Context(), studentName)
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendJSON(c, submissions)
}

func (h *StudentHandler) getSubmission(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	submission, err := h.submissions.GetForStudent(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "Submission not found")
		}
		return h.internalError(c, err)
	}

	return utils.SendJSON(c, submission)
}

func (h *StudentHandler) getSubmissionDetails(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	details, err := h.submissions.GetDetails(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "Submission not found")
		case errors.Is(err, service.ErrAssignmentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "Assignment not found")
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendJSON(c, details)
}

func (h *StudentHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
}
