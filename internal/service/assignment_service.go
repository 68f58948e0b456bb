package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/lms-quiz-api/internal/dto"
	"github.com/noah-isme/lms-quiz-api/internal/models"
	"github.com/noah-isme/lms-quiz-api/internal/repository"
)

// ErrAssignmentNotFound indicates the requested assignment does not exist.
var ErrAssignmentNotFound = errors.New("assignment not found")

// ErrInvalidQuestion indicates a question in a create request is missing its
// rubric or answer key, or references an option index out of range.
var ErrInvalidQuestion = errors.New("all questions must have rubric and at least one correct answer")

// AssignmentService exposes assignment use cases for both roles.
type AssignmentService interface {
	ListForTeacher(ctx context.Context) ([]dto.TeacherAssignmentListItem, error)
	Get(ctx context.Context, id uint) (dto.AssignmentResponse, error)
	Create(ctx context.Context, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error)
	ListForStudent(ctx context.Context) ([]dto.StudentAssignmentSummary, error)
	GetForStudent(ctx context.Context, id uint) (dto.StudentAssignmentResponse, error)
}

type assignmentService struct {
	assignments repository.AssignmentRepository
	submissions repository.SubmissionRepository
	validator   *validator.Validate
	logger      zerolog.Logger
	now         func() time.Time
}

// NewAssignmentService builds a new assignment service.
func NewAssignmentService(assignments repository.AssignmentRepository, submissions repository.SubmissionRepository, validate *validator.Validate, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		assignments: assignments,
		submissions: submissions,
		validator:   validate,
		logger:      logger.With().Str("component", "assignment_service").Logger(),
		now:         time.Now,
	}
}

func (s *assignmentService) ListForTeacher(ctx context.Context) ([]dto.TeacherAssignmentListItem, error) {
	assignments, err := s.assignments.List(ctx)
	if err != nil {
		return nil, err
	}

	submissions, err := s.submissions.List(ctx, repository.SubmissionFilter{})
	if err != nil {
		// The overview still renders without counts when the submission
		// listing fails, matching upstream behaviour.
		s.logger.Warn().Err(err).Msg("failed to list submissions for assignment stats")
		submissions = nil
	}

	items := make([]dto.TeacherAssignmentListItem, 0, len(assignments))
	for _, assignment := range assignments {
		item := dto.TeacherAssignmentListItem{AssignmentResponse: dto.NewAssignmentResponse(assignment)}
		for _, submission := range submissions {
			if submission.AssignmentID != assignment.ID {
				continue
			}
			item.TotalSubmissions++
			switch submission.Status {
			case models.SubmissionStatusGraded:
				item.GradedCount++
			case models.SubmissionStatusPending:
				item.PendingCount++
			}
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *assignmentService) Get(ctx context.Context, id uint) (dto.AssignmentResponse, error) {
	assignment, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}

		return dto.AssignmentResponse{}, err
	}

	return dto.NewAssignmentResponse(assignment), nil
}

func (s *assignmentService) Create(ctx context.Context, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	dueDate, err := time.Parse(time.RFC3339, payload.DueDate)
	if err != nil {
		return dto.AssignmentResponse{}, fmt.Errorf("invalid due date: %w", err)
	}

	questions := make([]models.Question, 0, len(payload.Questions))
	for idx, question := range payload.Questions {
		if question.Rubric == "" || len(question.CorrectOptions) == 0 {
			return dto.AssignmentResponse{}, ErrInvalidQuestion
		}
		for _, option := range question.CorrectOptions {
			if option < 0 || option >= len(question.Options) {
				return dto.AssignmentResponse{}, fmt.Errorf("%w: question %d has a correct option index out of range", ErrInvalidQuestion, idx+1)
			}
		}

		questions = append(questions, models.Question{
			QuestionNumber: idx + 1,
			QuestionText:   question.QuestionText,
			Options:        question.Options,
			CorrectOptions: question.CorrectOptions,
			Rubric:         question.Rubric,
			Marks:          question.Marks,
		})
	}

	assignment := models.Assignment{
		Title:       payload.Title,
		Description: payload.Description,
		DueDate:     dueDate,
	}
	assignment.SetQuestions(questions)

	if err := s.assignments.Create(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.logger.Info().Uint("assignment_id", assignment.ID).Int("questions", len(questions)).Msg("assignment created")

	return dto.NewAssignmentResponse(assignment), nil
}

func (s *assignmentService) ListForStudent(ctx context.Context) ([]dto.StudentAssignmentSummary, error) {
	assignments, err := s.assignments.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.StudentAssignmentSummary, 0, len(assignments))
	for _, assignment := range assignments {
		summaries = append(summaries, dto.NewStudentAssignmentSummary(assignment))
	}

	return summaries, nil
}

func (s *assignmentService) GetForStudent(ctx context.Context, id uint) (dto.StudentAssignmentResponse, error) {
	assignment, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentAssignmentResponse{}, ErrAssignmentNotFound
		}

		return dto.StudentAssignmentResponse{}, err
	}

	return dto.NewStudentAssignmentResponse(assignment), nil
}
