package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/lms-quiz-api/internal/dto"
	"github.com/noah-isme/lms-quiz-api/internal/models"
	"github.com/noah-isme/lms-quiz-api/internal/repository"
)

// ErrSubmissionNotFound indicates the requested submission does not exist.
var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionService exposes submission use cases for both roles.
type SubmissionService interface {
	Submit(ctx context.Context, assignmentID uint, payload dto.SubmitRequest) (dto.StudentSubmissionResponse, error)
	ListByAssignment(ctx context.Context, assignmentID uint) ([]dto.SubmissionResponse, error)
	ListAll(ctx context.Context) ([]dto.SubmissionResponse, error)
	GetForTeacher(ctx context.Context, id uint) (dto.SubmissionResponse, error)
	GetForStudent(ctx context.Context, id uint) (dto.StudentSubmissionResponse, error)
	ListForStudent(ctx context.Context, studentName string) ([]dto.StudentSubmissionListItem, error)
	GetDetails(ctx context.Context, id uint) (dto.SubmissionDetailResponse, error)
}

type submissionService struct {
	submissions repository.SubmissionRepository
	assignments repository.AssignmentRepository
	validator   *validator.Validate
	logger      zerolog.Logger
	now         func() time.Time
}

// NewSubmissionService builds the submission service.
func NewSubmissionService(submissions repository.SubmissionRepository, assignments repository.AssignmentRepository, validate *validator.Validate, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		submissions: submissions,
		assignments: assignments,
		validator:   validate,
		logger:      logger.With().Str("component", "submission_service").Logger(),
		now:         time.Now,
	}
}

func (s *submissionService) Submit(ctx context.Context, assignmentID uint, payload dto.SubmitRequest) (dto.StudentSubmissionResponse, error) {
	if _, err := s.assignments.GetByID(ctx, assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentSubmissionResponse{}, ErrAssignmentNotFound
		}

		return dto.StudentSubmissionResponse{}, err
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentSubmissionResponse{}, err
	}

	answers := make([]models.Answer, 0, len(payload.Answers))
	for _, answer := range payload.Answers {
		answers = append(answers, models.Answer{
			QuestionNumber:  answer.QuestionNumber,
			SelectedOptions: answer.SelectedOptions,
		})
	}

	submission := models.Submission{
		AssignmentID: assignmentID,
		StudentName:  payload.StudentName,
		Status:       models.SubmissionStatusPending,
		SubmittedAt:  s.now(),
	}
	submission.SetAnswers(answers)

	if err := s.submissions.Create(ctx, &submission); err != nil {
		return dto.StudentSubmissionResponse{}, err
	}

	s.logger.Info().
		Uint("submission_id", submission.ID).
		Uint("assignment_id", assignmentID).
		Str("student", payload.StudentName).
		Msg("submission received")

	return dto.NewStudentSubmissionResponse(submission), nil
}

func (s *submissionService) ListByAssignment(ctx context.Context, assignmentID uint) ([]dto.SubmissionResponse, error) {
	submissions, err := s.submissions.List(ctx, repository.SubmissionFilter{AssignmentID: &assignmentID})
	if err != nil {
		return nil, err
	}

	return dto.NewSubmissionResponseSlice(submissions), nil
}

func (s *submissionService) ListAll(ctx context.Context) ([]dto.SubmissionResponse, error) {
	submissions, err := s.submissions.List(ctx, repository.SubmissionFilter{})
	if err != nil {
		return nil, err
	}

	return dto.NewSubmissionResponseSlice(submissions), nil
}

func (s *submissionService) GetForTeacher(ctx context.Context, id uint) (dto.SubmissionResponse, error) {
	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionResponse{}, ErrSubmissionNotFound
		}

		return dto.SubmissionResponse{}, err
	}

	response := dto.NewSubmissionResponse(submission)

	// The embedded assignment is best-effort; the submission renders without
	// it when the lookup fails.
	if assignment, err := s.assignments.GetByID(ctx, submission.AssignmentID); err == nil {
		embedded := dto.NewAssignmentResponse(assignment)
		response.Assignment = &embedded
	}

	return response, nil
}

func (s *submissionService) GetForStudent(ctx context.Context, id uint) (dto.StudentSubmissionResponse, error) {
	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentSubmissionResponse{}, ErrSubmissionNotFound
		}

		return dto.StudentSubmissionResponse{}, err
	}

	return dto.NewStudentSubmissionResponse(submission), nil
}

func (s *submissionService) ListForStudent(ctx context.Context, studentName string) ([]dto.StudentSubmissionListItem, error) {
	filter := repository.SubmissionFilter{}
	if studentName != "" {
		filter.StudentName = &studentName
	}

	submissions, err := s.submissions.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StudentSubmissionListItem, 0, len(submissions))

	if studentName == "" {
		for _, submission := range submissions {
			items = append(items, dto.StudentSubmissionListItem{
				StudentSubmissionResponse: dto.NewStudentSubmissionResponse(submission),
			})
		}
		return items, nil
	}

	ids := make([]uint, 0, len(submissions))
	seen := make(map[uint]struct{}, len(submissions))
	for _, submission := range submissions {
		if _, ok := seen[submission.AssignmentID]; ok {
			continue
		}
		seen[submission.AssignmentID] = struct{}{}
		ids = append(ids, submission.AssignmentID)
	}

	assignments, err := s.assignments.ListByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to resolve assignments for student submissions")
		assignments = nil
	}

	byID := make(map[uint]models.Assignment, len(assignments))
	for _, assignment := range assignments {
		byID[assignment.ID] = assignment
	}

	for _, submission := range submissions {
		item := dto.StudentSubmissionListItem{
			StudentSubmissionResponse: dto.NewStudentSubmissionResponse(submission),
			AssignmentTitle:           "Unknown Assignment",
		}
		if assignment, ok := byID[submission.AssignmentID]; ok {
			item.AssignmentTitle = assignment.Title
			item.AssignmentDescription = assignment.Description
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *submissionService) GetDetails(ctx context.Context, id uint) (dto.SubmissionDetailResponse, error) {
	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionDetailResponse{}, ErrSubmissionNotFound
		}

		return dto.SubmissionDetailResponse{}, err
	}

	assignment, err := s.assignments.GetByID(ctx, submission.AssignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionDetailResponse{}, ErrAssignmentNotFound
		}

		return dto.SubmissionDetailResponse{}, err
	}

	return dto.SubmissionDetailResponse{
		StudentSubmissionResponse: dto.NewStudentSubmissionResponse(submission),
		Assignment: dto.SubmissionDetailAssignment{
			ID:          assignment.ID,
			Title:       assignment.Title,
			Description: assignment.Description,
			Questions:   dto.NewReviewQuestions(assignment.QuestionList()),
		},
	}, nil
}
