package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/noah-isme/lms-quiz-api/internal/dto"
	"github.com/noah-isme/lms-quiz-api/internal/models"
	"github.com/noah-isme/lms-quiz-api/internal/repository"
	"github.com/noah-isme/lms-quiz-api/pkg/ai"
)

// ErrFeedbackNotConfigured indicates no AI credential is configured, so
// feedback generation is unavailable.
var ErrFeedbackNotConfigured = errors.New("openai api key not configured")

// ErrSubmissionNotGraded indicates feedback was requested before the
// submission was auto-graded.
var ErrSubmissionNotGraded = errors.New("submission has not been graded yet")

// Fallback feedback used when the generation call fails, so students never
// see a raw upstream error.
const (
	fallbackFeedbackCorrect   = "Great job! You got this question correct. Keep up the excellent work!"
	fallbackFeedbackIncorrect = "This question needs another look. Review the concepts and try again—you've got this!"
)

// GradingService sequences the grading and feedback workflow across
// submissions: auto-grade batches, per-submission feedback generation, and
// teacher finalization.
type GradingService interface {
	AutoGrade(ctx context.Context, assignmentID uint) (int, error)
	GenerateFeedback(ctx context.Context, submissionID uint) (int, error)
	Finalize(ctx context.Context, submissionID uint, payload dto.FinalizeRequest) (dto.SubmissionResponse, error)
}

type gradingService struct {
	submissions     repository.SubmissionRepository
	assignments     repository.AssignmentRepository
	generator       ai.Generator
	feedbackTimeout time.Duration
	validator       *validator.Validate
	logger          zerolog.Logger
	now             func() time.Time
}

// NewGradingService constructs the grading workflow service. The generator
// may be nil when no AI credential is configured; feedback generation then
// returns ErrFeedbackNotConfigured.
func NewGradingService(submissions repository.SubmissionRepository, assignments repository.AssignmentRepository, generator ai.Generator, feedbackTimeout time.Duration, validate *validator.Validate, logger zerolog.Logger) GradingService {
	if feedbackTimeout <= 0 {
		feedbackTimeout = 30 * time.Second
	}

	return &gradingService{
		submissions:     submissions,
		assignments:     assignments,
		generator:       generator,
		feedbackTimeout: feedbackTimeout,
		validator:       validate,
		logger:          logger.With().Str("component", "grading_service").Logger(),
		now:             time.Now,
	}
}

// AutoGrade scores every pending submission for the assignment and reports
// how many were updated. A persistence failure on one submission does not
// stop the rest of the batch.
func (s *gradingService) AutoGrade(ctx context.Context, assignmentID uint) (int, error) {
	tracer := otel.Tracer("github.com/noah-isme/lms-quiz-api/internal/service/grading")
	ctx, span := tracer.Start(ctx, "grading.autograde")
	span.SetAttributes(attribute.Int64("grading.assignment_id", int64(assignmentID)))
	defer span.End()

	assignment, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "assignment_not_found")
			return 0, ErrAssignmentNotFound
		}
		span.RecordError(err)
		return 0, err
	}

	pending := models.SubmissionStatusPending
	submissions, err := s.submissions.List(ctx, repository.SubmissionFilter{
		AssignmentID: &assignmentID,
		Status:       &pending,
	})
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	questions := assignment.QuestionList()
	gradedCount := 0

	for _, submission := range submissions {
		graded, total := GradeAnswers(questions, submission.AnswerList())

		submission.SetAnswers(graded)
		score := total
		submission.AIScore = &score
		submission.Status = models.SubmissionStatusSubmitted
		gradedAt := s.now()
		submission.GradedAt = &gradedAt

		if err := s.submissions.Update(ctx, &submission); err != nil {
			s.logger.Warn().Err(err).Uint("submission_id", submission.ID).Msg("failed to persist graded submission")
			span.RecordError(err)
			continue
		}

		gradedCount++
	}

	span.SetAttributes(attribute.Int("grading.graded_count", gradedCount))
	s.logger.Info().Uint("assignment_id", assignmentID).Int("graded", gradedCount).Int("pending", len(submissions)).Msg("auto-grade batch complete")

	return gradedCount, nil
}

// GenerateFeedback produces feedback text for every answer that does not
// already carry one, and reports how many answers received generated text.
// Answers referencing an unknown question are skipped. Generation failures
// fall back to a fixed message keyed on correctness.
func (s *gradingService) GenerateFeedback(ctx context.Context, submissionID uint) (int, error) {
	if s.generator == nil {
		return 0, ErrFeedbackNotConfigured
	}

	tracer := otel.Tracer("github.com/noah-isme/lms-quiz-api/internal/service/grading")
	ctx, span := tracer.Start(ctx, "grading.feedback")
	span.SetAttributes(attribute.Int64("grading.submission_id", int64(submissionID)))
	defer span.End()

	submission, err := s.submissions.GetByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "submission_not_found")
			return 0, ErrSubmissionNotFound
		}
		span.RecordError(err)
		return 0, err
	}

	if submission.Status == models.SubmissionStatusPending {
		span.SetStatus(codes.Error, "submission_not_graded")
		return 0, ErrSubmissionNotGraded
	}

	assignment, err := s.assignments.GetByID(ctx, submission.AssignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "assignment_not_found")
			return 0, ErrAssignmentNotFound
		}
		span.RecordError(err)
		return 0, err
	}

	answers := submission.AnswerList()
	feedbackCount := 0

	for i := range answers {
		if answers[i].AIFeedback != "" {
			continue
		}

		question, ok := assignment.QuestionByNumber(answers[i].QuestionNumber)
		if !ok {
			continue
		}

		isCorrect := answers[i].IsCorrect != nil && *answers[i].IsCorrect

		text, err := s.generateOne(ctx, question, answers[i].SelectedOptions, isCorrect)
		if err != nil {
			s.logger.Warn().Err(err).
				Uint("submission_id", submission.ID).
				Int("question", answers[i].QuestionNumber).
				Msg("feedback generation failed, using fallback")
			span.RecordError(err)

			if isCorrect {
				answers[i].AIFeedback = fallbackFeedbackCorrect
			} else {
				answers[i].AIFeedback = fallbackFeedbackIncorrect
			}
			continue
		}

		answers[i].AIFeedback = text
		generatedAt := s.now()
		answers[i].FeedbackGeneratedAt = &generatedAt
		feedbackCount++
	}

	submission.SetAnswers(answers)
	if err := s.submissions.Update(ctx, &submission); err != nil {
		span.RecordError(err)
		return 0, err
	}

	span.SetAttributes(attribute.Int("grading.feedback_count", feedbackCount))

	return feedbackCount, nil
}

func (s *gradingService) generateOne(ctx context.Context, question models.Question, selected []int, isCorrect bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.feedbackTimeout)
	defer cancel()

	return s.generator.Generate(ctx, ai.FeedbackInput{
		QuestionText:   question.QuestionText,
		Options:        question.Options,
		CorrectAnswers: optionTexts(question.Options, question.CorrectOptions),
		StudentAnswers: optionTexts(question.Options, selected),
		Rubric:         question.Rubric,
		IsCorrect:      isCorrect,
	})
}

// optionTexts resolves option indices into their display texts, ignoring
// indices outside the option list.
func optionTexts(options []string, indices []int) []string {
	texts := make([]string, 0, len(indices))
	for _, index := range indices {
		if index < 0 || index >= len(options) {
			continue
		}
		texts = append(texts, options[index])
	}
	return texts
}

// Finalize records the teacher's final score, grade and notes, and moves the
// submission into its terminal graded state. The final score defaults to the
// auto-computed score when none is supplied.
func (s *gradingService) Finalize(ctx context.Context, submissionID uint, payload dto.FinalizeRequest) (dto.SubmissionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubmissionResponse{}, err
	}

	submission, err := s.submissions.GetByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionResponse{}, ErrSubmissionNotFound
		}
		return dto.SubmissionResponse{}, err
	}

	if payload.FinalScore != nil {
		score := *payload.FinalScore
		submission.FinalScore = &score
	} else {
		submission.FinalScore = submission.AIScore
	}

	submission.FinalGrade = payload.FinalGrade
	submission.TeacherNotes = payload.TeacherNotes
	submission.Status = models.SubmissionStatusGraded
	finalizedAt := s.now()
	submission.FinalizedAt = &finalizedAt

	if err := s.submissions.Update(ctx, &submission); err != nil {
		return dto.SubmissionResponse{}, err
	}

	s.logger.Info().
		Uint("submission_id", submission.ID).
		Str("final_grade", payload.FinalGrade).
		Msg("submission finalized")

	return dto.NewSubmissionResponse(submission), nil
}
