package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-quiz-api/internal/dto"
	"github.com/noah-isme/lms-quiz-api/internal/models"
	"github.com/noah-isme/lms-quiz-api/pkg/ai"
)

type fakeGenerator struct {
	calls  int
	inputs []ai.FeedbackInput
	text   string
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, input ai.FeedbackInput) (string, error) {
	f.calls++
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func gradedAssignment() models.Assignment {
	assignment := models.Assignment{ID: 1, Title: "Quiz"}
	assignment.SetQuestions([]models.Question{
		{QuestionNumber: 1, QuestionText: "Pick A", Options: []string{"A", "B", "C"}, CorrectOptions: []int{0}, Rubric: "A is right", Marks: 2},
		{QuestionNumber: 2, QuestionText: "Pick B and C", Options: []string{"A", "B", "C"}, CorrectOptions: []int{1, 2}, Rubric: "B and C are right", Marks: 3},
	})
	return assignment
}

func pendingSubmission(id uint, answers []models.Answer) models.Submission {
	submission := models.Submission{
		ID:           id,
		AssignmentID: 1,
		StudentName:  "Alice",
		Status:       models.SubmissionStatusPending,
		SubmittedAt:  time.Now(),
	}
	submission.SetAnswers(answers)
	return submission
}

func TestAutoGradeScoresPendingSubmissions(t *testing.T) {
	assignments := &fakeAssignmentRepo{assignments: []models.Assignment{gradedAssignment()}}
	submissions := &fakeSubmissionRepo{
		submissions: []models.Submission{
			pendingSubmission(1, []models.Answer{
				{QuestionNumber: 1, SelectedOptions: []int{0}},
				{QuestionNumber: 2, SelectedOptions: []int{2, 1}},
			}),
			pendingSubmission(2, []models.Answer{
				{QuestionNumber: 1, SelectedOptions: []int{1}},
				{QuestionNumber: 2, SelectedOptions: []int{1}},
			}),
		},
		nextID: 2,
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewGradingService(submissions, assignments, nil, time.Second, validate, testLogger())

	count, err := svc.AutoGrade(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	first, err := submissions.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, models.SubmissionStatusSubmitted, first.Status)
	require.NotNil(t, first.AIScore)
	require.Equal(t, 5.0, *first.AIScore)
	require.NotNil(t, first.GradedAt)

	second, err := submissions.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, second.AIScore)
	require.Zero(t, *second.AIScore)
}

func TestAutoGradeSkipsAlreadyGraded(t *testing.T) {
	submitted := pendingSubmission(1, []models.Answer{{QuestionNumber: 1, SelectedOptions: []int{0}}})
	submitted.Status = models.SubmissionStatusSubmitted

	assignments := &fakeAssignmentRepo{assignments: []models.Assignment{gradedAssignment()}}
	submissions := &fakeSubmissionRepo{submissions: []models.Submission{submitted}, nextID: 1}

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewGradingService(submissions, assignments, nil, time.Second, validate, testLogger())

	count, err := svc.AutoGrade(context.Background(), 1)
	require.NoError(t, err)
	require.Zero(t, count)
	require.Zero(t, submissions.updateCalls)
}

func TestAutoGradeAssignmentNotFound(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewGradingService(&fakeSubmissionRepo{}, &fakeAssignmentRepo{}, nil, time.Second, validate, testLogger())

	_, err := svc.AutoGrade(context.Background(), 99)
	require.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestAutoGradeContinuesOnUpdateFailure(t *testing.T) {
	assignments := &fakeAssignmentRepo{assignments: []models.Assignment{gradedAssignment()}}
	submissions := &fakeSubmissionRepo{
		submissions: []models.Submission{
			pendingSubmission(1, []models.Answer{{QuestionNumber: 1, SelectedOptions: []int{0}}}),
			pendingSubmission(2, []models.Answer{{QuestionNumber: 1, SelectedOptions: []int{0}}}),
		},
		nextID:        2,
		failUpdateIDs: map[uint]bool{1: true},
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewGradingService(submissions, assignments, nil, time.Second, validate, testLogger())

	count, err := svc.AutoGrade(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestGenerateFeedbackNotConfigured(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewGradingService(&fakeSubmissionRepo{}, &fakeAssignmentRepo{}, nil, time.Second, validate, testLogger())

	_, err := svc.GenerateFeedback(context.Background(), 1)
	require.ErrorIs(t, err, ErrFeedbackNotConfigured)
}

func TestGenerateFeedbackRejectsPendingSubmission(t *testing.T) {
	assignments := &fakeAssignmentRepo{assignments: []models.Assignment{gradedAssignment()}}
	submissions := &fakeSubmissionRepo{
		submissions: []models.Submission{
			pendingSubmission(1, []models.Answer{{QuestionNumber: 1, SelectedOptions: []int{0}}}),
		},
		nextID: 1,
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewGradingService(submissions, assignments, &fakeGenerator{text: "ok"}, time.Second, validate, testLogger())

	_, err := svc.GenerateFeedback(context.Background(), 1)
	require.ErrorIs(t, err, ErrSubmissionNotGraded)
}

func TestGenerateFeedbackSkipsExistingFeedback(t *testing.T) {
	correct := true
	incorrect := false
	submission := pendingSubmission(1, []models.Answer{
		{QuestionNumber: 1, SelectedOptions: []int{0}, IsCorrect: &correct, AIFeedback: "Already praised"},
		{QuestionNumber: 2, SelectedOptions: []int{1}, IsCorrect: &incorrect},
	})
	submission.Status = models.SubmissionStatusSubmitted

	assignments := &fakeAssignmentRepo{assignments: []models.Assignment{gradedAssignment()}}
	submissions := &fakeSubmissionRepo{submissions: []models.Submission{submission}, nextID: 1}
	generator := &fakeGenerator{text: "You were close, keep going!"}

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewGradingService(submissions, assignments, generator, time.Second, validate, testLogger())

	count, err := svc.GenerateFeedback(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, 1, generator.calls)

	updated, err := submissions.GetByID(context.Background(), 1)
	require.NoError(t, err)
	answers := updated.AnswerList()
	require.Equal(t, "Already praised", answers[0].AIFeedback)
	require.Nil(t, answers[0].FeedbackGeneratedAt)
	require.Equal(t, "You were close, keep going!", answers[1].AIFeedback)
	require.NotNil(t, answers[1].FeedbackGeneratedAt)

	require.Equal(t, "Pick B and C", generator.inputs[0].QuestionText)
	require.Equal(t, []string{"B", "C"}, generator.inputs[0].CorrectAnswers)
	require.Equal(t, []string{"B"}, generator.inputs[0].StudentAnswers)
	require.False(t, generator.inputs[0].IsCorrect)
}

func TestGenerateFeedbackFallsBackOnGeneratorError(t *testing.T) {
	correct := true
	incorrect := false
	submission := pendingSubmission(1, []models.Answer{
		{QuestionNumber: 1, SelectedOptions: []int{0}, IsCorrect: &correct},
		{QuestionNumber: 2, SelectedOptions: []int{0}, IsCorrect: &incorrect},
	})
	submission.Status = models.SubmissionStatusSubmitted

	assignments := &fakeAssignmentRepo{assignments: []models.Assignment{gradedAssignment()}}
	submissions := &fakeSubmissionRepo{submissions: []models.Submission{submission}, nextID: 1}
	generator := &fakeGenerator{err: errors.New("rate limited")}

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewGradingService(submissions, assignments, generator, time.Second, validate, testLogger())

	count, err := svc.GenerateFeedback(context.Background(), 1)
	require.NoError(t, err)
	require.Zero(t, count)
	require.Equal(t, 1, submissions.updateCalls)

	updated, err := submissions.GetByID(context.Background(), 1)
	require.NoError(t, err)
	answers := updated.AnswerList()
	require.Equal(t, fallbackFeedbackCorrect, answers[0].AIFeedback)
	require.Equal(t, fallbackFeedbackIncorrect, answers[1].AIFeedback)
	require.Nil(t, answers[0].FeedbackGeneratedAt)
	require.Nil(t, answers[1].FeedbackGeneratedAt)
}

func TestFinalizeDefaultsToAutoScore(t *testing.T) {
	aiScore := 4.5
	submission := pendingSubmission(1, []models.Answer{{QuestionNumber: 1, SelectedOptions: []int{0}}})
	submission.Status = models.SubmissionStatusSubmitted
	submission.AIScore = &aiScore

	assignments := &fakeAssignmentRepo{assignments: []models.Assignment{gradedAssignment()}}
	submissions := &fakeSubmissionRepo{submissions: []models.Submission{submission}, nextID: 1}

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewGradingService(submissions, assignments, nil, time.Second, validate, testLogger())

	result, err := svc.Finalize(context.Background(), 1, dto.FinalizeRequest{FinalGrade: "A", TeacherNotes: "solid"})
	require.NoError(t, err)
	require.Equal(t, models.SubmissionStatusGraded, result.Status)
	require.NotNil(t, result.FinalScore)
	require.Equal(t, aiScore, *result.FinalScore)
	require.Equal(t, "A", result.FinalGrade)
	require.Equal(t, "solid", result.TeacherNotes)
	require.NotNil(t, result.FinalizedAt)
}

func TestFinalizeHonorsExplicitScore(t *testing.T) {
	aiScore := 4.5
	finalScore := 1.5
	submission := pendingSubmission(1, []models.Answer{{QuestionNumber: 1, SelectedOptions: []int{0}}})
	submission.Status = models.SubmissionStatusSubmitted
	submission.AIScore = &aiScore

	assignments := &fakeAssignmentRepo{assignments: []models.Assignment{gradedAssignment()}}
	submissions := &fakeSubmissionRepo{submissions: []models.Submission{submission}, nextID: 1}

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewGradingService(submissions, assignments, nil, time.Second, validate, testLogger())

	result, err := svc.Finalize(context.Background(), 1, dto.FinalizeRequest{FinalScore: &finalScore, FinalGrade: "B"})
	require.NoError(t, err)
	require.Equal(t, finalScore, *result.FinalScore)
	require.Equal(t, "B", result.FinalGrade)
}

func TestFinalizeHonorsExplicitZeroScore(t *testing.T) {
	aiScore := 4.5
	zero := 0.0
	submission := pendingSubmission(1, []models.Answer{{QuestionNumber: 1, SelectedOptions: []int{0}}})
	submission.Status = models.SubmissionStatusSubmitted
	submission.AIScore = &aiScore

	assignments := &fakeAssignmentRepo{assignments: []models.Assignment{gradedAssignment()}}
	submissions := &fakeSubmissionRepo{submissions: []models.Submission{submission}, nextID: 1}

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewGradingService(submissions, assignments, nil, time.Second, validate, testLogger())

	result, err := svc.Finalize(context.Background(), 1, dto.FinalizeRequest{FinalScore: &zero, FinalGrade: "F"})
	require.NoError(t, err)
	require.NotNil(t, result.FinalScore)
	require.Zero(t, *result.FinalScore)
}

func TestFinalizeRequiresGrade(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewGradingService(&fakeSubmissionRepo{}, &fakeAssignmentRepo{}, nil, time.Second, validate, testLogger())

	_, err := svc.Finalize(context.Background(), 1, dto.FinalizeRequest{})
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
}

func TestFinalizeSubmissionNotFound(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewGradingService(&fakeSubmissionRepo{}, &fakeAssignmentRepo{}, nil, time.Second, validate, testLogger())

	_, err := svc.Finalize(context.Background(), 42, dto.FinalizeRequest{FinalGrade: "A"})
	require.ErrorIs(t, err, ErrSubmissionNotFound)
}
