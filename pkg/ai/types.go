package ai

import "context"

// FeedbackInput contains the question/answer pair a feedback message is
// generated for. Answer texts are already resolved from option indices.
type FeedbackInput struct {
	QuestionText   string
	Options        []string
	CorrectAnswers []string
	StudentAnswers []string
	Rubric         string
	IsCorrect      bool
}

// Generator describes an AI model capable of producing short encouraging
// feedback for a graded answer.
type Generator interface {
	Generate(ctx context.Context, input FeedbackInput) (string, error)
}
