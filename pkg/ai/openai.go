package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	feedbackDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lms",
		Subsystem: "ai",
		Name:      "feedback_duration_seconds",
		Help:      "Duration of AI feedback generation requests",
	}, []string{"model"})

	feedbackFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lms",
		Subsystem: "ai",
		Name:      "feedback_failures_total",
		Help:      "Number of AI feedback generation failures",
	}, []string{"model"})
)

const systemPrompt = "You are a supportive, encouraging teacher. Always use positive, growth-oriented language. " +
	"Never discourage students. Focus on what they can learn and improve."

// OpenAIConfig defines configuration options for the OpenAI feedback generator.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
	Logger      zerolog.Logger
}

// OpenAIGenerator implements Generator against the OpenAI chat completion API.
type OpenAIGenerator struct {
	client *openai.Client
	cfg    OpenAIConfig
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewOpenAIGenerator builds a new generator using the provided configuration.
func NewOpenAIGenerator(cfg OpenAIConfig) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}

	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 150
	}

	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}

	tracer := otel.Tracer("github.com/noah-isme/lms-quiz-api/pkg/ai/openai")
	logger := cfg.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	config := openai.DefaultConfig(cfg.APIKey)
	client := openai.NewClientWithConfig(config)

	return &OpenAIGenerator{
		client: client,
		cfg:    cfg,
		tracer: tracer,
		logger: logger,
	}, nil
}

// Generate requests a short feedback message for the given answer.
func (g *OpenAIGenerator) Generate(parent context.Context, input FeedbackInput) (string, error) {
	ctx, span := g.tracer.Start(parent, "openai.feedback", trace.WithAttributes(
		attribute.String("model", g.cfg.Model),
		attribute.Bool("answer.correct", input.IsCorrect),
	))
	defer span.End()

	start := time.Now()
	request := openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildFeedbackPrompt(input),
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, request)
	feedbackDuration.WithLabelValues(g.cfg.Model).Observe(time.Since(start).Seconds())
	if err != nil {
		feedbackFailures.WithLabelValues(g.cfg.Model).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("openai feedback: %w", err)
	}

	if len(resp.Choices) == 0 {
		err := fmt.Errorf("no choices returned from openai")
		feedbackFailures.WithLabelValues(g.cfg.Model).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildFeedbackPrompt(input FeedbackInput) string {
	builder := strings.Builder{}
	builder.WriteString("You are a supportive and encouraging teacher providing feedback to a student.\n\n")
	builder.WriteString("Question: ")
	builder.WriteString(input.QuestionText)
	builder.WriteString("\nOptions: ")
	builder.WriteString(strings.Join(input.Options, ", "))
	builder.WriteString("\nCorrect Answer: ")
	builder.WriteString(strings.Join(input.CorrectAnswers, ", "))
	builder.WriteString("\nStudent's Answer: ")
	builder.WriteString(strings.Join(input.StudentAnswers, ", "))
	builder.WriteString("\nRubric/Context: ")
	builder.WriteString(input.Rubric)
	builder.WriteString("\n\n")

	if input.IsCorrect {
		builder.WriteString("The student got this question CORRECT. Provide brief, positive reinforcement (1-2 sentences). Be warm and encouraging.")
		return builder.String()
	}

	builder.WriteString("The student got this question INCORRECT. Provide encouraging, growth-oriented feedback (2-3 sentences):\n")
	builder.WriteString("- Acknowledge their effort\n")
	builder.WriteString("- Gently point out what they might have missed\n")
	builder.WriteString("- Suggest how to approach similar questions next time\n")
	builder.WriteString("- Use positive language (avoid words like \"wrong\", \"failed\", \"mistake\")\n")
	builder.WriteString("- Focus on learning and improvement\n\n")
	builder.WriteString("Example tone: \"You were on the right track! Consider focusing on [specific aspect]. Next time, try [helpful tip].\"")
	return builder.String()
}
