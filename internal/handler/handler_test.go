package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/lms-quiz-api/internal/config"
	"github.com/noah-isme/lms-quiz-api/internal/handler"
	"github.com/noah-isme/lms-quiz-api/internal/models"
	"github.com/noah-isme/lms-quiz-api/internal/repository"
	"github.com/noah-isme/lms-quiz-api/internal/router"
	"github.com/noah-isme/lms-quiz-api/internal/service"
	"github.com/noah-isme/lms-quiz-api/pkg/ai"
)

type testGenerator struct {
	calls int
	text  string
	err   error
}

func (g *testGenerator) Generate(_ context.Context, _ ai.FeedbackInput) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

const testSeedToken = "seed-token"

func setupTestApp(t *testing.T, generator ai.Generator) *fiber.App {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Assignment{}, &models.Submission{}))

	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.New(io.Discard)

	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	assignmentService := service.NewAssignmentService(assignmentRepo, submissionRepo, validate, logger)
	submissionService := service.NewSubmissionService(submissionRepo, assignmentRepo, validate, logger)
	gradingService := service.NewGradingService(submissionRepo, assignmentRepo, generator, time.Second, validate, logger)
	statsService := service.NewStatsService(assignmentRepo, submissionRepo, nil, time.Minute, logger)
	seedService := service.NewSeedService(assignmentRepo, true, testSeedToken, logger)

	app := fiber.New()

	router.Register(app, config.Config{AppName: "Test"}, router.Dependencies{
		AssignmentHandler: handler.NewAssignmentHandler(assignmentService, submissionService, gradingService, validate, logger),
		SubmissionHandler: handler.NewSubmissionHandler(submissionService, gradingService, validate, logger),
		StudentHandler:    handler.NewStudentHandler(assignmentService, submissionService, validate, logger),
		SeedHandler:       handler.NewSeedHandler(seedService, logger),
		InfoHandler:       handler.ServerInfo(statsService, logger),
	})

	return app
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(data, target))
}
