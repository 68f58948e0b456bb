package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/lms-quiz-api/internal/config"
	"github.com/noah-isme/lms-quiz-api/internal/database"
	"github.com/noah-isme/lms-quiz-api/internal/handler"
	"github.com/noah-isme/lms-quiz-api/internal/middleware"
	"github.com/noah-isme/lms-quiz-api/internal/models"
	"github.com/noah-isme/lms-quiz-api/internal/repository"
	"github.com/noah-isme/lms-quiz-api/internal/router"
	"github.com/noah-isme/lms-quiz-api/internal/service"
	"github.com/noah-isme/lms-quiz-api/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Assignment{}, &models.Submission{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	generator := buildGenerator(cfg, logger)

	validate := validator.New(validator.WithRequiredStructEnabled())

	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	assignmentService := service.NewAssignmentService(assignmentRepo, submissionRepo, validate, logger)
	submissionService := service.NewSubmissionService(submissionRepo, assignmentRepo, validate, logger)
	gradingService := service.NewGradingService(submissionRepo, assignmentRepo, generator, cfg.FeedbackTimeout, validate, logger)
	statsService := service.NewStatsService(assignmentRepo, submissionRepo, redisClient, cfg.InfoCacheTTL, logger)
	seedService := service.NewSeedService(assignmentRepo, cfg.SeedEnabled, cfg.SeedToken, logger)

	assignmentHandler := handler.NewAssignmentHandler(assignmentService, submissionService, gradingService, validate, logger)
	submissionHandler := handler.NewSubmissionHandler(submissionService, gradingService, validate, logger)
	studentHandler := handler.NewStudentHandler(assignmentService, submissionService, validate, logger)
	seedHandler := handler.NewSeedHandler(seedService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AssignmentHandler: assignmentHandler,
		SubmissionHandler: submissionHandler,
		StudentHandler:    studentHandler,
		SeedHandler:       seedHandler,
		InfoHandler:       handler.ServerInfo(statsService, logger),
	})

	logger.Info().
		Str("addr", cfg.HTTPAddress()).
		Bool("feedback_enabled", cfg.FeedbackEnabled()).
		Msg("starting server")

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

// buildGenerator selects the feedback generator for the configured provider.
// A nil generator disables the generate-feedback operation without
// preventing startup.
func buildGenerator(cfg config.Config, logger zerolog.Logger) ai.Generator {
	switch cfg.AIProvider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil
		}
		generator, err := ai.NewAnthropicGenerator(ai.AnthropicConfig{APIKey: cfg.AnthropicAPIKey})
		if err != nil {
			logger.Warn().Err(err).Msg("anthropic generator unavailable, feedback disabled")
			return nil
		}
		return generator
	default:
		if cfg.OpenAIAPIKey == "" {
			return nil
		}
		generator, err := ai.NewOpenAIGenerator(ai.OpenAIConfig{
			APIKey:    cfg.OpenAIAPIKey,
			Model:     cfg.FeedbackModel,
			MaxTokens: cfg.FeedbackMaxToken,
			Logger:    logger,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("openai generator unavailable, feedback disabled")
			return nil
		}
		return generator
	}
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
