package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/rs/zerolog"

	"github.com/noah-isme/lms-quiz-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the seeding tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
)

// SeedService loads the demo assignment set into an empty database.
type SeedService interface {
	SeedAssignments(ctx context.Context, token string) (int64, error)
}

type seedService struct {
	assignments repository.AssignmentRepository
	enabled     bool
	token       string
	logger      zerolog.Logger
}

// NewSeedService constructs a seeding service.
func NewSeedService(assignments repository.AssignmentRepository, enabled bool, token string, logger zerolog.Logger) SeedService {
	return &seedService{
		assignments: assignments,
		enabled:     enabled,
		token:       token,
		logger:      logger.With().Str("component", "seed_service").Logger(),
	}
}

func (s *seedService) SeedAssignments(ctx context.Context, token string) (int64, error) {
	if !s.enabled {
		return 0, ErrSeedDisabled
	}
	if !s.validateToken(token) {
		return 0, ErrSeedUnauthorized
	}

	existing, err := s.assignments.Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		s.logger.Info().Int64("existing", existing).Msg("assignments already present, skipping seed")
		return 0, nil
	}

	affected, err := s.assignments.CreateBatch(ctx, sampleAssignments())
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("affected", affected).Msg("sample assignments seeded")
	return affected, nil
}

func (s *seedService) validateToken(token string) bool {
	if s.token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) == 1
}
