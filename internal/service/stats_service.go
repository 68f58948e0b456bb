package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/lms-quiz-api/internal/dto"
	"github.com/noah-isme/lms-quiz-api/internal/repository"
)

const (
	serverName     = "LMS Demo API"
	serverVersion  = "1.0.0"
	storageBackend = "PostgreSQL"

	infoCacheKey = "info:counts"
)

// StatsService aggregates storage counts for the info endpoint.
type StatsService interface {
	Info(ctx context.Context) (dto.InfoResponse, error)
}

type statsService struct {
	assignments repository.AssignmentRepository
	submissions repository.SubmissionRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	logger      zerolog.Logger
}

// NewStatsService builds the stats aggregator. The cache client may be nil,
// in which case counts are read from storage on every request.
func NewStatsService(assignments repository.AssignmentRepository, submissions repository.SubmissionRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) StatsService {
	return &statsService{
		assignments: assignments,
		submissions: submissions,
		cache:       cache,
		cacheTTL:    ttl,
		logger:      logger.With().Str("component", "stats_service").Logger(),
	}
}

func (s *statsService) Info(ctx context.Context) (dto.InfoResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, infoCacheKey).Result(); err == nil {
			var response dto.InfoResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Msg("info cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read info cache")
		}
	}

	assignmentCount, err := s.assignments.Count(ctx)
	if err != nil {
		return dto.InfoResponse{}, err
	}

	submissionCount, err := s.submissions.Count(ctx)
	if err != nil {
		return dto.InfoResponse{}, err
	}

	response := dto.InfoResponse{
		TotalAssignments: assignmentCount,
		TotalSubmissions: submissionCount,
		Server:           serverName,
		Version:          serverVersion,
		Storage:          storageBackend,
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, infoCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store info cache")
			}
		}
	}

	return response, nil
}
