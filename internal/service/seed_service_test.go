package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-quiz-api/internal/models"
)

func TestSeedAssignmentsDisabled(t *testing.T) {
	svc := NewSeedService(&fakeAssignmentRepo{}, false, "token", testLogger())

	_, err := svc.SeedAssignments(context.Background(), "token")
	require.ErrorIs(t, err, ErrSeedDisabled)
}

func TestSeedAssignmentsRejectsBadToken(t *testing.T) {
	svc := NewSeedService(&fakeAssignmentRepo{}, true, "token", testLogger())

	_, err := svc.SeedAssignments(context.Background(), "wrong")
	require.ErrorIs(t, err, ErrSeedUnauthorized)
}

func TestSeedAssignmentsRejectsWhenNoTokenConfigured(t *testing.T) {
	svc := NewSeedService(&fakeAssignmentRepo{}, true, "", testLogger())

	_, err := svc.SeedAssignments(context.Background(), "")
	require.ErrorIs(t, err, ErrSeedUnauthorized)
}

func TestSeedAssignmentsLoadsSampleSet(t *testing.T) {
	repo := &fakeAssignmentRepo{}
	svc := NewSeedService(repo, true, "token", testLogger())

	affected, err := svc.SeedAssignments(context.Background(), "token")
	require.NoError(t, err)
	require.Equal(t, int64(4), affected)
	require.Len(t, repo.assignments, 4)

	for _, assignment := range repo.assignments {
		require.NotEmpty(t, assignment.Title)
		questions := assignment.QuestionList()
		require.Len(t, questions, 5)
		for _, question := range questions {
			require.NotEmpty(t, question.Rubric)
			require.NotEmpty(t, question.CorrectOptions)
			require.Greater(t, question.Marks, 0.0)
		}
	}
}

func TestSeedAssignmentsSkipsNonEmptyStore(t *testing.T) {
	repo := &fakeAssignmentRepo{assignments: []models.Assignment{{ID: 1, Title: "Existing"}}, nextID: 1}
	svc := NewSeedService(repo, true, "token", testLogger())

	affected, err := svc.SeedAssignments(context.Background(), "token")
	require.NoError(t, err)
	require.Zero(t, affected)
	require.Zero(t, repo.batchCalls)
	require.Len(t, repo.assignments, 1)
}
