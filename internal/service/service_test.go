package service

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/lms-quiz-api/internal/models"
	"github.com/noah-isme/lms-quiz-api/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

type fakeAssignmentRepo struct {
	assignments []models.Assignment
	nextID      uint
	listErr     error
	batchCalls  int
}

func (f *fakeAssignmentRepo) List(_ context.Context) ([]models.Assignment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Assignment(nil), f.assignments...), nil
}

func (f *fakeAssignmentRepo) ListByIDs(_ context.Context, ids []uint) ([]models.Assignment, error) {
	wanted := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	result := make([]models.Assignment, 0, len(ids))
	for _, assignment := range f.assignments {
		if _, ok := wanted[assignment.ID]; ok {
			result = append(result, assignment)
		}
	}
	return result, nil
}

func (f *fakeAssignmentRepo) GetByID(_ context.Context, id uint) (models.Assignment, error) {
	for _, assignment := range f.assignments {
		if assignment.ID == id {
			return assignment, nil
		}
	}
	return models.Assignment{}, gorm.ErrRecordNotFound
}

func (f *fakeAssignmentRepo) Create(_ context.Context, assignment *models.Assignment) error {
	f.nextID++
	assignment.ID = f.nextID
	f.assignments = append(f.assignments, *assignment)
	return nil
}

func (f *fakeAssignmentRepo) CreateBatch(_ context.Context, assignments []models.Assignment) (int64, error) {
	f.batchCalls++
	for i := range assignments {
		f.nextID++
		assignments[i].ID = f.nextID
	}
	f.assignments = append(f.assignments, assignments...)
	return int64(len(assignments)), nil
}

func (f *fakeAssignmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.assignments)), nil
}

type fakeSubmissionRepo struct {
	submissions   []models.Submission
	nextID        uint
	updateCalls   int
	failUpdateIDs map[uint]bool
	listErr       error
}

func (f *fakeSubmissionRepo) List(_ context.Context, filter repository.SubmissionFilter) ([]models.Submission, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	result := make([]models.Submission, 0, len(f.submissions))
	for _, submission := range f.submissions {
		if filter.AssignmentID != nil && submission.AssignmentID != *filter.AssignmentID {
			continue
		}
		if filter.Status != nil && submission.Status != *filter.Status {
			continue
		}
		if filter.StudentName != nil && !strings.EqualFold(submission.StudentName, strings.TrimSpace(*filter.StudentName)) {
			continue
		}
		result = append(result, submission)
	}
	return result, nil
}

func (f *fakeSubmissionRepo) GetByID(_ context.Context, id uint) (models.Submission, error) {
	for _, submission := range f.submissions {
		if submission.ID == id {
			return submission, nil
		}
	}
	return models.Submission{}, gorm.ErrRecordNotFound
}

func (f *fakeSubmissionRepo) Create(_ context.Context, submission *models.Submission) error {
	f.nextID++
	submission.ID = f.nextID
	f.submissions = append(f.submissions, *submission)
	return nil
}

func (f *fakeSubmissionRepo) Update(_ context.Context, submission *models.Submission) error {
	if f.failUpdateIDs[submission.ID] {
		return gorm.ErrInvalidDB
	}

	f.updateCalls++
	for i := range f.submissions {
		if f.submissions[i].ID == submission.ID {
			f.submissions[i] = *submission
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeSubmissionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.submissions)), nil
}
