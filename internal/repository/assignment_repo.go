package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/lms-quiz-api/internal/models"
)

// AssignmentRepository defines persistence operations for assignments.
type AssignmentRepository interface {
	List(ctx context.Context) ([]models.Assignment, error)
	ListByIDs(ctx context.Context, ids []uint) ([]models.Assignment, error)
	GetByID(ctx context.Context, id uint) (models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) error
	CreateBatch(ctx context.Context, assignments []models.Assignment) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository instantiates a GORM-backed repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) List(ctx context.Context) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *assignmentRepository) ListByIDs(ctx context.Context, ids []uint) ([]models.Assignment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var assignments []models.Assignment
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id uint) (models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.WithContext(ctx).First(&assignment, id).Error; err != nil {
		return models.Assignment{}, err
	}

	return assignment, nil
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) CreateBatch(ctx context.Context, assignments []models.Assignment) (int64, error) {
	result := r.db.WithContext(ctx).Create(&assignments)
	return result.RowsAffected, result.Error
}

func (r *assignmentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Assignment{}).Count(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}
