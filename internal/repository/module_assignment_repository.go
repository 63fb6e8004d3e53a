//go:generate mockery --name ModuleAssignmentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModuleAssignmentRepository interface {
	CreateBatch(ctx context.Context, db *gorm.DB, assignments []*model.ModuleAssignment) error
	FindByEnrollmentAndModule(ctx context.Context, db *gorm.DB, enrollmentID, moduleID uuid.UUID) (*model.ModuleAssignment, error)
	ListByEnrollment(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) ([]*model.ModuleAssignment, error)
	Save(ctx context.Context, db *gorm.DB, assignment *model.ModuleAssignment) error
}

type gormModuleAssignmentRepository struct{}

func NewGormModuleAssignmentRepository() ModuleAssignmentRepository {
	return &gormModuleAssignmentRepository{}
}

func (r *gormModuleAssignmentRepository) CreateBatch(ctx context.Context, db *gorm.DB, assignments []*model.ModuleAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(&assignments)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create module assignments", "error", result.Error)
			return model.ErrConflict
		}
		logger.Error("Error creating module assignments in DB", "error", result.Error, "count", len(assignments))
		return fmt.Errorf("gormModuleAssignmentRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormModuleAssignmentRepository) FindByEnrollmentAndModule(ctx context.Context, db *gorm.DB, enrollmentID, moduleID uuid.UUID) (*model.ModuleAssignment, error) {
	var assignment model.ModuleAssignment

	result := db.WithContext(ctx).Where("enrollment_id = ? AND module_id = ?", enrollmentID, moduleID).First(&assignment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error(
			"Error finding module assignment in DB",
			"error", result.Error,
			"enrollment_id", enrollmentID.String(),
			"module_id", moduleID.String(),
		)
		return nil, fmt.Errorf("gormModuleAssignmentRepository.FindByEnrollmentAndModule: %w", result.Error)
	}
	return &assignment, nil
}

func (r *gormModuleAssignmentRepository) ListByEnrollment(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) ([]*model.ModuleAssignment, error) {
	var assignments []*model.ModuleAssignment

	if err := db.WithContext(ctx).Where("enrollment_id = ?", enrollmentID).Find(&assignments).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing module assignments in DB", "error", err, "enrollment_id", enrollmentID.String())
		return nil, fmt.Errorf("gormModuleAssignmentRepository.ListByEnrollment: %w", err)
	}
	return assignments, nil
}

// Save は無ければ作成、あれば更新する
func (r *gormModuleAssignmentRepository) Save(ctx context.Context, db *gorm.DB, assignment *model.ModuleAssignment) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Save(assignment)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error saving module assignment in DB", "error", result.Error, "assignment_id", assignment.ID.String())
		return fmt.Errorf("gormModuleAssignmentRepository.Save: %w", result.Error)
	}
	return nil
}
