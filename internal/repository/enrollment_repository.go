//go:generate mockery --name EnrollmentRepository --output ./mocks --outpkg mocks --case=underscore
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

type EnrollmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) error
	// FindByID はユーザー・コホート・割り当ても読み込む
	FindByID(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (*model.Enrollment, error)
	// FindActiveByUser はユーザーの active な受講登録のうち最も古いもの
	FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Enrollment, error)
	ListByCohort(ctx context.Context, db *gorm.DB, cohortID uuid.UUID, status *model.EnrollmentStatus) ([]*model.Enrollment, error)
	CountByCohort(ctx context.Context, db *gorm.DB, cohortID uuid.UUID, status *model.EnrollmentStatus) (int64, error)
	Update(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) error
	Delete(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) error
}

type gormEnrollmentRepository struct{}

func NewGormEnrollmentRepository() EnrollmentRepository {
	return &gormEnrollmentRepository{}
}

func (r *gormEnrollmentRepository) Create(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Omit("User", "Cohort", "ModuleAssignments").Create(enrollment)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn(
				"Duplicate key error on create enrollment",
				"error", result.Error,
				"user_id", enrollment.UserID.String(),
				"cohort_id", enrollment.CohortID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating enrollment in DB", "error", result.Error, "user_id", enrollment.UserID.String())
		return fmt.Errorf("gormEnrollmentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormEnrollmentRepository) FindByID(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (*model.Enrollment, error) {
	logger := middleware.GetLogger(ctx)
	var enrollment model.Enrollment

	result := db.WithContext(ctx).
		Preload("User").
		Preload("Cohort").
		Preload("ModuleAssignments").
		Where("id = ?", enrollmentID).
		First(&enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding enrollment by ID in DB", "error", result.Error, "enrollment_id", enrollmentID.String())
		return nil, fmt.Errorf("gormEnrollmentRepository.FindByID: %w", result.Error)
	}
	return &enrollment, nil
}

func (r *gormEnrollmentRepository) FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Enrollment, error) {
	logger := middleware.GetLogger(ctx)
	var enrollment model.Enrollment

	result := db.WithContext(ctx).
		Preload("Cohort").
		Preload("ModuleAssignments").
		Where("user_id = ? AND status = ?", userID, model.EnrollmentActive).
		Order("enrolled_at ASC").
		First(&enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Active enrollment not found", "user_id", userID.String())
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding active enrollment in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormEnrollmentRepository.FindActiveByUser: %w", result.Error)
	}
	return &enrollment, nil
}

func (r *gormEnrollmentRepository) ListByCohort(ctx context.Context, db *gorm.DB, cohortID uuid.UUID, status *model.EnrollmentStatus) ([]*model.Enrollment, error) {
	var enrollments []*model.Enrollment

	query := db.WithContext(ctx).Preload("User").Where("cohort_id = ?", cohortID).Order("enrolled_at ASC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Find(&enrollments).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing enrollments in DB", "error", err, "cohort_id", cohortID.String())
		return nil, fmt.Errorf("gormEnrollmentRepository.ListByCohort: %w", err)
	}
	return enrollments, nil
}

func (r *gormEnrollmentRepository) CountByCohort(ctx context.Context, db *gorm.DB, cohortID uuid.UUID, status *model.EnrollmentStatus) (int64, error) {
	var count int64

	query := db.WithContext(ctx).Model(&model.Enrollment{}).Where("cohort_id = ?", cohortID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gormEnrollmentRepository.CountByCohort: %w", err)
	}
	return count, nil
}

func (r *gormEnrollmentRepository) Update(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) error {
	if err := db.WithContext(ctx).Omit("User", "Cohort", "ModuleAssignments").Save(enrollment).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error updating enrollment in DB", "error", err, "enrollment_id", enrollment.ID.String())
		return fmt.Errorf("gormEnrollmentRepository.Update: %w", err)
	}
	return nil
}

func (r *gormEnrollmentRepository) Delete(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	tx := db.WithContext(ctx)

	if err := tx.Where("enrollment_id = ?", enrollmentID).Delete(&model.ModuleAssignment{}).Error; err != nil {
		logger.Error("Error deleting module assignments in DB", "error", err, "enrollment_id", enrollmentID.String())
		return fmt.Errorf("gormEnrollmentRepository.Delete: %w", err)
	}

	result := tx.Delete(&model.Enrollment{}, "id = ?", enrollmentID)
	if result.Error != nil {
		logger.Error("Error deleting enrollment in DB", "error", result.Error, "enrollment_id", enrollmentID.String())
		return fmt.Errorf("gormEnrollmentRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
