//go:generate mockery --name CohortRepository --output ./mocks --outpkg mocks --case=underscore
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

type CohortRepository interface {
	Create(ctx context.Context, db *gorm.DB, cohort *model.Cohort) error
	// FindByID はカリキュラムと受講者 (User付き) も読み込む
	FindByID(ctx context.Context, db *gorm.DB, cohortID uuid.UUID) (*model.Cohort, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.Cohort, error)
	// FindFirstActive は status=active のうち開始日が最も早いもの
	FindFirstActive(ctx context.Context, db *gorm.DB) (*model.Cohort, error)
	// FindFirstActiveBootcamp は新規受講者の自動登録先
	FindFirstActiveBootcamp(ctx context.Context, db *gorm.DB) (*model.Cohort, error)
	Update(ctx context.Context, db *gorm.DB, cohort *model.Cohort) error
	Delete(ctx context.Context, db *gorm.DB, cohortID uuid.UUID) error
}

type gormCohortRepository struct{}

func NewGormCohortRepository() CohortRepository {
	return &gormCohortRepository{}
}

func (r *gormCohortRepository) Create(ctx context.Context, db *gorm.DB, cohort *model.Cohort) error {
	if err := db.WithContext(ctx).Omit("Curriculum", "Enrollments").Create(cohort).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating cohort in DB", "error", err, "name", cohort.Name)
		return fmt.Errorf("gormCohortRepository.Create: %w", err)
	}
	return nil
}

func (r *gormCohortRepository) FindByID(ctx context.Context, db *gorm.DB, cohortID uuid.UUID) (*model.Cohort, error) {
	logger := middleware.GetLogger(ctx)
	var cohort model.Cohort

	result := db.WithContext(ctx).
		Preload("Curriculum").
		Preload("Enrollments", func(db *gorm.DB) *gorm.DB { return db.Order("enrollments.enrolled_at ASC") }).
		Preload("Enrollments.User").
		Where("id = ?", cohortID).
		First(&cohort)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding cohort by ID in DB", "error", result.Error, "cohort_id", cohortID.String())
		return nil, fmt.Errorf("gormCohortRepository.FindByID: %w", result.Error)
	}
	return &cohort, nil
}

func (r *gormCohortRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Cohort, error) {
	var cohorts []*model.Cohort

	err := db.WithContext(ctx).
		Preload("Curriculum").
		Preload("Enrollments").
		Order("start_date DESC").
		Order("created_at DESC").
		Find(&cohorts).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing cohorts in DB", "error", err)
		return nil, fmt.Errorf("gormCohortRepository.List: %w", err)
	}
	return cohorts, nil
}

func (r *gormCohortRepository) FindFirstActive(ctx context.Context, db *gorm.DB) (*model.Cohort, error) {
	return r.findFirst(ctx, db, "FindFirstActive", db.WithContext(ctx).Where("status = ?", model.CohortActive))
}

func (r *gormCohortRepository) FindFirstActiveBootcamp(ctx context.Context, db *gorm.DB) (*model.Cohort, error) {
	query := db.WithContext(ctx).Where("status = ? AND cohort_type = ?", model.CohortActive, model.CohortBootcamp)
	return r.findFirst(ctx, db, "FindFirstActiveBootcamp", query)
}

func (r *gormCohortRepository) findFirst(ctx context.Context, db *gorm.DB, op string, query *gorm.DB) (*model.Cohort, error) {
	var cohort model.Cohort

	result := query.Preload("Curriculum").Order("start_date ASC").Order("created_at ASC").First(&cohort)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding cohort in DB", "error", result.Error, "op", op)
		return nil, fmt.Errorf("gormCohortRepository.%s: %w", op, result.Error)
	}
	return &cohort, nil
}

func (r *gormCohortRepository) Update(ctx context.Context, db *gorm.DB, cohort *model.Cohort) error {
	if err := db.WithContext(ctx).Omit("Curriculum", "Enrollments").Save(cohort).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error updating cohort in DB", "error", err, "cohort_id", cohort.ID.String())
		return fmt.Errorf("gormCohortRepository.Update: %w", err)
	}
	return nil
}

// Delete は受講登録とその割り当てもまとめて削除する
func (r *gormCohortRepository) Delete(ctx context.Context, db *gorm.DB, cohortID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	tx := db.WithContext(ctx)

	enrollmentIDs := tx.Session(&gorm.Session{NewDB: true}).Table("enrollments").Select("id").Where("cohort_id = ?", cohortID)
	if err := tx.Where("enrollment_id IN (?)", enrollmentIDs).Delete(&model.ModuleAssignment{}).Error; err != nil {
		logger.Error("Error deleting module assignments of cohort in DB", "error", err, "cohort_id", cohortID.String())
		return fmt.Errorf("gormCohortRepository.Delete: %w", err)
	}
	if err := tx.Where("cohort_id = ?", cohortID).Delete(&model.Enrollment{}).Error; err != nil {
		logger.Error("Error deleting enrollments of cohort in DB", "error", err, "cohort_id", cohortID.String())
		return fmt.Errorf("gormCohortRepository.Delete: %w", err)
	}

	result := tx.Delete(&model.Cohort{}, "id = ?", cohortID)
	if result.Error != nil {
		logger.Error("Error deleting cohort in DB", "error", result.Error, "cohort_id", cohortID.String())
		return fmt.Errorf("gormCohortRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
