//go:generate mockery --name CurriculumRepository --output ./mocks --outpkg mocks --case=underscore
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

type CurriculumRepository interface {
	Create(ctx context.Context, db *gorm.DB, curriculum *model.Curriculum) error
	FindByID(ctx context.Context, db *gorm.DB, curriculumID uuid.UUID) (*model.Curriculum, error)
	// FindTree はモジュール → レッスン → ブロックをすべて position 順で読み込む
	FindTree(ctx context.Context, db *gorm.DB, curriculumID uuid.UUID) (*model.Curriculum, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.Curriculum, error)
	Update(ctx context.Context, db *gorm.DB, curriculum *model.Curriculum) error
	CountCohorts(ctx context.Context, db *gorm.DB, curriculumID uuid.UUID) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, curriculumID uuid.UUID) error
}

type gormCurriculumRepository struct{}

func NewGormCurriculumRepository() CurriculumRepository {
	return &gormCurriculumRepository{}
}

func (r *gormCurriculumRepository) Create(ctx context.Context, db *gorm.DB, curriculum *model.Curriculum) error {
	logger := middleware.GetLogger(ctx)

	if err := db.WithContext(ctx).Omit("Modules").Create(curriculum).Error; err != nil {
		logger.Error("Error creating curriculum in DB", "error", err, "name", curriculum.Name)
		return fmt.Errorf("gormCurriculumRepository.Create: %w", err)
	}
	return nil
}

func (r *gormCurriculumRepository) FindByID(ctx context.Context, db *gorm.DB, curriculumID uuid.UUID) (*model.Curriculum, error) {
	logger := middleware.GetLogger(ctx)
	var curriculum model.Curriculum

	result := db.WithContext(ctx).Where("id = ?", curriculumID).First(&curriculum)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding curriculum by ID in DB", "error", result.Error, "curriculum_id", curriculumID.String())
		return nil, fmt.Errorf("gormCurriculumRepository.FindByID: %w", result.Error)
	}
	return &curriculum, nil
}

func (r *gormCurriculumRepository) FindTree(ctx context.Context, db *gorm.DB, curriculumID uuid.UUID) (*model.Curriculum, error) {
	logger := middleware.GetLogger(ctx)
	var curriculum model.Curriculum

	result := db.WithContext(ctx).
		Preload("Modules", orderedByPosition("modules")).
		Preload("Modules.Lessons", orderedByPosition("lessons")).
		Preload("Modules.Lessons.ContentBlocks", orderedByPosition("content_blocks")).
		Where("id = ?", curriculumID).
		First(&curriculum)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error loading curriculum tree from DB", "error", result.Error, "curriculum_id", curriculumID.String())
		return nil, fmt.Errorf("gormCurriculumRepository.FindTree: %w", result.Error)
	}
	return &curriculum, nil
}

func (r *gormCurriculumRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Curriculum, error) {
	var curricula []*model.Curriculum

	err := db.WithContext(ctx).
		Preload("Modules", orderedByPosition("modules")).
		Order("name ASC").
		Find(&curricula).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing curricula in DB", "error", err)
		return nil, fmt.Errorf("gormCurriculumRepository.List: %w", err)
	}
	return curricula, nil
}

func (r *gormCurriculumRepository) Update(ctx context.Context, db *gorm.DB, curriculum *model.Curriculum) error {
	if err := db.WithContext(ctx).Omit("Modules").Save(curriculum).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error updating curriculum in DB", "error", err, "curriculum_id", curriculum.ID.String())
		return fmt.Errorf("gormCurriculumRepository.Update: %w", err)
	}
	return nil
}

func (r *gormCurriculumRepository) CountCohorts(ctx context.Context, db *gorm.DB, curriculumID uuid.UUID) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Cohort{}).Where("curriculum_id = ?", curriculumID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gormCurriculumRepository.CountCohorts: %w", err)
	}
	return count, nil
}

// Delete は配下のモジュール・レッスン・ブロックと、その進捗・提出・割り当てをまとめて削除する
// 呼び出し側でトランザクションを張ること
func (r *gormCurriculumRepository) Delete(ctx context.Context, db *gorm.DB, curriculumID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	tx := db.WithContext(ctx)

	moduleIDs := moduleIDsOfCurriculum(tx, curriculumID)
	if err := deleteModules(tx, moduleIDs); err != nil {
		logger.Error("Error deleting curriculum children in DB", "error", err, "curriculum_id", curriculumID.String())
		return fmt.Errorf("gormCurriculumRepository.Delete: %w", err)
	}

	result := tx.Delete(&model.Curriculum{}, "id = ?", curriculumID)
	if result.Error != nil {
		logger.Error("Error deleting curriculum in DB", "error", result.Error, "curriculum_id", curriculumID.String())
		return fmt.Errorf("gormCurriculumRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// deleteModules はモジュールとその配下をすべて削除する
func deleteModules(tx *gorm.DB, moduleIDs *gorm.DB) error {
	lessonIDs := lessonIDsOfModules(tx, moduleIDs)
	if err := deleteBlocks(tx, blockIDsOfLessons(tx, lessonIDs)); err != nil {
		return err
	}
	if err := tx.Where("id IN (?)", lessonIDs).Delete(&model.Lesson{}).Error; err != nil {
		return err
	}
	if err := tx.Where("module_id IN (?)", moduleIDs).Delete(&model.ModuleAssignment{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN (?)", moduleIDs).Delete(&model.CurriculumModule{}).Error
}
