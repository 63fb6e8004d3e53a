//go:generate mockery --name ModuleRepository --output ./mocks --outpkg mocks --case=underscore
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

type ModuleRepository interface {
	Create(ctx context.Context, db *gorm.DB, module *model.CurriculumModule) error
	// FindByID はレッスン (position 順) も読み込む
	FindByID(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) (*model.CurriculumModule, error)
	ListByCurriculum(ctx context.Context, db *gorm.DB, curriculumID uuid.UUID) ([]*model.CurriculumModule, error)
	Update(ctx context.Context, db *gorm.DB, module *model.CurriculumModule) error
	Delete(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) error
}

type gormModuleRepository struct{}

func NewGormModuleRepository() ModuleRepository {
	return &gormModuleRepository{}
}

func (r *gormModuleRepository) Create(ctx context.Context, db *gorm.DB, module *model.CurriculumModule) error {
	if err := db.WithContext(ctx).Omit("Lessons").Create(module).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating module in DB", "error", err, "curriculum_id", module.CurriculumID.String())
		return fmt.Errorf("gormModuleRepository.Create: %w", err)
	}
	return nil
}

func (r *gormModuleRepository) FindByID(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) (*model.CurriculumModule, error) {
	logger := middleware.GetLogger(ctx)
	var module model.CurriculumModule

	result := db.WithContext(ctx).
		Preload("Lessons", orderedByPosition("lessons")).
		Preload("Lessons.ContentBlocks", orderedByPosition("content_blocks")).
		Where("id = ?", moduleID).
		First(&module)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding module by ID in DB", "error", result.Error, "module_id", moduleID.String())
		return nil, fmt.Errorf("gormModuleRepository.FindByID: %w", result.Error)
	}
	return &module, nil
}

func (r *gormModuleRepository) ListByCurriculum(ctx context.Context, db *gorm.DB, curriculumID uuid.UUID) ([]*model.CurriculumModule, error) {
	var modules []*model.CurriculumModule

	err := db.WithContext(ctx).
		Preload("Lessons", orderedByPosition("lessons")).
		Scopes(orderedByPosition("modules")).
		Where("curriculum_id = ?", curriculumID).
		Find(&modules).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing modules in DB", "error", err, "curriculum_id", curriculumID.String())
		return nil, fmt.Errorf("gormModuleRepository.ListByCurriculum: %w", err)
	}
	return modules, nil
}

func (r *gormModuleRepository) Update(ctx context.Context, db *gorm.DB, module *model.CurriculumModule) error {
	if err := db.WithContext(ctx).Omit("Lessons").Save(module).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error updating module in DB", "error", err, "module_id", module.ID.String())
		return fmt.Errorf("gormModuleRepository.Update: %w", err)
	}
	return nil
}

// Delete は配下のレッスン・ブロックと割り当てもまとめて削除する
func (r *gormModuleRepository) Delete(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	tx := db.WithContext(ctx)

	var count int64
	if err := tx.Model(&model.CurriculumModule{}).Where("id = ?", moduleID).Count(&count).Error; err != nil {
		return fmt.Errorf("gormModuleRepository.Delete: %w", err)
	}
	if count == 0 {
		return model.ErrNotFound
	}

	moduleIDs := tx.Session(&gorm.Session{NewDB: true}).Table("modules").Select("id").Where("id = ?", moduleID)
	if err := deleteModules(tx, moduleIDs); err != nil {
		logger.Error("Error deleting module in DB", "error", err, "module_id", moduleID.String())
		return fmt.Errorf("gormModuleRepository.Delete: %w", err)
	}
	return nil
}
