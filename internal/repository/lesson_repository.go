//go:generate mockery --name LessonRepository --output ./mocks --outpkg mocks --case=underscore
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

type LessonRepository interface {
	Create(ctx context.Context, db *gorm.DB, lesson *model.Lesson) error
	// FindByID はモジュールとブロック (position 順) も読み込む
	FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error)
	ListByModule(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) ([]*model.Lesson, error)
	Update(ctx context.Context, db *gorm.DB, lesson *model.Lesson) error
	Delete(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) error
}

type gormLessonRepository struct{}

func NewGormLessonRepository() LessonRepository {
	return &gormLessonRepository{}
}

func (r *gormLessonRepository) Create(ctx context.Context, db *gorm.DB, lesson *model.Lesson) error {
	if err := db.WithContext(ctx).Omit("Module", "ContentBlocks").Create(lesson).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating lesson in DB", "error", err, "module_id", lesson.ModuleID.String())
		return fmt.Errorf("gormLessonRepository.Create: %w", err)
	}
	return nil
}

func (r *gormLessonRepository) FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)
	var lesson model.Lesson

	result := db.WithContext(ctx).
		Preload("Module").
		Preload("ContentBlocks", orderedByPosition("content_blocks")).
		Where("id = ?", lessonID).
		First(&lesson)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding lesson by ID in DB", "error", result.Error, "lesson_id", lessonID.String())
		return nil, fmt.Errorf("gormLessonRepository.FindByID: %w", result.Error)
	}
	return &lesson, nil
}

func (r *gormLessonRepository) ListByModule(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) ([]*model.Lesson, error) {
	var lessons []*model.Lesson

	err := db.WithContext(ctx).
		Preload("ContentBlocks", orderedByPosition("content_blocks")).
		Scopes(orderedByPosition("lessons")).
		Where("module_id = ?", moduleID).
		Find(&lessons).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing lessons in DB", "error", err, "module_id", moduleID.String())
		return nil, fmt.Errorf("gormLessonRepository.ListByModule: %w", err)
	}
	return lessons, nil
}

func (r *gormLessonRepository) Update(ctx context.Context, db *gorm.DB, lesson *model.Lesson) error {
	if err := db.WithContext(ctx).Omit("Module", "ContentBlocks").Save(lesson).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error updating lesson in DB", "error", err, "lesson_id", lesson.ID.String())
		return fmt.Errorf("gormLessonRepository.Update: %w", err)
	}
	return nil
}

// Delete は配下のブロックと、その進捗・提出もまとめて削除する
func (r *gormLessonRepository) Delete(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	tx := db.WithContext(ctx)

	lessonIDs := tx.Session(&gorm.Session{NewDB: true}).Table("lessons").Select("id").Where("id = ?", lessonID)
	if err := deleteBlocks(tx, blockIDsOfLessons(tx, lessonIDs)); err != nil {
		logger.Error("Error deleting lesson blocks in DB", "error", err, "lesson_id", lessonID.String())
		return fmt.Errorf("gormLessonRepository.Delete: %w", err)
	}

	result := tx.Delete(&model.Lesson{}, "id = ?", lessonID)
	if result.Error != nil {
		logger.Error("Error deleting lesson in DB", "error", result.Error, "lesson_id", lessonID.String())
		return fmt.Errorf("gormLessonRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
