//go:generate mockery --name ContentBlockRepository --output ./mocks --outpkg mocks --case=underscore
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

type ContentBlockRepository interface {
	Create(ctx context.Context, db *gorm.DB, block *model.ContentBlock) error
	// FindByID はレッスンとそのモジュールも読み込む
	FindByID(ctx context.Context, db *gorm.DB, blockID uuid.UUID) (*model.ContentBlock, error)
	ListByLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) ([]*model.ContentBlock, error)
	Update(ctx context.Context, db *gorm.DB, block *model.ContentBlock) error
	Delete(ctx context.Context, db *gorm.DB, blockID uuid.UUID) error
}

type gormContentBlockRepository struct{}

func NewGormContentBlockRepository() ContentBlockRepository {
	return &gormContentBlockRepository{}
}

func (r *gormContentBlockRepository) Create(ctx context.Context, db *gorm.DB, block *model.ContentBlock) error {
	if err := db.WithContext(ctx).Omit("Lesson").Create(block).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating content block in DB", "error", err, "lesson_id", block.LessonID.String())
		return fmt.Errorf("gormContentBlockRepository.Create: %w", err)
	}
	return nil
}

func (r *gormContentBlockRepository) FindByID(ctx context.Context, db *gorm.DB, blockID uuid.UUID) (*model.ContentBlock, error) {
	logger := middleware.GetLogger(ctx)
	var block model.ContentBlock

	result := db.WithContext(ctx).Preload("Lesson.Module").Where("id = ?", blockID).First(&block)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Content block not found", "content_block_id", blockID.String())
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding content block by ID in DB", "error", result.Error, "content_block_id", blockID.String())
		return nil, fmt.Errorf("gormContentBlockRepository.FindByID: %w", result.Error)
	}
	return &block, nil
}

func (r *gormContentBlockRepository) ListByLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) ([]*model.ContentBlock, error) {
	var blocks []*model.ContentBlock

	err := db.WithContext(ctx).Scopes(orderedByPosition("content_blocks")).Where("lesson_id = ?", lessonID).Find(&blocks).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing content blocks in DB", "error", err, "lesson_id", lessonID.String())
		return nil, fmt.Errorf("gormContentBlockRepository.ListByLesson: %w", err)
	}
	return blocks, nil
}

func (r *gormContentBlockRepository) Update(ctx context.Context, db *gorm.DB, block *model.ContentBlock) error {
	if err := db.WithContext(ctx).Omit("Lesson").Save(block).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error updating content block in DB", "error", err, "content_block_id", block.ID.String())
		return fmt.Errorf("gormContentBlockRepository.Update: %w", err)
	}
	return nil
}

// Delete は進捗と提出もまとめて削除する
func (r *gormContentBlockRepository) Delete(ctx context.Context, db *gorm.DB, blockID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	tx := db.WithContext(ctx)

	var count int64
	if err := tx.Model(&model.ContentBlock{}).Where("id = ?", blockID).Count(&count).Error; err != nil {
		return fmt.Errorf("gormContentBlockRepository.Delete: %w", err)
	}
	if count == 0 {
		return model.ErrNotFound
	}

	blockIDs := tx.Session(&gorm.Session{NewDB: true}).Table("content_blocks").Select("id").Where("id = ?", blockID)
	if err := deleteBlocks(tx, blockIDs); err != nil {
		logger.Error("Error deleting content block in DB", "error", err, "content_block_id", blockID.String())
		return fmt.Errorf("gormContentBlockRepository.Delete: %w", err)
	}
	return nil
}
