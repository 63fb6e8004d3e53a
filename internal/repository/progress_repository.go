//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
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

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.Progress) error // トランザクション対応
	FindByUserAndBlock(ctx context.Context, db *gorm.DB, userID, blockID uuid.UUID) (*model.Progress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.Progress) error // トランザクション対応
	// ListByUser はブロック種別を含めて返す。filter で module / lesson に絞り込める
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter model.ProgressFilter) ([]*model.Progress, error)
	// CountCompletedByUsers は指定ブロックのうち completed の件数をユーザーごとに返す
	CountCompletedByUsers(ctx context.Context, db *gorm.DB, userIDs []uuid.UUID, blockIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

type gormProgressRepository struct {
	// DB接続はService層から渡される想定
}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.Progress) error {
	logger := middleware.GetLogger(ctx)

	// UUIDはService層で設定済み想定
	result := tx.WithContext(ctx).Omit("ContentBlock").Create(progress)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn(
				"Duplicate key error on create progress",
				"error", result.Error,
				"user_id", progress.UserID.String(),
				"content_block_id", progress.ContentBlockID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating progress in DB", "error", result.Error, "user_id", progress.UserID.String())
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindByUserAndBlock(ctx context.Context, db *gorm.DB, userID, blockID uuid.UUID) (*model.Progress, error) {
	var progress model.Progress

	result := db.WithContext(ctx).Where("user_id = ? AND content_block_id = ?", userID, blockID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error(
			"Error finding progress in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"content_block_id", blockID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndBlock: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.Progress) error {
	// Save は BeforeSave フックを通るので completed_at もここで同期される
	result := tx.WithContext(ctx).Omit("ContentBlock").Save(progress)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating progress in DB", "error", result.Error, "progress_id", progress.ID.String())
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter model.ProgressFilter) ([]*model.Progress, error) {
	var progresses []*model.Progress

	query := db.WithContext(ctx).
		Select("progresses.*").
		Preload("ContentBlock").
		Where("progresses.user_id = ?", userID)

	switch {
	case filter.LessonID != nil:
		query = query.
			Joins("JOIN content_blocks ON content_blocks.id = progresses.content_block_id").
			Where("content_blocks.lesson_id = ?", *filter.LessonID)
	case filter.ModuleID != nil:
		query = query.
			Joins("JOIN content_blocks ON content_blocks.id = progresses.content_block_id").
			Joins("JOIN lessons ON lessons.id = content_blocks.lesson_id").
			Where("lessons.module_id = ?", *filter.ModuleID)
	}

	if err := query.Order("progresses.updated_at DESC").Find(&progresses).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing progress in DB", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormProgressRepository.ListByUser: %w", err)
	}
	return progresses, nil
}

type completedCountRow struct {
	UserID uuid.UUID
	Count  int
}

func (r *gormProgressRepository) CountCompletedByUsers(ctx context.Context, db *gorm.DB, userIDs []uuid.UUID, blockIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(userIDs))
	if len(userIDs) == 0 || len(blockIDs) == 0 {
		return counts, nil
	}

	var rows []completedCountRow
	err := db.WithContext(ctx).
		Model(&model.Progress{}).
		Select("user_id, COUNT(*) AS count").
		Where("user_id IN ? AND content_block_id IN ? AND status = ?", userIDs, blockIDs, model.ProgressCompleted).
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error counting completed progress in DB", "error", err)
		return nil, fmt.Errorf("gormProgressRepository.CountCompletedByUsers: %w", err)
	}
	for _, row := range rows {
		counts[row.UserID] = row.Count
	}
	return counts, nil
}
