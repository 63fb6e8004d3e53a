//go:generate mockery --name SubmissionRepository --output ./mocks --outpkg mocks --case=underscore
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

type SubmissionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, submission *model.Submission) error
	// FindByID は提出者・採点者・ブロック (レッスン付き) も読み込む
	FindByID(ctx context.Context, db *gorm.DB, submissionID uuid.UUID) (*model.Submission, error)
	// FindLatestForUserAndBlock は同じ (user, block) への直近の提出
	FindLatestForUserAndBlock(ctx context.Context, db *gorm.DB, userID, blockID uuid.UUID) (*model.Submission, error)
	// ListByUser は新しい順。ブロックとレッスンも読み込む
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Submission, error)
	List(ctx context.Context, db *gorm.DB, filter model.SubmissionFilter) ([]*model.Submission, error)
	// CountUngradedByUsers は指定ユーザーの未採点の提出件数
	CountUngradedByUsers(ctx context.Context, db *gorm.DB, userIDs []uuid.UUID) (int64, error)
	Update(ctx context.Context, tx *gorm.DB, submission *model.Submission) error
}

type gormSubmissionRepository struct{}

func NewGormSubmissionRepository() SubmissionRepository {
	return &gormSubmissionRepository{}
}

func (r *gormSubmissionRepository) Create(ctx context.Context, tx *gorm.DB, submission *model.Submission) error {
	result := tx.WithContext(ctx).Omit("User", "Grader", "ContentBlock").Create(submission)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error(
			"Error creating submission in DB",
			"error", result.Error,
			"user_id", submission.UserID.String(),
			"content_block_id", submission.ContentBlockID.String(),
		)
		return fmt.Errorf("gormSubmissionRepository.Create: %w", result.Error)
	}
	return nil
}

func withSubmissionAssociations(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Grader").Preload("ContentBlock.Lesson")
}

func (r *gormSubmissionRepository) FindByID(ctx context.Context, db *gorm.DB, submissionID uuid.UUID) (*model.Submission, error) {
	logger := middleware.GetLogger(ctx)
	var submission model.Submission

	result := db.WithContext(ctx).Scopes(withSubmissionAssociations).Where("id = ?", submissionID).First(&submission)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Submission not found", "submission_id", submissionID.String())
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding submission by ID in DB", "error", result.Error, "submission_id", submissionID.String())
		return nil, fmt.Errorf("gormSubmissionRepository.FindByID: %w", result.Error)
	}
	return &submission, nil
}

func (r *gormSubmissionRepository) FindLatestForUserAndBlock(ctx context.Context, db *gorm.DB, userID, blockID uuid.UUID) (*model.Submission, error) {
	var submission model.Submission

	result := db.WithContext(ctx).
		Where("user_id = ? AND content_block_id = ?", userID, blockID).
		Order("num_submissions DESC").
		Order("created_at DESC").
		First(&submission)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding latest submission in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormSubmissionRepository.FindLatestForUserAndBlock: %w", result.Error)
	}
	return &submission, nil
}

func (r *gormSubmissionRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Submission, error) {
	var submissions []*model.Submission

	err := db.WithContext(ctx).
		Scopes(withSubmissionAssociations).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("num_submissions DESC").
		Find(&submissions).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing submissions of user in DB", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormSubmissionRepository.ListByUser: %w", err)
	}
	return submissions, nil
}

func (r *gormSubmissionRepository) List(ctx context.Context, db *gorm.DB, filter model.SubmissionFilter) ([]*model.Submission, error) {
	var submissions []*model.Submission

	query := db.WithContext(ctx).
		Select("submissions.*").
		Scopes(withSubmissionAssociations)
	if filter.UserID != nil {
		query = query.Where("submissions.user_id = ?", *filter.UserID)
	}
	if filter.Ungraded {
		query = query.Where("submissions.grade IS NULL")
	}
	if filter.ModuleID != nil {
		query = query.
			Joins("JOIN content_blocks ON content_blocks.id = submissions.content_block_id").
			Joins("JOIN lessons ON lessons.id = content_blocks.lesson_id").
			Where("lessons.module_id = ?", *filter.ModuleID)
	}

	if err := query.Order("submissions.created_at DESC").Find(&submissions).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing submissions in DB", "error", err)
		return nil, fmt.Errorf("gormSubmissionRepository.List: %w", err)
	}
	return submissions, nil
}

func (r *gormSubmissionRepository) CountUngradedByUsers(ctx context.Context, db *gorm.DB, userIDs []uuid.UUID) (int64, error) {
	var count int64
	if len(userIDs) == 0 {
		return 0, nil
	}

	err := db.WithContext(ctx).
		Model(&model.Submission{}).
		Where("user_id IN ? AND grade IS NULL", userIDs).
		Count(&count).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error counting ungraded submissions in DB", "error", err)
		return 0, fmt.Errorf("gormSubmissionRepository.CountUngradedByUsers: %w", err)
	}
	return count, nil
}

func (r *gormSubmissionRepository) Update(ctx context.Context, tx *gorm.DB, submission *model.Submission) error {
	result := tx.WithContext(ctx).Omit("User", "Grader", "ContentBlock").Save(submission)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating submission in DB", "error", result.Error, "submission_id", submission.ID.String())
		return fmt.Errorf("gormSubmissionRepository.Update: %w", result.Error)
	}
	return nil
}
