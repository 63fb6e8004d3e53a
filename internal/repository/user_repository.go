//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	FindByExternalID(ctx context.Context, db *gorm.DB, externalID string) (*model.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error)
	FindWithEnrollments(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	List(ctx context.Context, db *gorm.DB, role *model.Role) ([]*model.User, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	Update(ctx context.Context, db *gorm.DB, user *model.User) error
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create user", "error", result.Error, "email", user.Email)
			return model.ErrConflict
		}
		logger.Error("Error creating user in DB", "error", result.Error, "email", user.Email)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	return r.findOne(ctx, db, "FindByID", "id = ?", userID)
}

func (r *gormUserRepository) FindByExternalID(ctx context.Context, db *gorm.DB, externalID string) (*model.User, error) {
	return r.findOne(ctx, db, "FindByExternalID", "external_id = ?", externalID)
}

// FindByEmail は大文字小文字を区別せずに検索する
func (r *gormUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error) {
	return r.findOne(ctx, db, "FindByEmail", "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *gormUserRepository) findOne(ctx context.Context, db *gorm.DB, op string, query string, arg interface{}) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where(query, arg).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("User not found", "op", op)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user in DB", "error", result.Error, "op", op)
		return nil, fmt.Errorf("gormUserRepository.%s: %w", op, result.Error)
	}
	return &user, nil
}

// FindWithEnrollments は受講情報とそのコホート・カリキュラムも読み込む
func (r *gormUserRepository) FindWithEnrollments(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).
		Preload("Enrollments", func(db *gorm.DB) *gorm.DB { return db.Order("enrollments.enrolled_at ASC") }).
		Preload("Enrollments.Cohort.Curriculum").
		Where("id = ?", userID).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user with enrollments in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormUserRepository.FindWithEnrollments: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) List(ctx context.Context, db *gorm.DB, role *model.Role) ([]*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var users []*model.User

	query := db.WithContext(ctx).Order("last_name ASC").Order("first_name ASC").Order("email ASC")
	if role != nil {
		query = query.Where("role = ?", *role)
	}
	if err := query.Find(&users).Error; err != nil {
		logger.Error("Error listing users in DB", "error", err)
		return nil, fmt.Errorf("gormUserRepository.List: %w", err)
	}
	return users, nil
}

func (r *gormUserRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error counting users in DB", "error", err)
		return 0, fmt.Errorf("gormUserRepository.Count: %w", err)
	}
	return count, nil
}

func (r *gormUserRepository) Update(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Omit("Enrollments").Save(user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on update user", "error", result.Error, "user_id", user.ID.String())
			return model.ErrConflict
		}
		logger.Error("Error updating user in DB", "error", result.Error, "user_id", user.ID.String())
		return fmt.Errorf("gormUserRepository.Update: %w", result.Error)
	}
	return nil
}
