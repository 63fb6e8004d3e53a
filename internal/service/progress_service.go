//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"
	"cohort_lms/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	// UpdateProgress は本人の進捗を作成または更新する
	UpdateProgress(ctx context.Context, principal model.Principal, req *model.UpdateProgressRequest) (*model.ProgressResponse, error)
	ListProgress(ctx context.Context, principal model.Principal, filter model.ProgressFilter) ([]model.ProgressResponse, error)
	StudentProgress(ctx context.Context, userID uuid.UUID) (*model.StudentProgressResponse, error)
}

type progressService struct {
	db           *gorm.DB
	progressRepo repository.ProgressRepository
	blockRepo    repository.ContentBlockRepository
	lessonRepo   repository.LessonRepository
	moduleRepo   repository.ModuleRepository
	userRepo     repository.UserRepository
	clock        Clock
}

func NewProgressService(
	db *gorm.DB,
	progressRepo repository.ProgressRepository,
	blockRepo repository.ContentBlockRepository,
	lessonRepo repository.LessonRepository,
	moduleRepo repository.ModuleRepository,
	userRepo repository.UserRepository,
	clock Clock,
) ProgressService {
	return &progressService{
		db:           db,
		progressRepo: progressRepo,
		blockRepo:    blockRepo,
		lessonRepo:   lessonRepo,
		moduleRepo:   moduleRepo,
		userRepo:     userRepo,
		clock:        clock,
	}
}

func (s *progressService) UpdateProgress(ctx context.Context, principal model.Principal, req *model.UpdateProgressRequest) (*model.ProgressResponse, error) {
	logger := middleware.GetLogger(ctx)

	blockID, err := uuid.Parse(req.ContentBlockID)
	if err != nil {
		return nil, validationError("content_block_id must be a valid UUID", "content_block_id")
	}
	status, err := model.ParseProgressStatus(req.Status)
	if err != nil {
		return nil, validationError(err.Error(), "status")
	}

	var progress *model.Progress
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.blockRepo.FindByID(ctx, tx, blockID); err != nil {
			return repoError(err, "Content block")
		}
		p, err := setProgress(ctx, tx, s.progressRepo, principal.UserID, blockID, status, s.clock.Now())
		if err != nil {
			return err
		}
		progress = p
		return nil
	})
	if err != nil {
		return nil, repoError(err, "Progress")
	}

	logger.Info("Progress updated", "user_id", principal.UserID.String(), "content_block_id", blockID.String(), "status", status.String())
	resp := model.NewProgressResponse(progress)
	return &resp, nil
}

func (s *progressService) ListProgress(ctx context.Context, principal model.Principal, filter model.ProgressFilter) ([]model.ProgressResponse, error) {
	// 絞り込み対象が存在しなければ 404
	if filter.LessonID != nil {
		if _, err := s.lessonRepo.FindByID(ctx, s.db, *filter.LessonID); err != nil {
			return nil, repoError(err, "Lesson")
		}
	} else if filter.ModuleID != nil {
		if _, err := s.moduleRepo.FindByID(ctx, s.db, *filter.ModuleID); err != nil {
			return nil, repoError(err, "Module")
		}
	}

	progresses, err := s.progressRepo.ListByUser(ctx, s.db, principal.UserID, filter)
	if err != nil {
		return nil, internalError(err)
	}
	return toProgressResponses(progresses), nil
}

func (s *progressService) StudentProgress(ctx context.Context, userID uuid.UUID) (*model.StudentProgressResponse, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, repoError(err, "User")
	}
	progresses, err := s.progressRepo.ListByUser(ctx, s.db, userID, model.ProgressFilter{})
	if err != nil {
		return nil, internalError(err)
	}
	return &model.StudentProgressResponse{
		UserID:   user.ID,
		UserName: user.FullName(),
		Progress: toProgressResponses(progresses),
	}, nil
}

func toProgressResponses(progresses []*model.Progress) []model.ProgressResponse {
	resp := make([]model.ProgressResponse, 0, len(progresses))
	for _, p := range progresses {
		resp = append(resp, model.NewProgressResponse(p))
	}
	return resp
}

// setProgress は (user, block) の進捗を status にする。行が無ければ作る
// 同じ status なら何もしない (completed_at も変わらない)。completed_at には at を使う
func setProgress(ctx context.Context, tx *gorm.DB, repo repository.ProgressRepository, userID, blockID uuid.UUID, status model.ProgressStatus, at time.Time) (*model.Progress, error) {
	p, err := repo.FindByUserAndBlock(ctx, tx, userID, blockID)
	if errors.Is(err, model.ErrNotFound) {
		p = &model.Progress{
			ID:             uuid.New(),
			UserID:         userID,
			ContentBlockID: blockID,
			Status:         status,
		}
		p.SyncCompletedAt(at)
		err = createInSavepoint(ctx, tx, repo, p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		// 同時に作成された場合は読み直して更新する
		p, err = repo.FindByUserAndBlock(ctx, tx, userID, blockID)
	}
	if err != nil {
		return nil, err
	}

	if p.Status == status {
		return p, nil
	}
	p.Status = status
	p.SyncCompletedAt(at)
	if err := repo.Update(ctx, tx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ensureStarted は進捗行が無ければ in_progress で作る。既存の行は変更しない
func ensureStarted(ctx context.Context, tx *gorm.DB, repo repository.ProgressRepository, userID, blockID uuid.UUID) error {
	_, err := repo.FindByUserAndBlock(ctx, tx, userID, blockID)
	if err == nil || !errors.Is(err, model.ErrNotFound) {
		return err
	}
	err = createInSavepoint(ctx, tx, repo, &model.Progress{
		ID:             uuid.New(),
		UserID:         userID,
		ContentBlockID: blockID,
		Status:         model.ProgressInProgress,
	})
	if errors.Is(err, model.ErrConflict) {
		return nil
	}
	return err
}

// createInSavepoint は一意制約違反で外側のトランザクションが使えなくならないよう SAVEPOINT 内で作成する
func createInSavepoint(ctx context.Context, tx *gorm.DB, repo repository.ProgressRepository, p *model.Progress) error {
	return tx.Transaction(func(sp *gorm.DB) error {
		return repo.Create(ctx, sp, p)
	})
}
