//go:generate mockery --name LessonService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"
	"cohort_lms/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LessonService はレッスンとコンテンツブロックの管理、およびレッスン詳細の表示
type LessonService interface {
	ListLessons(ctx context.Context, moduleID uuid.UUID) ([]model.LessonResponse, error)
	// GetLessonDetail は受講者なら自分の進捗・提出と解放日、講師なら解答を含める
	GetLessonDetail(ctx context.Context, principal model.Principal, lessonID uuid.UUID) (*model.LessonDetailResponse, error)
	CreateLesson(ctx context.Context, moduleID uuid.UUID, req *model.CreateLessonRequest) (*model.LessonResponse, error)
	UpdateLesson(ctx context.Context, lessonID uuid.UUID, req *model.UpdateLessonRequest) (*model.LessonResponse, error)
	DeleteLesson(ctx context.Context, lessonID uuid.UUID) error

	ListContentBlocks(ctx context.Context, lessonID uuid.UUID) ([]model.ContentBlockResponse, error)
	GetContentBlock(ctx context.Context, blockID uuid.UUID) (*model.ContentBlockResponse, error)
	CreateContentBlock(ctx context.Context, lessonID uuid.UUID, req *model.CreateContentBlockRequest) (*model.ContentBlockResponse, error)
	UpdateContentBlock(ctx context.Context, blockID uuid.UUID, req *model.UpdateContentBlockRequest) (*model.ContentBlockResponse, error)
	DeleteContentBlock(ctx context.Context, blockID uuid.UUID) error
}

type lessonService struct {
	db             *gorm.DB
	moduleRepo     repository.ModuleRepository
	lessonRepo     repository.LessonRepository
	blockRepo      repository.ContentBlockRepository
	enrollmentRepo repository.EnrollmentRepository
	progressRepo   repository.ProgressRepository
	submissionRepo repository.SubmissionRepository
	clock          Clock
}

func NewLessonService(
	db *gorm.DB,
	moduleRepo repository.ModuleRepository,
	lessonRepo repository.LessonRepository,
	blockRepo repository.ContentBlockRepository,
	enrollmentRepo repository.EnrollmentRepository,
	progressRepo repository.ProgressRepository,
	submissionRepo repository.SubmissionRepository,
	clock Clock,
) LessonService {
	return &lessonService{
		db:             db,
		moduleRepo:     moduleRepo,
		lessonRepo:     lessonRepo,
		blockRepo:      blockRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
		submissionRepo: submissionRepo,
		clock:          clock,
	}
}

func (s *lessonService) ListLessons(ctx context.Context, moduleID uuid.UUID) ([]model.LessonResponse, error) {
	if _, err := s.moduleRepo.FindByID(ctx, s.db, moduleID); err != nil {
		return nil, repoError(err, "Module")
	}
	lessons, err := s.lessonRepo.ListByModule(ctx, s.db, moduleID)
	if err != nil {
		return nil, internalError(err)
	}
	resp := make([]model.LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		resp = append(resp, model.NewLessonResponse(l, false))
	}
	return resp, nil
}

func (s *lessonService) GetLessonDetail(ctx context.Context, principal model.Principal, lessonID uuid.UUID) (*model.LessonDetailResponse, error) {
	logger := middleware.GetLogger(ctx)

	lesson, err := s.lessonRepo.FindByID(ctx, s.db, lessonID)
	if err != nil {
		return nil, repoError(err, "Lesson")
	}

	detail := &model.LessonDetailResponse{
		LessonResponse: model.NewLessonResponse(lesson, false),
		ContentBlocks:  make([]model.LessonDetailBlock, 0, len(lesson.ContentBlocks)),
	}

	var progressByBlock map[uuid.UUID]*model.Progress
	var submissionsByBlock map[uuid.UUID][]*model.Submission
	if !principal.IsStaff() {
		progressByBlock, submissionsByBlock, err = s.learnerState(ctx, principal.UserID, lessonID)
		if err != nil {
			return nil, internalError(err)
		}
		if err := s.fillAvailability(ctx, principal.UserID, lesson, detail); err != nil {
			return nil, internalError(err)
		}
	}

	for i := range lesson.ContentBlocks {
		block := &lesson.ContentBlocks[i]
		item := model.LessonDetailBlock{
			ContentBlockResponse: model.NewContentBlockResponse(block, principal.IsStaff()),
		}
		html, err := renderMarkdown(block.Body)
		if err != nil {
			logger.Warn("Failed to render block body", "error", err, "content_block_id", block.ID.String())
		}
		item.BodyHTML = html

		if p, ok := progressByBlock[block.ID]; ok {
			resp := model.NewProgressResponse(p)
			item.Progress = &resp
		}
		for _, sub := range submissionsByBlock[block.ID] {
			item.Submissions = append(item.Submissions, model.NewSubmissionAttempt(sub))
		}
		detail.ContentBlocks = append(detail.ContentBlocks, item)
	}
	detail.ContentBlocksCount = len(detail.ContentBlocks)

	// 前後のレッスンは同じモジュール内のみ
	siblings, err := s.lessonRepo.ListByModule(ctx, s.db, lesson.ModuleID)
	if err != nil {
		return nil, internalError(err)
	}
	detail.PrevLesson, detail.NextLesson = adjacentLessons(siblings, lesson.ID)

	return detail, nil
}

// learnerState はレッスン内のブロックに対する本人の進捗と提出 (新しい順)
func (s *lessonService) learnerState(ctx context.Context, userID, lessonID uuid.UUID) (map[uuid.UUID]*model.Progress, map[uuid.UUID][]*model.Submission, error) {
	progresses, err := s.progressRepo.ListByUser(ctx, s.db, userID, model.ProgressFilter{LessonID: &lessonID})
	if err != nil {
		return nil, nil, err
	}
	progressByBlock := make(map[uuid.UUID]*model.Progress, len(progresses))
	for _, p := range progresses {
		progressByBlock[p.ContentBlockID] = p
	}

	submissions, err := s.submissionRepo.ListByUser(ctx, s.db, userID)
	if err != nil {
		return nil, nil, err
	}
	submissionsByBlock := make(map[uuid.UUID][]*model.Submission)
	for _, sub := range submissions {
		if sub.ContentBlock == nil || sub.ContentBlock.LessonID != lessonID {
			continue
		}
		submissionsByBlock[sub.ContentBlockID] = append(submissionsByBlock[sub.ContentBlockID], sub)
	}
	return progressByBlock, submissionsByBlock, nil
}

// fillAvailability は受講中のコホートがあれば解放日と解放済みかを設定する
// 表示用であり、未解放でも内容は返す
func (s *lessonService) fillAvailability(ctx context.Context, userID uuid.UUID, lesson *model.Lesson, detail *model.LessonDetailResponse) error {
	if lesson.Module == nil {
		return nil
	}
	enrollment, err := s.enrollmentRepo.FindActiveByUser(ctx, s.db, userID)
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if enrollment.Cohort == nil || enrollment.Cohort.CurriculumID != lesson.Module.CurriculumID {
		return nil
	}

	var assignment *model.ModuleAssignment
	for i := range enrollment.ModuleAssignments {
		if enrollment.ModuleAssignments[i].ModuleID == lesson.ModuleID {
			assignment = &enrollment.ModuleAssignments[i]
			break
		}
	}
	unlockDate := LessonUnlockDate(lesson, lesson.Module, enrollment.Cohort, assignment)
	available := LessonAvailable(Today(s.clock), lesson, lesson.Module, enrollment.Cohort, assignment)
	formatted := unlockDate.Format(model.DateLayout)
	detail.Available = &available
	detail.UnlockDate = &formatted
	return nil
}

func adjacentLessons(siblings []*model.Lesson, lessonID uuid.UUID) (prev, next *model.LessonLink) {
	for i, l := range siblings {
		if l.ID != lessonID {
			continue
		}
		if i > 0 {
			prev = &model.LessonLink{ID: siblings[i-1].ID, Title: siblings[i-1].Title}
		}
		if i < len(siblings)-1 {
			next = &model.LessonLink{ID: siblings[i+1].ID, Title: siblings[i+1].Title}
		}
		return prev, next
	}
	return nil, nil
}

func (s *lessonService) CreateLesson(ctx context.Context, moduleID uuid.UUID, req *model.CreateLessonRequest) (*model.LessonResponse, error) {
	if _, err := s.moduleRepo.FindByID(ctx, s.db, moduleID); err != nil {
		return nil, repoError(err, "Module")
	}

	lesson := &model.Lesson{
		ID:         uuid.New(),
		ModuleID:   moduleID,
		Title:      req.Title,
		Position:   req.Position,
		ReleaseDay: req.ReleaseDay,
		Required:   true,
	}
	if req.Required != nil {
		lesson.Required = *req.Required
	}
	if req.LessonType != "" {
		lessonType, err := model.ParseLessonType(req.LessonType)
		if err != nil {
			return nil, validationError(err.Error(), "lesson_type")
		}
		lesson.LessonType = lessonType
	}

	if err := s.lessonRepo.Create(ctx, s.db, lesson); err != nil {
		return nil, repoError(err, "Lesson")
	}
	middleware.GetLogger(ctx).Info("Lesson created", "lesson_id", lesson.ID.String(), "module_id", moduleID.String())
	resp := model.NewLessonResponse(lesson, false)
	return &resp, nil
}

func (s *lessonService) UpdateLesson(ctx context.Context, lessonID uuid.UUID, req *model.UpdateLessonRequest) (*model.LessonResponse, error) {
	lesson, err := s.lessonRepo.FindByID(ctx, s.db, lessonID)
	if err != nil {
		return nil, repoError(err, "Lesson")
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.LessonType != nil {
		lessonType, err := model.ParseLessonType(*req.LessonType)
		if err != nil {
			return nil, validationError(err.Error(), "lesson_type")
		}
		lesson.LessonType = lessonType
	}
	if req.Position != nil {
		lesson.Position = *req.Position
	}
	if req.ReleaseDay != nil {
		lesson.ReleaseDay = *req.ReleaseDay
	}
	if req.Required != nil {
		lesson.Required = *req.Required
	}

	if err := s.lessonRepo.Update(ctx, s.db, lesson); err != nil {
		return nil, repoError(err, "Lesson")
	}
	resp := model.NewLessonResponse(lesson, false)
	return &resp, nil
}

func (s *lessonService) DeleteLesson(ctx context.Context, lessonID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.lessonRepo.Delete(ctx, tx, lessonID)
	})
	if err != nil {
		return repoError(err, "Lesson")
	}
	middleware.GetLogger(ctx).Info("Lesson deleted", "lesson_id", lessonID.String())
	return nil
}

func (s *lessonService) ListContentBlocks(ctx context.Context, lessonID uuid.UUID) ([]model.ContentBlockResponse, error) {
	if _, err := s.lessonRepo.FindByID(ctx, s.db, lessonID); err != nil {
		return nil, repoError(err, "Lesson")
	}
	blocks, err := s.blockRepo.ListByLesson(ctx, s.db, lessonID)
	if err != nil {
		return nil, internalError(err)
	}
	resp := make([]model.ContentBlockResponse, 0, len(blocks))
	for _, b := range blocks {
		resp = append(resp, model.NewContentBlockResponse(b, true))
	}
	return resp, nil
}

func (s *lessonService) GetContentBlock(ctx context.Context, blockID uuid.UUID) (*model.ContentBlockResponse, error) {
	block, err := s.blockRepo.FindByID(ctx, s.db, blockID)
	if err != nil {
		return nil, repoError(err, "Content block")
	}
	resp := model.NewContentBlockResponse(block, true)
	return &resp, nil
}

func (s *lessonService) CreateContentBlock(ctx context.Context, lessonID uuid.UUID, req *model.CreateContentBlockRequest) (*model.ContentBlockResponse, error) {
	if _, err := s.lessonRepo.FindByID(ctx, s.db, lessonID); err != nil {
		return nil, repoError(err, "Lesson")
	}
	blockType, err := model.ParseBlockType(req.BlockType)
	if err != nil {
		return nil, validationError(err.Error(), "block_type")
	}

	block := &model.ContentBlock{
		ID:        uuid.New(),
		LessonID:  lessonID,
		BlockType: blockType,
		Position:  req.Position,
		Title:     req.Title,
		Body:      req.Body,
		VideoURL:  req.VideoURL,
		Solution:  req.Solution,
		Filename:  req.Filename,
		Metadata:  emptyJSONIfNil(req.Metadata),
	}
	if err := s.blockRepo.Create(ctx, s.db, block); err != nil {
		return nil, repoError(err, "Content block")
	}
	middleware.GetLogger(ctx).Info("Content block created", "content_block_id", block.ID.String(), "lesson_id", lessonID.String())
	resp := model.NewContentBlockResponse(block, true)
	return &resp, nil
}

func (s *lessonService) UpdateContentBlock(ctx context.Context, blockID uuid.UUID, req *model.UpdateContentBlockRequest) (*model.ContentBlockResponse, error) {
	block, err := s.blockRepo.FindByID(ctx, s.db, blockID)
	if err != nil {
		return nil, repoError(err, "Content block")
	}

	if req.BlockType != nil {
		blockType, err := model.ParseBlockType(*req.BlockType)
		if err != nil {
			return nil, validationError(err.Error(), "block_type")
		}
		block.BlockType = blockType
	}
	if req.Position != nil {
		block.Position = *req.Position
	}
	if req.Title != nil {
		block.Title = *req.Title
	}
	if req.Body != nil {
		block.Body = *req.Body
	}
	if req.VideoURL != nil {
		block.VideoURL = *req.VideoURL
	}
	if req.Solution != nil {
		block.Solution = *req.Solution
	}
	if req.Filename != nil {
		block.Filename = *req.Filename
	}
	if req.Metadata != nil {
		block.Metadata = emptyJSONIfNil(*req.Metadata)
	}

	if err := s.blockRepo.Update(ctx, s.db, block); err != nil {
		return nil, repoError(err, "Content block")
	}
	resp := model.NewContentBlockResponse(block, true)
	return &resp, nil
}

func (s *lessonService) DeleteContentBlock(ctx context.Context, blockID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.blockRepo.Delete(ctx, tx, blockID)
	})
	if err != nil {
		return repoError(err, "Content block")
	}
	middleware.GetLogger(ctx).Info("Content block deleted", "content_block_id", blockID.String())
	return nil
}

func emptyJSONIfNil(j datatypes.JSON) datatypes.JSON {
	if len(j) == 0 {
		return datatypes.JSON("{}")
	}
	return j
}
