//go:generate mockery --name SubmissionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"
	"cohort_lms/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionService は提出と採点の状態遷移を扱う
//
//	未採点 (grade=nil) → A/B/C: ブロックの進捗を completed にする
//	未採点 (grade=nil) → R: 進捗は変えず、再提出されるまでダッシュボードのアクションに出る
type SubmissionService interface {
	Submit(ctx context.Context, principal model.Principal, req *model.CreateSubmissionRequest) (*model.SubmissionResponse, error)
	Grade(ctx context.Context, principal model.Principal, submissionID uuid.UUID, req *model.GradeSubmissionRequest) (*model.SubmissionResponse, error)
	List(ctx context.Context, principal model.Principal, filter model.SubmissionFilter) ([]model.SubmissionResponse, error)
	Get(ctx context.Context, principal model.Principal, submissionID uuid.UUID) (*model.SubmissionResponse, error)
	Update(ctx context.Context, principal model.Principal, submissionID uuid.UUID, req *model.UpdateSubmissionRequest) (*model.SubmissionResponse, error)
}

type submissionService struct {
	db             *gorm.DB
	submissionRepo repository.SubmissionRepository
	progressRepo   repository.ProgressRepository
	blockRepo      repository.ContentBlockRepository
	mailer         Mailer
	clock          Clock
	frontendURL    string
}

func NewSubmissionService(
	db *gorm.DB,
	submissionRepo repository.SubmissionRepository,
	progressRepo repository.ProgressRepository,
	blockRepo repository.ContentBlockRepository,
	mailer Mailer,
	clock Clock,
	frontendURL string,
) SubmissionService {
	return &submissionService{
		db:             db,
		submissionRepo: submissionRepo,
		progressRepo:   progressRepo,
		blockRepo:      blockRepo,
		mailer:         mailer,
		clock:          clock,
		frontendURL:    frontendURL,
	}
}

func (s *submissionService) Submit(ctx context.Context, principal model.Principal, req *model.CreateSubmissionRequest) (*model.SubmissionResponse, error) {
	logger := middleware.GetLogger(ctx)

	blockID, err := uuid.Parse(req.ContentBlockID)
	if err != nil {
		return nil, validationError("content_block_id must be a valid UUID", "content_block_id")
	}

	submission := &model.Submission{
		ID:             uuid.New(),
		ContentBlockID: blockID,
		UserID:         principal.UserID,
		Text:           req.Text,
		GithubIssueURL: req.GithubIssueURL,
		GithubCodeURL:  req.GithubCodeURL,
		NumSubmissions: 1,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.blockRepo.FindByID(ctx, tx, blockID); err != nil {
			return repoError(err, "Content block")
		}

		// 再提出なら直前の回数 + 1
		latest, err := s.submissionRepo.FindLatestForUserAndBlock(ctx, tx, principal.UserID, blockID)
		switch {
		case err == nil:
			submission.NumSubmissions = latest.NumSubmissions + 1
		case !errors.Is(err, model.ErrNotFound):
			return err
		}

		if err := s.submissionRepo.Create(ctx, tx, submission); err != nil {
			return err
		}
		// 完了済みの進捗は下げない
		return ensureStarted(ctx, tx, s.progressRepo, principal.UserID, blockID)
	})
	if err != nil {
		return nil, repoError(err, "Submission")
	}

	logger.Info(
		"Submission created",
		"submission_id", submission.ID.String(),
		"content_block_id", blockID.String(),
		"num_submissions", submission.NumSubmissions,
	)
	return s.response(ctx, submission.ID, false)
}

func (s *submissionService) Grade(ctx context.Context, principal model.Principal, submissionID uuid.UUID, req *model.GradeSubmissionRequest) (*model.SubmissionResponse, error) {
	logger := middleware.GetLogger(ctx)

	if !principal.IsStaff() {
		logger.Warn("Non-staff user attempted to grade", "user_id", principal.UserID.String())
		return nil, forbiddenError("Staff access required")
	}
	grade, err := model.ParseGrade(req.Grade)
	if err != nil {
		return nil, validationError(err.Error(), "grade")
	}

	gradedAt := s.clock.Now()
	graderID := principal.UserID

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		submission, err := s.submissionRepo.FindByID(ctx, tx, submissionID)
		if err != nil {
			return repoError(err, "Submission")
		}

		// 再採点は上書き
		submission.Grade = &grade
		submission.Feedback = req.Feedback
		submission.GradedByID = &graderID
		submission.GradedAt = &gradedAt
		if err := s.submissionRepo.Update(ctx, tx, submission); err != nil {
			return err
		}

		if grade.IsRedo() {
			return nil
		}
		_, err = setProgress(ctx, tx, s.progressRepo, submission.UserID, submission.ContentBlockID, model.ProgressCompleted, gradedAt)
		return err
	})
	if err != nil {
		return nil, repoError(err, "Submission")
	}

	logger.Info("Submission graded", "submission_id", submissionID.String(), "grade", grade.String(), "grader_id", graderID.String())

	graded, err := s.submissionRepo.FindByID(ctx, s.db, submissionID)
	if err != nil {
		return nil, repoError(err, "Submission")
	}
	s.notifyGraded(ctx, graded)

	resp := model.NewSubmissionResponse(graded, false)
	return &resp, nil
}

// notifyGraded は採点結果を受講者にメールする。失敗しても採点は成功扱い
func (s *submissionService) notifyGraded(ctx context.Context, submission *model.Submission) {
	if s.mailer == nil || submission.User == nil || submission.User.Email == "" {
		return
	}
	subject, body := gradeNotification(s.frontendURL, submission)
	if err := s.mailer.Send(ctx, submission.User.Email, subject, body); err != nil {
		middleware.GetLogger(ctx).Warn(
			"Failed to send grade notification",
			"error", err,
			"submission_id", submission.ID.String(),
		)
	}
}

func (s *submissionService) List(ctx context.Context, principal model.Principal, filter model.SubmissionFilter) ([]model.SubmissionResponse, error) {
	// 受講者は自分の提出のみ
	if !principal.IsStaff() {
		filter.UserID = &principal.UserID
	}

	submissions, err := s.submissionRepo.List(ctx, s.db, filter)
	if err != nil {
		return nil, internalError(err)
	}
	resp := make([]model.SubmissionResponse, 0, len(submissions))
	for _, sub := range submissions {
		resp = append(resp, model.NewSubmissionResponse(sub, false))
	}
	return resp, nil
}

func (s *submissionService) Get(ctx context.Context, principal model.Principal, submissionID uuid.UUID) (*model.SubmissionResponse, error) {
	submission, err := s.submissionRepo.FindByID(ctx, s.db, submissionID)
	if err != nil {
		return nil, repoError(err, "Submission")
	}
	if !principal.IsStaff() && submission.UserID != principal.UserID {
		return nil, forbiddenError("Cannot view this submission")
	}
	resp := model.NewSubmissionResponse(submission, principal.IsStaff())
	return &resp, nil
}

func (s *submissionService) Update(ctx context.Context, principal model.Principal, submissionID uuid.UUID, req *model.UpdateSubmissionRequest) (*model.SubmissionResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		submission, err := s.submissionRepo.FindByID(ctx, tx, submissionID)
		if err != nil {
			return repoError(err, "Submission")
		}
		// 受講者は採点前の自分の提出のみ編集できる
		if !principal.IsStaff() && (submission.UserID != principal.UserID || submission.IsGraded()) {
			return forbiddenError("Cannot update this submission")
		}

		if req.Text != nil {
			submission.Text = *req.Text
		}
		if req.GithubIssueURL != nil {
			submission.GithubIssueURL = *req.GithubIssueURL
		}
		if req.GithubCodeURL != nil {
			submission.GithubCodeURL = *req.GithubCodeURL
		}
		return s.submissionRepo.Update(ctx, tx, submission)
	})
	if err != nil {
		return nil, repoError(err, "Submission")
	}
	return s.response(ctx, submissionID, false)
}

func (s *submissionService) response(ctx context.Context, submissionID uuid.UUID, includeSolution bool) (*model.SubmissionResponse, error) {
	submission, err := s.submissionRepo.FindByID(ctx, s.db, submissionID)
	if err != nil {
		return nil, repoError(err, "Submission")
	}
	resp := model.NewSubmissionResponse(submission, includeSolution)
	return &resp, nil
}
