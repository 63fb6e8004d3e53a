// internal/model/submission.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Submission は演習への提出。同じ (user, block) への再提出ごとに新しい行を作る
// grade が nil の間は未採点
type Submission struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ContentBlockID uuid.UUID  `gorm:"type:uuid;not null;index:idx_submissions_block_user" json:"content_block_id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_submissions_block_user;index" json:"user_id"`
	Text           string     `json:"text"`
	Grade          *Grade     `gorm:"index" json:"grade"`
	Feedback       string     `json:"feedback"`
	GradedByID     *uuid.UUID `gorm:"type:uuid;index" json:"graded_by_id"`
	GradedAt       *time.Time `json:"graded_at"`
	NumSubmissions int        `gorm:"not null" json:"num_submissions"`
	GithubIssueURL string     `json:"github_issue_url"`
	GithubCodeURL  string     `json:"github_code_url"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	User         *User         `gorm:"foreignKey:UserID" json:"-"`
	Grader       *User         `gorm:"foreignKey:GradedByID" json:"-"`
	ContentBlock *ContentBlock `gorm:"foreignKey:ContentBlockID" json:"-"`
}

func (Submission) TableName() string {
	return "submissions"
}

func (s *Submission) IsGraded() bool {
	return s.Grade != nil
}

// --- リクエスト ---

type CreateSubmissionRequest struct {
	ContentBlockID string `json:"content_block_id" validate:"required,uuid"`
	Text           string `json:"text" validate:"max=20000"`
	GithubIssueURL string `json:"github_issue_url" validate:"omitempty,url"`
	GithubCodeURL  string `json:"github_code_url" validate:"omitempty,url"`
}

type UpdateSubmissionRequest struct {
	Text           *string `json:"text" validate:"omitempty,max=20000"`
	GithubIssueURL *string `json:"github_issue_url" validate:"omitempty,url"`
	GithubCodeURL  *string `json:"github_code_url" validate:"omitempty,url"`
}

type GradeSubmissionRequest struct {
	Grade    string `json:"grade" validate:"required,oneof=A B C R"`
	Feedback string `json:"feedback" validate:"max=20000"`
}

// SubmissionFilter は GET /submissions の絞り込み
type SubmissionFilter struct {
	UserID   *uuid.UUID
	ModuleID *uuid.UUID
	Ungraded bool
}

// --- レスポンス ---

type SubmissionResponse struct {
	ID                uuid.UUID  `json:"id"`
	ContentBlockID    uuid.UUID  `json:"content_block_id"`
	UserID            uuid.UUID  `json:"user_id"`
	UserName          string     `json:"user_name"`
	Text              string     `json:"text"`
	Grade             *Grade     `json:"grade"`
	Feedback          string     `json:"feedback"`
	GradedBy          *string    `json:"graded_by"`
	GradedAt          *time.Time `json:"graded_at"`
	GithubIssueURL    string     `json:"github_issue_url"`
	GithubCodeURL     string     `json:"github_code_url"`
	NumSubmissions    int        `json:"num_submissions"`
	CreatedAt         time.Time  `json:"created_at"`
	ContentBlockTitle string     `json:"content_block_title"`
	ContentBlockType  *BlockType `json:"content_block_type"`
	LessonTitle       string     `json:"lesson_title"`
	Solution          *string    `json:"solution,omitempty"`
}

// NewSubmissionResponse は User, Grader, ContentBlock.Lesson を読み込み済みの前提
func NewSubmissionResponse(s *Submission, includeSolution bool) SubmissionResponse {
	resp := SubmissionResponse{
		ID:             s.ID,
		ContentBlockID: s.ContentBlockID,
		UserID:         s.UserID,
		Text:           s.Text,
		Grade:          s.Grade,
		Feedback:       s.Feedback,
		GradedAt:       s.GradedAt,
		GithubIssueURL: s.GithubIssueURL,
		GithubCodeURL:  s.GithubCodeURL,
		NumSubmissions: s.NumSubmissions,
		CreatedAt:      s.CreatedAt,
	}
	if s.User != nil {
		resp.UserName = s.User.FullName()
	}
	if s.Grader != nil {
		name := s.Grader.FullName()
		resp.GradedBy = &name
	}
	if cb := s.ContentBlock; cb != nil {
		bt := cb.BlockType
		resp.ContentBlockTitle = cb.Title
		resp.ContentBlockType = &bt
		if cb.Lesson != nil {
			resp.LessonTitle = cb.Lesson.Title
		}
		if includeSolution {
			solution := cb.Solution
			resp.Solution = &solution
		}
	}
	return resp
}

// SubmissionAttempt はレッスン詳細に含める提出履歴
type SubmissionAttempt struct {
	ID             uuid.UUID  `json:"id"`
	Text           string     `json:"text"`
	Grade          *Grade     `json:"grade"`
	Feedback       string     `json:"feedback"`
	GradedAt       *time.Time `json:"graded_at"`
	NumSubmissions int        `json:"num_submissions"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewSubmissionAttempt(s *Submission) SubmissionAttempt {
	return SubmissionAttempt{
		ID:             s.ID,
		Text:           s.Text,
		Grade:          s.Grade,
		Feedback:       s.Feedback,
		GradedAt:       s.GradedAt,
		NumSubmissions: s.NumSubmissions,
		CreatedAt:      s.CreatedAt,
	}
}
