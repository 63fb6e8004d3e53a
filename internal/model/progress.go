// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Progress はユーザーごと・コンテンツブロックごとの進捗 ((user_id, content_block_id) は一意)
// 初めて操作されたときに作成する
type Progress struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_progresses_user_block" json:"user_id"`
	ContentBlockID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_progresses_user_block;index" json:"content_block_id"`
	Status         ProgressStatus `gorm:"not null;index" json:"status"`
	CompletedAt    *time.Time     `json:"completed_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	ContentBlock *ContentBlock `gorm:"foreignKey:ContentBlockID" json:"-"`
}

func (Progress) TableName() string {
	return "progresses"
}

// BeforeSave で completed_at を status に同期させる
// サービスは Clock の時刻で先に SyncCompletedAt するので、ここで埋まるのはそれ以外の経路だけ
func (p *Progress) BeforeSave(tx *gorm.DB) error {
	p.SyncCompletedAt(time.Now())
	return nil
}

// SyncCompletedAt は completed になった時点で completed_at を設定し、
// completed のままなら保持、それ以外なら nil に戻す
func (p *Progress) SyncCompletedAt(now time.Time) {
	switch {
	case p.Status == ProgressCompleted && p.CompletedAt == nil:
		p.CompletedAt = &now
	case p.Status != ProgressCompleted:
		p.CompletedAt = nil
	}
}

func (p *Progress) IsCompleted() bool {
	return p.Status == ProgressCompleted
}

// UpdateProgressRequest は PATCH /progress のボディ
type UpdateProgressRequest struct {
	ContentBlockID string `json:"content_block_id" validate:"required,uuid"`
	Status         string `json:"status" validate:"required,oneof=not_started in_progress completed"`
}

// ProgressFilter は GET /progress の絞り込み
type ProgressFilter struct {
	ModuleID *uuid.UUID
	LessonID *uuid.UUID
}

type ProgressResponse struct {
	ID             uuid.UUID      `json:"id"`
	ContentBlockID uuid.UUID      `json:"content_block_id"`
	BlockType      *BlockType     `json:"block_type,omitempty"`
	Status         ProgressStatus `json:"status"`
	CompletedAt    *time.Time     `json:"completed_at"`
}

func NewProgressResponse(p *Progress) ProgressResponse {
	resp := ProgressResponse{
		ID:             p.ID,
		ContentBlockID: p.ContentBlockID,
		Status:         p.Status,
		CompletedAt:    p.CompletedAt,
	}
	if p.ContentBlock != nil {
		bt := p.ContentBlock.BlockType
		resp.BlockType = &bt
	}
	return resp
}

// StudentProgressResponse は GET /progress/student/{user_id}
type StudentProgressResponse struct {
	UserID   uuid.UUID          `json:"user_id"`
	UserName string             `json:"user_name"`
	Progress []ProgressResponse `json:"progress"`
}
