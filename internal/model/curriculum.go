// internal/model/curriculum.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Curriculum → CurriculumModule → Lesson → ContentBlock の木構造。
// 並び順は position。デフォルトスコープは持たないので、読み出し側で必ず position 順を指定する。

type Curriculum struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string           `gorm:"not null" json:"name"`
	Description string           `json:"description"`
	TotalWeeks  *int             `json:"total_weeks"`
	Status      CurriculumStatus `gorm:"not null" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	Modules []CurriculumModule `gorm:"foreignKey:CurriculumID" json:"-"`
}

func (Curriculum) TableName() string {
	return "curricula"
}

type CurriculumModule struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CurriculumID uuid.UUID  `gorm:"type:uuid;not null;index:idx_modules_curriculum_position" json:"curriculum_id"`
	Name         string     `gorm:"not null" json:"name"`
	ModuleType   ModuleType `gorm:"not null" json:"module_type"`
	Description  string     `json:"description"`
	Position     int        `gorm:"not null;index:idx_modules_curriculum_position" json:"position"`
	DayOffset    int        `gorm:"not null" json:"day_offset"`
	TotalDays    *int       `json:"total_days"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Lessons []Lesson `gorm:"foreignKey:ModuleID" json:"-"`
}

func (CurriculumModule) TableName() string {
	return "modules"
}

type Lesson struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ModuleID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_lessons_module_position" json:"module_id"`
	Title      string     `gorm:"not null" json:"title"`
	LessonType LessonType `gorm:"not null" json:"lesson_type"`
	Position   int        `gorm:"not null;index:idx_lessons_module_position" json:"position"`
	ReleaseDay int        `gorm:"not null" json:"release_day"`
	Required   bool       `gorm:"not null" json:"required"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Module        *CurriculumModule `gorm:"foreignKey:ModuleID" json:"-"`
	ContentBlocks []ContentBlock    `gorm:"foreignKey:LessonID" json:"-"`
}

func (Lesson) TableName() string {
	return "lessons"
}

type ContentBlock struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	LessonID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_blocks_lesson_position" json:"lesson_id"`
	BlockType BlockType      `gorm:"not null;index" json:"block_type"`
	Position  int            `gorm:"not null;index:idx_blocks_lesson_position" json:"position"`
	Title     string         `json:"title"`
	Body      string         `json:"body"` // markdown
	VideoURL  string         `json:"video_url"`
	Solution  string         `json:"solution"`
	Filename  string         `json:"filename"`
	Metadata  datatypes.JSON `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	Lesson *Lesson `gorm:"foreignKey:LessonID" json:"-"`
}

func (ContentBlock) TableName() string {
	return "content_blocks"
}

// --- リクエスト ---

type CreateCurriculumRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
	TotalWeeks  *int   `json:"total_weeks" validate:"omitempty,min=0"`
	Status      string `json:"status" validate:"omitempty,oneof=draft active archived"`
}

type UpdateCurriculumRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	TotalWeeks  *int    `json:"total_weeks" validate:"omitempty,min=0"`
	Status      *string `json:"status" validate:"omitempty,oneof=draft active archived"`
}

type CreateModuleRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	ModuleType  string `json:"module_type" validate:"omitempty,oneof=prework live_class capstone advanced workshop recording"`
	Description string `json:"description"`
	Position    int    `json:"position" validate:"min=0"`
	DayOffset   int    `json:"day_offset" validate:"min=0"`
	TotalDays   *int   `json:"total_days" validate:"omitempty,min=0"`
}

type UpdateModuleRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	ModuleType  *string `json:"module_type" validate:"omitempty,oneof=prework live_class capstone advanced workshop recording"`
	Description *string `json:"description"`
	Position    *int    `json:"position" validate:"omitempty,min=0"`
	DayOffset   *int    `json:"day_offset" validate:"omitempty,min=0"`
	TotalDays   *int    `json:"total_days" validate:"omitempty,min=0"`
}

type CreateLessonRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	LessonType string `json:"lesson_type" validate:"omitempty,oneof=video exercise reading project checkpoint"`
	Position   int    `json:"position" validate:"min=0"`
	ReleaseDay int    `json:"release_day" validate:"min=0"`
	Required   *bool  `json:"required"`
}

type UpdateLessonRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=1,max=200"`
	LessonType *string `json:"lesson_type" validate:"omitempty,oneof=video exercise reading project checkpoint"`
	Position   *int    `json:"position" validate:"omitempty,min=0"`
	ReleaseDay *int    `json:"release_day" validate:"omitempty,min=0"`
	Required   *bool   `json:"required"`
}

type CreateContentBlockRequest struct {
	BlockType string         `json:"block_type" validate:"required,oneof=video text exercise code_challenge checkpoint recording"`
	Position  int            `json:"position" validate:"min=0"`
	Title     string         `json:"title" validate:"max=200"`
	Body      string         `json:"body"`
	VideoURL  string         `json:"video_url" validate:"omitempty,url"`
	Solution  string         `json:"solution"`
	Filename  string         `json:"filename" validate:"max=255"`
	Metadata  datatypes.JSON `json:"metadata"`
}

type UpdateContentBlockRequest struct {
	BlockType *string         `json:"block_type" validate:"omitempty,oneof=video text exercise code_challenge checkpoint recording"`
	Position  *int            `json:"position" validate:"omitempty,min=0"`
	Title     *string         `json:"title" validate:"omitempty,max=200"`
	Body      *string         `json:"body"`
	VideoURL  *string         `json:"video_url" validate:"omitempty,url"`
	Solution  *string         `json:"solution"`
	Filename  *string         `json:"filename" validate:"omitempty,max=255"`
	Metadata  *datatypes.JSON `json:"metadata"`
}

// --- レスポンス ---

type CurriculumResponse struct {
	ID           uuid.UUID                  `json:"id"`
	Name         string                     `json:"name"`
	Description  string                     `json:"description"`
	TotalWeeks   *int                       `json:"total_weeks"`
	Status       CurriculumStatus           `json:"status"`
	ModulesCount int                        `json:"modules_count"`
	Modules      []CurriculumModuleResponse `json:"modules,omitempty"`
}

type CurriculumModuleResponse struct {
	ID           uuid.UUID        `json:"id"`
	CurriculumID uuid.UUID        `json:"curriculum_id"`
	Name         string           `json:"name"`
	ModuleType   ModuleType       `json:"module_type"`
	Description  string           `json:"description"`
	Position     int              `json:"position"`
	TotalDays    *int             `json:"total_days"`
	DayOffset    int              `json:"day_offset"`
	LessonsCount int              `json:"lessons_count"`
	Lessons      []LessonResponse `json:"lessons,omitempty"`
}

type LessonResponse struct {
	ID                 uuid.UUID              `json:"id"`
	ModuleID           uuid.UUID              `json:"module_id"`
	Title              string                 `json:"title"`
	LessonType         LessonType             `json:"lesson_type"`
	Position           int                    `json:"position"`
	ReleaseDay         int                    `json:"release_day"`
	Required           bool                   `json:"required"`
	ContentBlocksCount int                    `json:"content_blocks_count"`
	ContentBlocks      []ContentBlockResponse `json:"content_blocks,omitempty"`
}

type ContentBlockResponse struct {
	ID        uuid.UUID      `json:"id"`
	LessonID  uuid.UUID      `json:"lesson_id"`
	BlockType BlockType      `json:"block_type"`
	Position  int            `json:"position"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	BodyHTML  string         `json:"body_html,omitempty"`
	VideoURL  string         `json:"video_url"`
	Solution  *string        `json:"solution,omitempty"`
	Filename  string         `json:"filename"`
	Metadata  datatypes.JSON `json:"metadata"`
}

// NewCurriculumResponse はモジュールを読み込み済みならそれも含める
func NewCurriculumResponse(c *Curriculum, includeModules bool) CurriculumResponse {
	resp := CurriculumResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		TotalWeeks:   c.TotalWeeks,
		Status:       c.Status,
		ModulesCount: len(c.Modules),
	}
	if includeModules {
		resp.Modules = make([]CurriculumModuleResponse, 0, len(c.Modules))
		for i := range c.Modules {
			resp.Modules = append(resp.Modules, NewCurriculumModuleResponse(&c.Modules[i], true, false))
		}
	}
	return resp
}

func NewCurriculumModuleResponse(m *CurriculumModule, includeLessons, includeBlocks bool) CurriculumModuleResponse {
	resp := CurriculumModuleResponse{
		ID:           m.ID,
		CurriculumID: m.CurriculumID,
		Name:         m.Name,
		ModuleType:   m.ModuleType,
		Description:  m.Description,
		Position:     m.Position,
		TotalDays:    m.TotalDays,
		DayOffset:    m.DayOffset,
		LessonsCount: len(m.Lessons),
	}
	if includeLessons {
		resp.Lessons = make([]LessonResponse, 0, len(m.Lessons))
		for i := range m.Lessons {
			resp.Lessons = append(resp.Lessons, NewLessonResponse(&m.Lessons[i], includeBlocks))
		}
	}
	return resp
}

func NewLessonResponse(l *Lesson, includeBlocks bool) LessonResponse {
	resp := LessonResponse{
		ID:                 l.ID,
		ModuleID:           l.ModuleID,
		Title:              l.Title,
		LessonType:         l.LessonType,
		Position:           l.Position,
		ReleaseDay:         l.ReleaseDay,
		Required:           l.Required,
		ContentBlocksCount: len(l.ContentBlocks),
	}
	if includeBlocks {
		resp.ContentBlocks = make([]ContentBlockResponse, 0, len(l.ContentBlocks))
		for i := range l.ContentBlocks {
			resp.ContentBlocks = append(resp.ContentBlocks, NewContentBlockResponse(&l.ContentBlocks[i], true))
		}
	}
	return resp
}

func NewContentBlockResponse(cb *ContentBlock, includeSolution bool) ContentBlockResponse {
	resp := ContentBlockResponse{
		ID:        cb.ID,
		LessonID:  cb.LessonID,
		BlockType: cb.BlockType,
		Position:  cb.Position,
		Title:     cb.Title,
		Body:      cb.Body,
		VideoURL:  cb.VideoURL,
		Filename:  cb.Filename,
		Metadata:  cb.Metadata,
	}
	if includeSolution {
		solution := cb.Solution
		resp.Solution = &solution
	}
	return resp
}
