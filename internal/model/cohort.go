// internal/model/cohort.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Cohort はカリキュラムを開始日に合わせて実施する単位
type Cohort struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CurriculumID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"curriculum_id"`
	Name                   string          `gorm:"not null" json:"name"`
	CohortType             CohortType      `gorm:"not null" json:"cohort_type"`
	StartDate              datatypes.Date  `gorm:"not null" json:"start_date"`
	EndDate                *datatypes.Date `json:"end_date"`
	GithubOrganizationName string          `json:"github_organization_name"`
	RepositoryName         string          `json:"repository_name"`
	RequiresGithub         bool            `gorm:"not null" json:"requires_github"`
	Status                 CohortStatus    `gorm:"not null;index" json:"status"`
	Settings               datatypes.JSON  `json:"settings"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`

	Curriculum  *Curriculum  `gorm:"foreignKey:CurriculumID" json:"-"`
	Enrollments []Enrollment `gorm:"foreignKey:CohortID" json:"-"`
}

func (Cohort) TableName() string {
	return "cohorts"
}

// Enrollment はユーザーとコホートの紐付け ((user_id, cohort_id) は一意)
type Enrollment struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_user_cohort" json:"user_id"`
	CohortID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_user_cohort;index" json:"cohort_id"`
	Status      EnrollmentStatus `gorm:"not null;index" json:"status"`
	EnrolledAt  time.Time        `json:"enrolled_at"`
	CompletedAt *time.Time       `json:"completed_at"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	User              *User              `gorm:"foreignKey:UserID" json:"-"`
	Cohort            *Cohort            `gorm:"foreignKey:CohortID" json:"-"`
	ModuleAssignments []ModuleAssignment `gorm:"foreignKey:EnrollmentID" json:"-"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.EnrolledAt.IsZero() {
		e.EnrolledAt = time.Now()
	}
	return nil
}

// ModuleAssignment は受講者ごとのモジュール解放日の上書き
// UnlockDateOverride があれば計算上の解放日を置き換える (加算ではない)
type ModuleAssignment struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	EnrollmentID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_assignments_enrollment_module" json:"enrollment_id"`
	ModuleID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_assignments_enrollment_module;index" json:"module_id"`
	UnlockDateOverride *datatypes.Date `json:"unlock_date_override"`
	Unlocked           bool            `gorm:"not null" json:"unlocked"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (ModuleAssignment) TableName() string {
	return "module_assignments"
}

// --- リクエスト ---

type CreateCohortRequest struct {
	Name                   string         `json:"name" validate:"required,max=200"`
	CohortType             string         `json:"cohort_type" validate:"omitempty,oneof=bootcamp workshop alumni custom"`
	CurriculumID           string         `json:"curriculum_id" validate:"required,uuid"`
	StartDate              string         `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate                *string        `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	GithubOrganizationName string         `json:"github_organization_name" validate:"max=100"`
	RepositoryName         string         `json:"repository_name" validate:"max=100"`
	RequiresGithub         bool           `json:"requires_github"`
	Status                 string         `json:"status" validate:"omitempty,oneof=upcoming active completed archived"`
	Settings               datatypes.JSON `json:"settings"`
}

type UpdateCohortRequest struct {
	Name                   *string         `json:"name" validate:"omitempty,min=1,max=200"`
	CohortType             *string         `json:"cohort_type" validate:"omitempty,oneof=bootcamp workshop alumni custom"`
	CurriculumID           *string         `json:"curriculum_id" validate:"omitempty,uuid"`
	StartDate              *string         `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate                *string         `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	GithubOrganizationName *string         `json:"github_organization_name" validate:"omitempty,max=100"`
	RepositoryName         *string         `json:"repository_name" validate:"omitempty,max=100"`
	RequiresGithub         *bool           `json:"requires_github"`
	Status                 *string         `json:"status" validate:"omitempty,oneof=upcoming active completed archived"`
	Settings               *datatypes.JSON `json:"settings"`
}

type CreateEnrollmentRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

type UpdateEnrollmentRequest struct {
	Status string `json:"status" validate:"required,oneof=active paused dropped completed"`
}

// SetUnlockOverrideRequest は unlock_date_override を設定する。null で解除
type SetUnlockOverrideRequest struct {
	UnlockDateOverride *string `json:"unlock_date_override" validate:"omitempty,datetime=2006-01-02"`
	Unlocked           *bool   `json:"unlocked"`
}

// --- レスポンス ---

type CohortResponse struct {
	ID                     uuid.UUID              `json:"id"`
	Name                   string                 `json:"name"`
	CohortType             CohortType             `json:"cohort_type"`
	CurriculumID           uuid.UUID              `json:"curriculum_id"`
	CurriculumName         string                 `json:"curriculum_name"`
	StartDate              string                 `json:"start_date"`
	EndDate                *string                `json:"end_date"`
	GithubOrganizationName string                 `json:"github_organization_name"`
	RepositoryName         string                 `json:"repository_name"`
	RequiresGithub         bool                   `json:"requires_github"`
	Status                 CohortStatus           `json:"status"`
	Settings               datatypes.JSON         `json:"settings"`
	EnrolledCount          int                    `json:"enrolled_count"`
	ActiveCount            int                    `json:"active_count"`
	Students               []CohortStudentSummary `json:"students,omitempty"`
}

type CohortStudentSummary struct {
	EnrollmentID   uuid.UUID        `json:"enrollment_id"`
	UserID         uuid.UUID        `json:"user_id"`
	FullName       string           `json:"full_name"`
	Email          string           `json:"email"`
	GithubUsername string           `json:"github_username"`
	Status         EnrollmentStatus `json:"status"`
	EnrolledAt     time.Time        `json:"enrolled_at"`
	LastSignInAt   *time.Time       `json:"last_sign_in_at"`
}

// NewCohortResponse は Curriculum と Enrollments(.User) を読み込み済みの前提
func NewCohortResponse(c *Cohort, includeStudents bool) CohortResponse {
	resp := CohortResponse{
		ID:                     c.ID,
		Name:                   c.Name,
		CohortType:             c.CohortType,
		CurriculumID:           c.CurriculumID,
		StartDate:              FormatDate(c.StartDate),
		EndDate:                FormatDatePtr(c.EndDate),
		GithubOrganizationName: c.GithubOrganizationName,
		RepositoryName:         c.RepositoryName,
		RequiresGithub:         c.RequiresGithub,
		Status:                 c.Status,
		Settings:               c.Settings,
		EnrolledCount:          len(c.Enrollments),
	}
	if c.Curriculum != nil {
		resp.CurriculumName = c.Curriculum.Name
	}
	for _, e := range c.Enrollments {
		if e.Status == EnrollmentActive {
			resp.ActiveCount++
		}
	}
	if includeStudents {
		resp.Students = make([]CohortStudentSummary, 0, len(c.Enrollments))
		for _, e := range c.Enrollments {
			if e.User == nil {
				continue
			}
			resp.Students = append(resp.Students, CohortStudentSummary{
				EnrollmentID:   e.ID,
				UserID:         e.User.ID,
				FullName:       e.User.FullName(),
				Email:          e.User.Email,
				GithubUsername: e.User.GithubUsername,
				Status:         e.Status,
				EnrolledAt:     e.EnrolledAt,
				LastSignInAt:   e.User.LastSignInAt,
			})
		}
	}
	return resp
}

type EnrollmentResponse struct {
	ID                 uuid.UUID                  `json:"id"`
	UserID             uuid.UUID                  `json:"user_id"`
	CohortID           uuid.UUID                  `json:"cohort_id"`
	UserName           string                     `json:"user_name"`
	UserEmail          string                     `json:"user_email"`
	Status             EnrollmentStatus           `json:"status"`
	EnrolledAt         time.Time                  `json:"enrolled_at"`
	CompletedAt        *time.Time                 `json:"completed_at"`
	TotalBlocks        *int                       `json:"total_blocks,omitempty"`
	CompletedBlocks    *int                       `json:"completed_blocks,omitempty"`
	ProgressPercentage *float64                   `json:"progress_percentage,omitempty"`
	ModuleAssignments  []ModuleAssignmentResponse `json:"module_assignments,omitempty"`
}

type ModuleAssignmentResponse struct {
	ID                 uuid.UUID `json:"id"`
	ModuleID           uuid.UUID `json:"module_id"`
	UnlockDateOverride *string   `json:"unlock_date_override"`
	Unlocked           bool      `json:"unlocked"`
}

func NewModuleAssignmentResponse(a *ModuleAssignment) ModuleAssignmentResponse {
	return ModuleAssignmentResponse{
		ID:                 a.ID,
		ModuleID:           a.ModuleID,
		UnlockDateOverride: FormatDatePtr(a.UnlockDateOverride),
		Unlocked:           a.Unlocked,
	}
}

func NewEnrollmentResponse(e *Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		CohortID:    e.CohortID,
		Status:      e.Status,
		EnrolledAt:  e.EnrolledAt,
		CompletedAt: e.CompletedAt,
	}
	if e.User != nil {
		resp.UserName = e.User.FullName()
		resp.UserEmail = e.User.Email
	}
	return resp
}
