// internal/model/dashboard.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressSummary は completed / total と小数1桁の割合
type ProgressSummary struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type DashboardCohort struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	StartDate     string       `json:"start_date"`
	Status        CohortStatus `json:"status"`
	EnrolledCount *int         `json:"enrolled_count,omitempty"`
	ActiveCount   *int         `json:"active_count,omitempty"`
}

type DashboardLesson struct {
	ID                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	LessonType         LessonType `json:"lesson_type"`
	Position           int        `json:"position"`
	ReleaseDay         int        `json:"release_day"`
	Required           bool       `json:"required"`
	Available          bool       `json:"available"`
	UnlockDate         string     `json:"unlock_date"`
	TotalBlocks        int        `json:"total_blocks"`
	CompletedBlocks    int        `json:"completed_blocks"`
	ProgressPercentage float64    `json:"progress_percentage"`
	Completed          bool       `json:"completed"`
}

type DashboardModule struct {
	ID                 uuid.UUID         `json:"id"`
	Name               string            `json:"name"`
	ModuleType         ModuleType        `json:"module_type"`
	Position           int               `json:"position"`
	DayOffset          int               `json:"day_offset"`
	TotalBlocks        int               `json:"total_blocks"`
	CompletedBlocks    int               `json:"completed_blocks"`
	ProgressPercentage float64           `json:"progress_percentage"`
	Lessons            []DashboardLesson `json:"lessons"`
}

type ContinueLesson struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	ModuleID uuid.UUID `json:"module_id"`
}

// ActionItem は "R" 評価のまま再提出されていない提出
type ActionItem struct {
	Type              string     `json:"type"`
	SubmissionID      uuid.UUID  `json:"submission_id"`
	ContentBlockID    uuid.UUID  `json:"content_block_id"`
	LessonTitle       string     `json:"lesson_title"`
	ContentBlockTitle string     `json:"content_block_title"`
	GradedAt          *time.Time `json:"graded_at"`
}

// StudentDashboard は受講者向けダッシュボード
// 受講中のコホートが無い場合は Enrolled=false と User のみ
type StudentDashboard struct {
	Enrolled        bool              `json:"enrolled"`
	User            UserSummary       `json:"user"`
	Cohort          *DashboardCohort  `json:"cohort,omitempty"`
	OverallProgress *ProgressSummary  `json:"overall_progress,omitempty"`
	Modules         []DashboardModule `json:"modules"`
	ContinueLesson  *ContinueLesson   `json:"continue_lesson"`
	ActionItems     []ActionItem      `json:"action_items"`
}

type StaffDashboardStudent struct {
	UserID             uuid.UUID        `json:"user_id"`
	FullName           string           `json:"full_name"`
	Email              string           `json:"email"`
	GithubUsername     string           `json:"github_username"`
	ProgressPercentage float64          `json:"progress_percentage"`
	CompletedBlocks    int              `json:"completed_blocks"`
	TotalBlocks        int              `json:"total_blocks"`
	LastSignInAt       *time.Time       `json:"last_sign_in_at"`
	EnrollmentStatus   EnrollmentStatus `json:"enrollment_status"`
}

// StaffDashboard は講師・管理者向けダッシュボード
// 進行中のコホートが無い場合は Cohorts=[] のみ
type StaffDashboard struct {
	User          UserSummary             `json:"user"`
	Cohort        *DashboardCohort        `json:"cohort,omitempty"`
	Cohorts       *[]DashboardCohort      `json:"cohorts,omitempty"`
	Students      []StaffDashboardStudent `json:"students,omitempty"`
	UngradedCount *int64                  `json:"ungraded_count,omitempty"`
}

// LessonDetailResponse は GET /lessons/{id}
type LessonDetailResponse struct {
	LessonResponse
	Available     *bool               `json:"available,omitempty"`
	UnlockDate    *string             `json:"unlock_date,omitempty"`
	ContentBlocks []LessonDetailBlock `json:"content_blocks"`
	PrevLesson    *LessonLink         `json:"prev_lesson"`
	NextLesson    *LessonLink         `json:"next_lesson"`
}

type LessonDetailBlock struct {
	ContentBlockResponse
	Progress    *ProgressResponse   `json:"progress,omitempty"`
	Submissions []SubmissionAttempt `json:"submissions,omitempty"`
}

type LessonLink struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}
