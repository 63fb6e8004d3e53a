// internal/model/user.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User は外部IdPで認証されたユーザー
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ExternalID     string     `gorm:"uniqueIndex;not null" json:"-"` // IdP の subject
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Role           Role       `gorm:"not null;index" json:"role"`
	GithubUsername string     `json:"github_username"`
	AvatarURL      string     `json:"avatar_url"`
	LastSignInAt   *time.Time `json:"last_sign_in_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Enrollments []Enrollment `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// FullName は姓名、どちらも無ければメールのローカル部
func (u *User) FullName() string {
	parts := make([]string, 0, 2)
	if u.FirstName != "" {
		parts = append(parts, u.FirstName)
	}
	if u.LastName != "" {
		parts = append(parts, u.LastName)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}

func (u *User) Principal() Principal {
	return Principal{UserID: u.ID, Role: u.Role}
}

// UserResponse はユーザー一覧・詳細用
type UserResponse struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	FullName       string     `json:"full_name"`
	Role           Role       `json:"role"`
	GithubUsername string     `json:"github_username"`
	AvatarURL      string     `json:"avatar_url"`
	LastSignInAt   *time.Time `json:"last_sign_in_at"`
	CreatedAt      time.Time  `json:"created_at"`
	IsAdmin        bool       `json:"is_admin"`
	IsStaff        bool       `json:"is_staff"`
}

func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       u.FullName(),
		Role:           u.Role,
		GithubUsername: u.GithubUsername,
		AvatarURL:      u.AvatarURL,
		LastSignInAt:   u.LastSignInAt,
		CreatedAt:      u.CreatedAt,
		IsAdmin:        u.Role.IsAdmin(),
		IsStaff:        u.Role.IsStaff(),
	}
}

// UserSummary はダッシュボードのヘッダー部分
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	AvatarURL string    `json:"avatar_url"`
	IsAdmin   bool      `json:"is_admin"`
	IsStaff   bool      `json:"is_staff"`
}

func NewUserSummary(u *User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		FullName:  u.FullName(),
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
		IsAdmin:   u.Role.IsAdmin(),
		IsStaff:   u.Role.IsStaff(),
	}
}

// UserEnrollmentSummary はプロフィールやセッション応答に含める受講情報
type UserEnrollmentSummary struct {
	ID             uuid.UUID        `json:"id"`
	CohortID       uuid.UUID        `json:"cohort_id"`
	CohortName     string           `json:"cohort_name"`
	CohortType     CohortType       `json:"cohort_type"`
	CohortStatus   CohortStatus     `json:"cohort_status"`
	StartDate      string           `json:"start_date"`
	CurriculumName string           `json:"curriculum_name,omitempty"`
	Status         EnrollmentStatus `json:"status"`
	EnrolledAt     time.Time        `json:"enrolled_at"`
	CompletedAt    *time.Time       `json:"completed_at"`
}

// UserDetailResponse は GET /users/{id}, /profile, POST /sessions の応答
type UserDetailResponse struct {
	User        UserResponse            `json:"user"`
	Enrollments []UserEnrollmentSummary `json:"enrollments"`
}

// UpdateProfileRequest は本人が変更できる項目
type UpdateProfileRequest struct {
	GithubUsername *string `json:"github_username" validate:"omitempty,max=39"`
	AvatarURL      *string `json:"avatar_url" validate:"omitempty,url"`
}

// UpdateUserRequest は管理者による更新
type UpdateUserRequest struct {
	FirstName      *string `json:"first_name" validate:"omitempty,max=100"`
	LastName       *string `json:"last_name" validate:"omitempty,max=100"`
	Role           *string `json:"role" validate:"omitempty,oneof=student instructor admin"`
	GithubUsername *string `json:"github_username" validate:"omitempty,max=39"`
	AvatarURL      *string `json:"avatar_url" validate:"omitempty,url"`
}

// NewUserDetailResponse は Enrollments.Cohort.Curriculum を読み込み済みの前提
func NewUserDetailResponse(u *User) UserDetailResponse {
	resp := UserDetailResponse{
		User:        NewUserResponse(u),
		Enrollments: make([]UserEnrollmentSummary, 0, len(u.Enrollments)),
	}
	for _, e := range u.Enrollments {
		summary := UserEnrollmentSummary{
			ID:          e.ID,
			CohortID:    e.CohortID,
			Status:      e.Status,
			EnrolledAt:  e.EnrolledAt,
			CompletedAt: e.CompletedAt,
		}
		if c := e.Cohort; c != nil {
			summary.CohortName = c.Name
			summary.CohortType = c.CohortType
			summary.CohortStatus = c.Status
			summary.StartDate = FormatDate(c.StartDate)
			if c.Curriculum != nil {
				summary.CurriculumName = c.Curriculum.Name
			}
		}
		resp.Enrollments = append(resp.Enrollments, summary)
	}
	return resp
}
