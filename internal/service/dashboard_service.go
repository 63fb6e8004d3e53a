//go:generate mockery --name DashboardService --output ./mocks --outpkg mocks --case=underscore
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

// DashboardService は GET /dashboard の集計。どちらを呼ぶかはハンドラがロールで決める
type DashboardService interface {
	StudentDashboard(ctx context.Context, principal model.Principal) (*model.StudentDashboard, error)
	StaffDashboard(ctx context.Context, principal model.Principal) (*model.StaffDashboard, error)
}

type dashboardService struct {
	db             *gorm.DB
	userRepo       repository.UserRepository
	enrollmentRepo repository.EnrollmentRepository
	cohortRepo     repository.CohortRepository
	curriculumRepo repository.CurriculumRepository
	progressRepo   repository.ProgressRepository
	submissionRepo repository.SubmissionRepository
	clock          Clock
}

func NewDashboardService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	enrollmentRepo repository.EnrollmentRepository,
	cohortRepo repository.CohortRepository,
	curriculumRepo repository.CurriculumRepository,
	progressRepo repository.ProgressRepository,
	submissionRepo repository.SubmissionRepository,
	clock Clock,
) DashboardService {
	return &dashboardService{
		db:             db,
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		cohortRepo:     cohortRepo,
		curriculumRepo: curriculumRepo,
		progressRepo:   progressRepo,
		submissionRepo: submissionRepo,
		clock:          clock,
	}
}

func (s *dashboardService) StudentDashboard(ctx context.Context, principal model.Principal) (*model.StudentDashboard, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByID(ctx, s.db, principal.UserID)
	if err != nil {
		return nil, repoError(err, "User")
	}

	enrollment, err := s.enrollmentRepo.FindActiveByUser(ctx, s.db, user.ID)
	if errors.Is(err, model.ErrNotFound) {
		dashboard := NotEnrolledDashboard(user)
		return &dashboard, nil
	}
	if err != nil {
		return nil, internalError(err)
	}
	if enrollment.Cohort == nil {
		logger.Error("Enrollment without cohort", "enrollment_id", enrollment.ID.String())
		return nil, internalError(errors.New("enrollment cohort not loaded"))
	}

	curriculum, err := s.curriculumRepo.FindTree(ctx, s.db, enrollment.Cohort.CurriculumID)
	if err != nil {
		return nil, repoError(err, "Curriculum")
	}
	progress, err := s.progressRepo.ListByUser(ctx, s.db, user.ID, model.ProgressFilter{})
	if err != nil {
		return nil, internalError(err)
	}
	submissions, err := s.submissionRepo.ListByUser(ctx, s.db, user.ID)
	if err != nil {
		return nil, internalError(err)
	}

	dashboard := BuildStudentDashboard(StudentDashboardInput{
		User:        user,
		Enrollment:  enrollment,
		Curriculum:  curriculum,
		Progress:    progress,
		Submissions: submissions,
		Today:       Today(s.clock),
	})
	return &dashboard, nil
}

func (s *dashboardService) StaffDashboard(ctx context.Context, principal model.Principal) (*model.StaffDashboard, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, principal.UserID)
	if err != nil {
		return nil, repoError(err, "User")
	}
	dashboard := &model.StaffDashboard{User: model.NewUserSummary(user)}

	cohort, err := s.cohortRepo.FindFirstActive(ctx, s.db)
	if errors.Is(err, model.ErrNotFound) {
		dashboard.Cohorts = &[]model.DashboardCohort{}
		return dashboard, nil
	}
	if err != nil {
		return nil, internalError(err)
	}

	active := model.EnrollmentActive
	enrollments, err := s.enrollmentRepo.ListByCohort(ctx, s.db, cohort.ID, &active)
	if err != nil {
		return nil, internalError(err)
	}
	enrolledCount, err := s.enrollmentRepo.CountByCohort(ctx, s.db, cohort.ID, nil)
	if err != nil {
		return nil, internalError(err)
	}

	curriculum, err := s.curriculumRepo.FindTree(ctx, s.db, cohort.CurriculumID)
	if err != nil {
		return nil, repoError(err, "Curriculum")
	}
	blockIDs := CurriculumBlockIDs(curriculum)

	userIDs := make([]uuid.UUID, 0, len(enrollments))
	for _, e := range enrollments {
		userIDs = append(userIDs, e.UserID)
	}
	completed, err := s.progressRepo.CountCompletedByUsers(ctx, s.db, userIDs, blockIDs)
	if err != nil {
		return nil, internalError(err)
	}
	// 未採点数は受講状態を問わずコホート全員分
	all, err := s.enrollmentRepo.ListByCohort(ctx, s.db, cohort.ID, nil)
	if err != nil {
		return nil, internalError(err)
	}
	memberIDs := make([]uuid.UUID, 0, len(all))
	for _, e := range all {
		memberIDs = append(memberIDs, e.UserID)
	}
	ungraded, err := s.submissionRepo.CountUngradedByUsers(ctx, s.db, memberIDs)
	if err != nil {
		return nil, internalError(err)
	}

	enrolled := int(enrolledCount)
	activeCount := len(enrollments)
	dashboard.Cohort = &model.DashboardCohort{
		ID:            cohort.ID,
		Name:          cohort.Name,
		StartDate:     model.FormatDate(cohort.StartDate),
		Status:        cohort.Status,
		EnrolledCount: &enrolled,
		ActiveCount:   &activeCount,
	}
	dashboard.Students = StaffStudentRows(enrollments, completed, len(blockIDs))
	dashboard.UngradedCount = &ungraded
	return dashboard, nil
}
