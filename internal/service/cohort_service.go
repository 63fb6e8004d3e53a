//go:generate mockery --name CohortService --output ./mocks --outpkg mocks --case=underscore
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

// CohortService はコホート・受講登録・モジュール解放日の上書きを扱う
type CohortService interface {
	ListCohorts(ctx context.Context) ([]model.CohortResponse, error)
	// GetCohort は受講者一覧を含める
	GetCohort(ctx context.Context, cohortID uuid.UUID) (*model.CohortResponse, error)
	CreateCohort(ctx context.Context, req *model.CreateCohortRequest) (*model.CohortResponse, error)
	UpdateCohort(ctx context.Context, cohortID uuid.UUID, req *model.UpdateCohortRequest) (*model.CohortResponse, error)
	DeleteCohort(ctx context.Context, cohortID uuid.UUID) error

	ListEnrollments(ctx context.Context, cohortID uuid.UUID) ([]model.EnrollmentResponse, error)
	// CreateEnrollment は受講登録とカリキュラムの全モジュール分の割り当てを同じトランザクションで作る
	CreateEnrollment(ctx context.Context, cohortID uuid.UUID, req *model.CreateEnrollmentRequest) (*model.EnrollmentResponse, error)
	// GetEnrollment は進捗の集計と割り当てを含める
	GetEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*model.EnrollmentResponse, error)
	UpdateEnrollment(ctx context.Context, enrollmentID uuid.UUID, req *model.UpdateEnrollmentRequest) (*model.EnrollmentResponse, error)
	DeleteEnrollment(ctx context.Context, enrollmentID uuid.UUID) error
	// SetModuleOverride は unlock_date_override を設定または解除する
	SetModuleOverride(ctx context.Context, enrollmentID, moduleID uuid.UUID, req *model.SetUnlockOverrideRequest) (*model.ModuleAssignmentResponse, error)
}

type cohortService struct {
	db             *gorm.DB
	cohortRepo     repository.CohortRepository
	curriculumRepo repository.CurriculumRepository
	userRepo       repository.UserRepository
	enrollmentRepo repository.EnrollmentRepository
	assignmentRepo repository.ModuleAssignmentRepository
	moduleRepo     repository.ModuleRepository
	progressRepo   repository.ProgressRepository
	enroller       *enroller
	clock          Clock
}

func NewCohortService(
	db *gorm.DB,
	cohortRepo repository.CohortRepository,
	curriculumRepo repository.CurriculumRepository,
	userRepo repository.UserRepository,
	enrollmentRepo repository.EnrollmentRepository,
	assignmentRepo repository.ModuleAssignmentRepository,
	moduleRepo repository.ModuleRepository,
	progressRepo repository.ProgressRepository,
	clock Clock,
) CohortService {
	return &cohortService{
		db:             db,
		cohortRepo:     cohortRepo,
		curriculumRepo: curriculumRepo,
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		assignmentRepo: assignmentRepo,
		moduleRepo:     moduleRepo,
		progressRepo:   progressRepo,
		enroller: &enroller{
			enrollmentRepo: enrollmentRepo,
			assignmentRepo: assignmentRepo,
			moduleRepo:     moduleRepo,
		},
		clock: clock,
	}
}

func (s *cohortService) ListCohorts(ctx context.Context) ([]model.CohortResponse, error) {
	cohorts, err := s.cohortRepo.List(ctx, s.db)
	if err != nil {
		return nil, internalError(err)
	}
	resp := make([]model.CohortResponse, 0, len(cohorts))
	for _, c := range cohorts {
		resp = append(resp, model.NewCohortResponse(c, false))
	}
	return resp, nil
}

func (s *cohortService) GetCohort(ctx context.Context, cohortID uuid.UUID) (*model.CohortResponse, error) {
	cohort, err := s.cohortRepo.FindByID(ctx, s.db, cohortID)
	if err != nil {
		return nil, repoError(err, "Cohort")
	}
	resp := model.NewCohortResponse(cohort, true)
	return &resp, nil
}

func (s *cohortService) CreateCohort(ctx context.Context, req *model.CreateCohortRequest) (*model.CohortResponse, error) {
	curriculumID, err := uuid.Parse(req.CurriculumID)
	if err != nil {
		return nil, validationError("curriculum_id must be a valid UUID", "curriculum_id")
	}
	startDate, err := model.ParseDate(req.StartDate)
	if err != nil {
		return nil, validationError(err.Error(), "start_date")
	}

	cohort := &model.Cohort{
		ID:                     uuid.New(),
		CurriculumID:           curriculumID,
		Name:                   req.Name,
		StartDate:              startDate,
		GithubOrganizationName: req.GithubOrganizationName,
		RepositoryName:         req.RepositoryName,
		RequiresGithub:         req.RequiresGithub,
		Settings:               emptyJSONIfNil(req.Settings),
	}
	if req.EndDate != nil {
		endDate, err := model.ParseDate(*req.EndDate)
		if err != nil {
			return nil, validationError(err.Error(), "end_date")
		}
		cohort.EndDate = &endDate
	}
	if req.CohortType != "" {
		if cohort.CohortType, err = model.ParseCohortType(req.CohortType); err != nil {
			return nil, validationError(err.Error(), "cohort_type")
		}
	}
	if req.Status != "" {
		if cohort.Status, err = model.ParseCohortStatus(req.Status); err != nil {
			return nil, validationError(err.Error(), "status")
		}
	}

	curriculum, err := s.curriculumRepo.FindByID(ctx, s.db, curriculumID)
	if err != nil {
		return nil, repoError(err, "Curriculum")
	}
	if err := s.cohortRepo.Create(ctx, s.db, cohort); err != nil {
		return nil, repoError(err, "Cohort")
	}
	cohort.Curriculum = curriculum

	middleware.GetLogger(ctx).Info("Cohort created", "cohort_id", cohort.ID.String(), "curriculum_id", curriculumID.String())
	resp := model.NewCohortResponse(cohort, false)
	return &resp, nil
}

func (s *cohortService) UpdateCohort(ctx context.Context, cohortID uuid.UUID, req *model.UpdateCohortRequest) (*model.CohortResponse, error) {
	cohort, err := s.cohortRepo.FindByID(ctx, s.db, cohortID)
	if err != nil {
		return nil, repoError(err, "Cohort")
	}

	if req.Name != nil {
		cohort.Name = *req.Name
	}
	if req.CohortType != nil {
		if cohort.CohortType, err = model.ParseCohortType(*req.CohortType); err != nil {
			return nil, validationError(err.Error(), "cohort_type")
		}
	}
	if req.CurriculumID != nil {
		curriculumID, err := uuid.Parse(*req.CurriculumID)
		if err != nil {
			return nil, validationError("curriculum_id must be a valid UUID", "curriculum_id")
		}
		curriculum, err := s.curriculumRepo.FindByID(ctx, s.db, curriculumID)
		if err != nil {
			return nil, repoError(err, "Curriculum")
		}
		cohort.CurriculumID = curriculumID
		cohort.Curriculum = curriculum
	}
	if req.StartDate != nil {
		if cohort.StartDate, err = model.ParseDate(*req.StartDate); err != nil {
			return nil, validationError(err.Error(), "start_date")
		}
	}
	if req.EndDate != nil {
		endDate, err := model.ParseDate(*req.EndDate)
		if err != nil {
			return nil, validationError(err.Error(), "end_date")
		}
		cohort.EndDate = &endDate
	}
	if req.GithubOrganizationName != nil {
		cohort.GithubOrganizationName = *req.GithubOrganizationName
	}
	if req.RepositoryName != nil {
		cohort.RepositoryName = *req.RepositoryName
	}
	if req.RequiresGithub != nil {
		cohort.RequiresGithub = *req.RequiresGithub
	}
	if req.Status != nil {
		if cohort.Status, err = model.ParseCohortStatus(*req.Status); err != nil {
			return nil, validationError(err.Error(), "status")
		}
	}
	if req.Settings != nil {
		cohort.Settings = emptyJSONIfNil(*req.Settings)
	}

	if err := s.cohortRepo.Update(ctx, s.db, cohort); err != nil {
		return nil, repoError(err, "Cohort")
	}
	resp := model.NewCohortResponse(cohort, false)
	return &resp, nil
}

func (s *cohortService) DeleteCohort(ctx context.Context, cohortID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.cohortRepo.Delete(ctx, tx, cohortID)
	})
	if err != nil {
		return repoError(err, "Cohort")
	}
	middleware.GetLogger(ctx).Info("Cohort deleted", "cohort_id", cohortID.String())
	return nil
}

func (s *cohortService) ListEnrollments(ctx context.Context, cohortID uuid.UUID) ([]model.EnrollmentResponse, error) {
	if _, err := s.cohortRepo.FindByID(ctx, s.db, cohortID); err != nil {
		return nil, repoError(err, "Cohort")
	}
	enrollments, err := s.enrollmentRepo.ListByCohort(ctx, s.db, cohortID, nil)
	if err != nil {
		return nil, internalError(err)
	}
	resp := make([]model.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		resp = append(resp, model.NewEnrollmentResponse(e))
	}
	return resp, nil
}

func (s *cohortService) CreateEnrollment(ctx context.Context, cohortID uuid.UUID, req *model.CreateEnrollmentRequest) (*model.EnrollmentResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, validationError("user_id must be a valid UUID", "user_id")
	}

	var enrollment *model.Enrollment
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cohort, err := s.cohortRepo.FindByID(ctx, tx, cohortID)
		if err != nil {
			return repoError(err, "Cohort")
		}
		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			return repoError(err, "User")
		}
		enrollment, err = s.enroller.enroll(ctx, tx, user.ID, cohort)
		if err != nil {
			return err
		}
		enrollment.User = user
		return nil
	})
	if err != nil {
		return nil, repoError(err, "Enrollment")
	}

	middleware.GetLogger(ctx).Info(
		"Enrollment created",
		"enrollment_id", enrollment.ID.String(),
		"cohort_id", cohortID.String(),
		"user_id", userID.String(),
		"module_assignments", len(enrollment.ModuleAssignments),
	)
	resp := model.NewEnrollmentResponse(enrollment)
	return &resp, nil
}

func (s *cohortService) GetEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*model.EnrollmentResponse, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, s.db, enrollmentID)
	if err != nil {
		return nil, repoError(err, "Enrollment")
	}
	resp := model.NewEnrollmentResponse(enrollment)

	if enrollment.Cohort != nil {
		curriculum, err := s.curriculumRepo.FindTree(ctx, s.db, enrollment.Cohort.CurriculumID)
		if err != nil {
			return nil, repoError(err, "Curriculum")
		}
		blockIDs := CurriculumBlockIDs(curriculum)
		counts, err := s.progressRepo.CountCompletedByUsers(ctx, s.db, []uuid.UUID{enrollment.UserID}, blockIDs)
		if err != nil {
			return nil, internalError(err)
		}
		total := len(blockIDs)
		completed := counts[enrollment.UserID]
		percentage := Percentage(completed, total)
		resp.TotalBlocks = &total
		resp.CompletedBlocks = &completed
		resp.ProgressPercentage = &percentage
	}

	resp.ModuleAssignments = make([]model.ModuleAssignmentResponse, 0, len(enrollment.ModuleAssignments))
	for i := range enrollment.ModuleAssignments {
		resp.ModuleAssignments = append(resp.ModuleAssignments, model.NewModuleAssignmentResponse(&enrollment.ModuleAssignments[i]))
	}
	return &resp, nil
}

func (s *cohortService) UpdateEnrollment(ctx context.Context, enrollmentID uuid.UUID, req *model.UpdateEnrollmentRequest) (*model.EnrollmentResponse, error) {
	status, err := model.ParseEnrollmentStatus(req.Status)
	if err != nil {
		return nil, validationError(err.Error(), "status")
	}

	enrollment, err := s.enrollmentRepo.FindByID(ctx, s.db, enrollmentID)
	if err != nil {
		return nil, repoError(err, "Enrollment")
	}

	// completed になった時点の日時を残す
	switch {
	case status == model.EnrollmentCompleted && enrollment.CompletedAt == nil:
		now := s.clock.Now()
		enrollment.CompletedAt = &now
	case status != model.EnrollmentCompleted:
		enrollment.CompletedAt = nil
	}
	enrollment.Status = status

	if err := s.enrollmentRepo.Update(ctx, s.db, enrollment); err != nil {
		return nil, repoError(err, "Enrollment")
	}
	middleware.GetLogger(ctx).Info("Enrollment updated", "enrollment_id", enrollmentID.String(), "status", status.String())
	resp := model.NewEnrollmentResponse(enrollment)
	return &resp, nil
}

func (s *cohortService) DeleteEnrollment(ctx context.Context, enrollmentID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.enrollmentRepo.Delete(ctx, tx, enrollmentID)
	})
	if err != nil {
		return repoError(err, "Enrollment")
	}
	middleware.GetLogger(ctx).Info("Enrollment deleted", "enrollment_id", enrollmentID.String())
	return nil
}

func (s *cohortService) SetModuleOverride(ctx context.Context, enrollmentID, moduleID uuid.UUID, req *model.SetUnlockOverrideRequest) (*model.ModuleAssignmentResponse, error) {
	var assignment *model.ModuleAssignment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollment, err := s.enrollmentRepo.FindByID(ctx, tx, enrollmentID)
		if err != nil {
			return repoError(err, "Enrollment")
		}

		assignment, err = s.assignmentRepo.FindByEnrollmentAndModule(ctx, tx, enrollmentID, moduleID)
		if errors.Is(err, model.ErrNotFound) {
			// 登録後に追加されたモジュールは、同じカリキュラムのものだけ割り当てを作る
			module, err := s.moduleRepo.FindByID(ctx, tx, moduleID)
			if err != nil {
				return repoError(err, "Module")
			}
			if enrollment.Cohort == nil || module.CurriculumID != enrollment.Cohort.CurriculumID {
				return invalidInputError("Module does not belong to the enrollment's curriculum", "module_id")
			}
			assignment = &model.ModuleAssignment{
				ID:           uuid.New(),
				EnrollmentID: enrollmentID,
				ModuleID:     moduleID,
			}
		} else if err != nil {
			return err
		}

		if req.UnlockDateOverride != nil {
			override, err := model.ParseDate(*req.UnlockDateOverride)
			if err != nil {
				return validationError(err.Error(), "unlock_date_override")
			}
			assignment.UnlockDateOverride = &override
		} else {
			assignment.UnlockDateOverride = nil
		}
		if req.Unlocked != nil {
			assignment.Unlocked = *req.Unlocked
		}
		return s.assignmentRepo.Save(ctx, tx, assignment)
	})
	if err != nil {
		return nil, repoError(err, "Module assignment")
	}

	resp := model.NewModuleAssignmentResponse(assignment)
	middleware.GetLogger(ctx).Info(
		"Module unlock override updated",
		"enrollment_id", enrollmentID.String(),
		"module_id", moduleID.String(),
		"cleared", resp.UnlockDateOverride == nil,
	)
	return &resp, nil
}
