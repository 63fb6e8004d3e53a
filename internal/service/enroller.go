package service

import (
	"context"

	"cohort_lms/internal/model"
	"cohort_lms/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// enroller は受講登録と、カリキュラムの全モジュール分の ModuleAssignment を同じトランザクションで作る
type enroller struct {
	enrollmentRepo repository.EnrollmentRepository
	assignmentRepo repository.ModuleAssignmentRepository
	moduleRepo     repository.ModuleRepository
}

func (e *enroller) enroll(ctx context.Context, tx *gorm.DB, userID uuid.UUID, cohort *model.Cohort) (*model.Enrollment, error) {
	modules, err := e.moduleRepo.ListByCurriculum(ctx, tx, cohort.CurriculumID)
	if err != nil {
		return nil, err
	}

	enrollment := &model.Enrollment{
		ID:       uuid.New(),
		UserID:   userID,
		CohortID: cohort.ID,
		Status:   model.EnrollmentActive,
	}
	if err := e.enrollmentRepo.Create(ctx, tx, enrollment); err != nil {
		return nil, err
	}

	assignments := make([]*model.ModuleAssignment, 0, len(modules))
	for _, m := range modules {
		assignments = append(assignments, &model.ModuleAssignment{
			ID:           uuid.New(),
			EnrollmentID: enrollment.ID,
			ModuleID:     m.ID,
		})
	}
	if err := e.assignmentRepo.CreateBatch(ctx, tx, assignments); err != nil {
		return nil, err
	}
	for _, a := range assignments {
		enrollment.ModuleAssignments = append(enrollment.ModuleAssignments, *a)
	}
	return enrollment, nil
}
