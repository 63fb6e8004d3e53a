package service

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"cohort_lms/internal/model"
	"cohort_lms/internal/repository"
	"cohort_lms/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardServiceForTest(db *gorm.DB, today string) DashboardService {
	at, _ := time.Parse(model.DateLayout, today)
	return NewDashboardService(
		db,
		repository.NewGormUserRepository(),
		repository.NewGormEnrollmentRepository(),
		repository.NewGormCohortRepository(),
		repository.NewGormCurriculumRepository(),
		repository.NewGormProgressRepository(),
		repository.NewGormSubmissionRepository(),
		FixedClock{At: at.Add(9 * time.Hour)},
	)
}

func Test_dashboardService_StudentDashboard(t *testing.T) {
	ctx := testContext()

	t.Run("正常系: 進捗・解放状況・アクションを集計する", func(t *testing.T) {
		db := newTestDB(t)
		f := seedCourse(t, db)
		submissions := newSubmissionServiceForTest(db, nil)
		staff := f.Instructor.Principal()

		// ブロック 1, 2, 8 を完了、ブロック 3 は R
		for _, i := range []int{0, 1, 7} {
			require.NoError(t, db.Create(&model.Progress{
				ID: uuid.New(), UserID: f.Student.ID, ContentBlockID: f.Blocks[i].ID, Status: model.ProgressCompleted,
			}).Error)
		}
		sub, err := submissions.Submit(ctx, f.Student.Principal(), &model.CreateSubmissionRequest{ContentBlockID: f.Blocks[2].ID.String()})
		require.NoError(t, err)
		_, err = submissions.Grade(ctx, staff, sub.ID, &model.GradeSubmissionRequest{Grade: "R", Feedback: "Try again"})
		require.NoError(t, err)

		svc := newDashboardServiceForTest(db, "2026-03-03")
		got, err := svc.StudentDashboard(ctx, f.Student.Principal())
		require.NoError(t, err)

		assert.True(t, got.Enrolled)
		assert.Equal(t, "Cohort 3", got.Cohort.Name)
		assert.Equal(t, model.ProgressSummary{Completed: 3, Total: 8, Percentage: 37.5}, *got.OverallProgress)
		require.Len(t, got.Modules, 2)
		assert.True(t, got.Modules[0].Lessons[0].Completed)
		assert.True(t, got.Modules[0].Lessons[1].Available)
		assert.False(t, got.Modules[1].Lessons[0].Available)

		require.NotNil(t, got.ContinueLesson)
		assert.Equal(t, f.Curriculum.Modules[0].Lessons[1].ID, got.ContinueLesson.ID)

		require.Len(t, got.ActionItems, 1)
		assert.Equal(t, sub.ID, got.ActionItems[0].SubmissionID)
	})

	t.Run("正常系: 受講登録が無ければ enrolled=false", func(t *testing.T) {
		db := newTestDB(t)
		f := seedCourse(t, db)

		svc := newDashboardServiceForTest(db, "2026-03-03")
		got, err := svc.StudentDashboard(ctx, f.Instructor.Principal())
		require.NoError(t, err)
		assert.False(t, got.Enrolled)
		assert.Equal(t, "Ivy", got.User.FullName)
		assert.Nil(t, got.OverallProgress)
	})

	t.Run("正常系: active 以外の受講登録は対象外", func(t *testing.T) {
		db := newTestDB(t)
		f := seedCourse(t, db)
		require.NoError(t, db.Model(f.Enrollment).Update("status", model.EnrollmentCompleted).Error)

		svc := newDashboardServiceForTest(db, "2026-03-03")
		got, err := svc.StudentDashboard(ctx, f.Student.Principal())
		require.NoError(t, err)
		assert.False(t, got.Enrolled)
	})

	t.Run("異常系: 受講登録の取得に失敗したら 500", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		enrollmentRepo := mocks.NewEnrollmentRepository(t)
		user := &model.User{ID: uuid.New(), Email: "sam@example.com"}
		userRepo.On("FindByID", mock.Anything, mock.Anything, user.ID).Return(user, nil).Once()
		enrollmentRepo.On("FindActiveByUser", mock.Anything, mock.Anything, user.ID).Return(nil, errors.New("timeout")).Once()

		svc := NewDashboardService(nil, userRepo, enrollmentRepo, mocks.NewCohortRepository(t), mocks.NewCurriculumRepository(t),
			mocks.NewProgressRepository(t), mocks.NewSubmissionRepository(t), SystemClock{})
		_, err := svc.StudentDashboard(ctx, user.Principal())
		assertStatus(t, http.StatusInternalServerError, err)
	})
}

func Test_dashboardService_StaffDashboard(t *testing.T) {
	ctx := testContext()

	t.Run("正常系: 進行中のコホートの受講者を進捗順に並べる", func(t *testing.T) {
		db := newTestDB(t)
		f := seedCourse(t, db)

		// 2人目の受講者 (進捗 4/8) と、paused の受講者
		second := &model.User{ID: uuid.New(), ExternalID: "sub-2", Email: "zoe@example.com", FirstName: "Zoe", Role: model.RoleStudent}
		paused := &model.User{ID: uuid.New(), ExternalID: "sub-3", Email: "pat@example.com", FirstName: "Pat", Role: model.RoleStudent}
		require.NoError(t, db.Create(second).Error)
		require.NoError(t, db.Create(paused).Error)
		require.NoError(t, db.Omit("User", "Cohort", "ModuleAssignments").Create(&model.Enrollment{
			ID: uuid.New(), UserID: second.ID, CohortID: f.Cohort.ID, Status: model.EnrollmentActive,
		}).Error)
		require.NoError(t, db.Omit("User", "Cohort", "ModuleAssignments").Create(&model.Enrollment{
			ID: uuid.New(), UserID: paused.ID, CohortID: f.Cohort.ID, Status: model.EnrollmentPaused,
		}).Error)
		for _, b := range f.Blocks[:4] {
			require.NoError(t, db.Create(&model.Progress{ID: uuid.New(), UserID: second.ID, ContentBlockID: b.ID, Status: model.ProgressCompleted}).Error)
		}
		require.NoError(t, db.Create(&model.Progress{ID: uuid.New(), UserID: f.Student.ID, ContentBlockID: f.Blocks[0].ID, Status: model.ProgressCompleted}).Error)

		submissions := newSubmissionServiceForTest(db, nil)
		_, err := submissions.Submit(ctx, f.Student.Principal(), &model.CreateSubmissionRequest{ContentBlockID: f.Blocks[5].ID.String()})
		require.NoError(t, err)

		svc := newDashboardServiceForTest(db, "2026-03-03")
		got, err := svc.StaffDashboard(ctx, f.Instructor.Principal())
		require.NoError(t, err)

		require.NotNil(t, got.Cohort)
		assert.Equal(t, f.Cohort.ID, got.Cohort.ID)
		assert.Equal(t, 3, *got.Cohort.EnrolledCount)
		assert.Equal(t, 2, *got.Cohort.ActiveCount)
		assert.Equal(t, int64(1), *got.UngradedCount)

		require.Len(t, got.Students, 2)
		assert.Equal(t, "Zoe", got.Students[0].FullName)
		assert.Equal(t, 50.0, got.Students[0].ProgressPercentage)
		assert.Equal(t, "Sam Student", got.Students[1].FullName)
		assert.Equal(t, 12.5, got.Students[1].ProgressPercentage)
		assert.Nil(t, got.Cohorts)
	})

	t.Run("正常系: 未採点数には paused の受講者の提出も含める", func(t *testing.T) {
		db := newTestDB(t)
		f := seedCourse(t, db)

		paused := &model.User{ID: uuid.New(), ExternalID: "sub-3", Email: "pat@example.com", FirstName: "Pat", Role: model.RoleStudent}
		require.NoError(t, db.Create(paused).Error)
		require.NoError(t, db.Omit("User", "Cohort", "ModuleAssignments").Create(&model.Enrollment{
			ID: uuid.New(), UserID: paused.ID, CohortID: f.Cohort.ID, Status: model.EnrollmentPaused,
		}).Error)

		submissions := newSubmissionServiceForTest(db, nil)
		_, err := submissions.Submit(ctx, f.Student.Principal(), &model.CreateSubmissionRequest{ContentBlockID: f.Blocks[5].ID.String()})
		require.NoError(t, err)
		_, err = submissions.Submit(ctx, paused.Principal(), &model.CreateSubmissionRequest{ContentBlockID: f.Blocks[2].ID.String()})
		require.NoError(t, err)

		svc := newDashboardServiceForTest(db, "2026-03-03")
		got, err := svc.StaffDashboard(ctx, f.Instructor.Principal())
		require.NoError(t, err)

		assert.Equal(t, int64(2), *got.UngradedCount)
		assert.Equal(t, 1, *got.Cohort.ActiveCount)
		require.Len(t, got.Students, 1)
		assert.Equal(t, "Sam Student", got.Students[0].FullName)
	})

	t.Run("正常系: 進行中のコホートが無ければ cohorts=[]", func(t *testing.T) {
		db := newTestDB(t)
		f := seedCourse(t, db)
		require.NoError(t, db.Model(f.Cohort).Update("status", model.CohortCompleted).Error)

		svc := newDashboardServiceForTest(db, "2026-03-03")
		got, err := svc.StaffDashboard(ctx, f.Admin.Principal())
		require.NoError(t, err)
		require.NotNil(t, got.Cohorts)
		assert.Empty(t, *got.Cohorts)
		assert.Nil(t, got.Cohort)
		assert.True(t, got.User.IsAdmin)
	})
}
