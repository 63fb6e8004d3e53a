package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"
	"cohort_lms/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB はテストごとに独立したインメモリ SQLite を作り、マイグレーションする
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 共有キャッシュのロック競合を避ける
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.AutoMigrate(db))
	return db
}

func testContext() context.Context {
	return middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// courseFixture は 2 モジュール × 2 レッスン × 2 ブロックのカリキュラムと、
// 開始日 2026-03-02 のコホートに受講登録した受講者
type courseFixture struct {
	Student    *model.User
	Instructor *model.User
	Admin      *model.User
	Curriculum *model.Curriculum
	Cohort     *model.Cohort
	Enrollment *model.Enrollment
	Blocks     []model.ContentBlock
}

func seedCourse(t *testing.T, db *gorm.DB) *courseFixture {
	t.Helper()
	f := &courseFixture{
		Student:    &model.User{ID: uuid.New(), ExternalID: "sub-student", Email: "student@example.com", FirstName: "Sam", LastName: "Student", Role: model.RoleStudent},
		Instructor: &model.User{ID: uuid.New(), ExternalID: "sub-instructor", Email: "instructor@example.com", FirstName: "Ivy", Role: model.RoleInstructor},
		Admin:      &model.User{ID: uuid.New(), ExternalID: "sub-admin", Email: "admin@example.com", FirstName: "Ada", Role: model.RoleAdmin},
	}
	for _, u := range []*model.User{f.Student, f.Instructor, f.Admin} {
		require.NoError(t, db.Create(u).Error)
	}

	f.Curriculum = buildCurriculum(2, 2, 2)
	f.Curriculum.Status = model.CurriculumActive
	require.NoError(t, db.Create(f.Curriculum).Error)
	for _, m := range f.Curriculum.Modules {
		for _, l := range m.Lessons {
			f.Blocks = append(f.Blocks, l.ContentBlocks...)
		}
	}

	start, err := model.ParseDate("2026-03-02")
	require.NoError(t, err)
	f.Cohort = &model.Cohort{
		ID:           uuid.New(),
		CurriculumID: f.Curriculum.ID,
		Name:         "Cohort 3",
		CohortType:   model.CohortBootcamp,
		StartDate:    start,
		Status:       model.CohortActive,
	}
	require.NoError(t, db.Omit("Curriculum", "Enrollments").Create(f.Cohort).Error)

	f.Enrollment = &model.Enrollment{
		ID:       uuid.New(),
		UserID:   f.Student.ID,
		CohortID: f.Cohort.ID,
		Status:   model.EnrollmentActive,
	}
	require.NoError(t, db.Omit("User", "Cohort", "ModuleAssignments").Create(f.Enrollment).Error)
	for _, m := range f.Curriculum.Modules {
		require.NoError(t, db.Create(&model.ModuleAssignment{ID: uuid.New(), EnrollmentID: f.Enrollment.ID, ModuleID: m.ID}).Error)
	}
	return f
}

func findProgress(t *testing.T, db *gorm.DB, userID, blockID uuid.UUID) *model.Progress {
	t.Helper()
	var p model.Progress
	require.NoError(t, db.Where("user_id = ? AND content_block_id = ?", userID, blockID).First(&p).Error)
	return &p
}
