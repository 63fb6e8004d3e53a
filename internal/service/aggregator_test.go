package service

import (
	"fmt"
	"testing"
	"time"

	"cohort_lms/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// buildCurriculum は modules × lessons × blocks の木を position 順で作る
// 2 番目以降のモジュールは day_offset を 7 日ずつずらす
func buildCurriculum(modules, lessons, blocks int) *model.Curriculum {
	c := &model.Curriculum{ID: uuid.New(), Name: "Full-Stack"}
	for mi := 0; mi < modules; mi++ {
		mod := model.CurriculumModule{
			ID:           uuid.New(),
			CurriculumID: c.ID,
			Name:         fmt.Sprintf("Module %d", mi+1),
			Position:     mi + 1,
			DayOffset:    mi * 7,
		}
		for li := 0; li < lessons; li++ {
			lesson := model.Lesson{
				ID:         uuid.New(),
				ModuleID:   mod.ID,
				Title:      fmt.Sprintf("Lesson %d.%d", mi+1, li+1),
				Position:   li + 1,
				ReleaseDay: li,
				Required:   true,
			}
			for bi := 0; bi < blocks; bi++ {
				lesson.ContentBlocks = append(lesson.ContentBlocks, model.ContentBlock{
					ID:       uuid.New(),
					LessonID: lesson.ID,
					Position: bi + 1,
					Title:    fmt.Sprintf("Block %d.%d.%d", mi+1, li+1, bi+1),
				})
			}
			mod.Lessons = append(mod.Lessons, lesson)
		}
		c.Modules = append(c.Modules, mod)
	}
	return c
}

func completedProgress(userID uuid.UUID, blocks ...model.ContentBlock) []*model.Progress {
	out := make([]*model.Progress, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, &model.Progress{ID: uuid.New(), UserID: userID, ContentBlockID: b.ID, Status: model.ProgressCompleted})
	}
	return out
}

func testEnrollment(userID uuid.UUID, start string) *model.Enrollment {
	d, _ := model.ParseDate(start)
	return &model.Enrollment{
		ID:     uuid.New(),
		UserID: userID,
		Status: model.EnrollmentActive,
		Cohort: &model.Cohort{ID: uuid.New(), Name: "Cohort 3", StartDate: d, Status: model.CohortActive},
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0), "total 0 は 0")
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 37.5, Percentage(3, 8))
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 66.7, Percentage(2, 3))
	assert.Equal(t, 100.0, Percentage(8, 8))
}

func TestBuildStudentDashboard_Progress(t *testing.T) {
	user := &model.User{ID: uuid.New(), FirstName: "Sam", Email: "sam@example.com"}
	curriculum := buildCurriculum(2, 2, 2)
	m1 := curriculum.Modules[0]
	m2 := curriculum.Modules[1]

	// 8 ブロック中 3 完了 (モジュール1のレッスン1は全完了)
	progress := completedProgress(user.ID,
		m1.Lessons[0].ContentBlocks[0],
		m1.Lessons[0].ContentBlocks[1],
		m2.Lessons[1].ContentBlocks[0],
	)
	// in_progress は数えない
	progress = append(progress, &model.Progress{
		ID: uuid.New(), UserID: user.ID, ContentBlockID: m1.Lessons[1].ContentBlocks[0].ID, Status: model.ProgressInProgress,
	})

	got := BuildStudentDashboard(StudentDashboardInput{
		User:       user,
		Enrollment: testEnrollment(user.ID, "2026-03-02"),
		Curriculum: curriculum,
		Progress:   progress,
		Today:      date(t, "2026-03-03"),
	})

	require.True(t, got.Enrolled)
	require.NotNil(t, got.OverallProgress)
	assert.Equal(t, model.ProgressSummary{Completed: 3, Total: 8, Percentage: 37.5}, *got.OverallProgress)
	assert.Equal(t, "2026-03-02", got.Cohort.StartDate)

	require.Len(t, got.Modules, 2)
	assert.Equal(t, 2, got.Modules[0].CompletedBlocks)
	assert.Equal(t, 50.0, got.Modules[0].ProgressPercentage)
	assert.Equal(t, 1, got.Modules[1].CompletedBlocks)
	assert.Equal(t, 25.0, got.Modules[1].ProgressPercentage)

	l11 := got.Modules[0].Lessons[0]
	assert.True(t, l11.Completed)
	assert.Equal(t, 100.0, l11.ProgressPercentage)
	assert.Equal(t, "2026-03-02", l11.UnlockDate)
	assert.True(t, l11.Available)

	l12 := got.Modules[0].Lessons[1]
	assert.False(t, l12.Completed)
	assert.Equal(t, "2026-03-03", l12.UnlockDate)
	assert.True(t, l12.Available, "解放日当日は利用可能")

	l21 := got.Modules[1].Lessons[0]
	assert.Equal(t, "2026-03-09", l21.UnlockDate)
	assert.False(t, l21.Available)

	// 完了済みのレッスン1.1を飛ばし、利用可能な未完了の1.2
	require.NotNil(t, got.ContinueLesson)
	assert.Equal(t, m1.Lessons[1].ID, got.ContinueLesson.ID)
	assert.Equal(t, m1.ID, got.ContinueLesson.ModuleID)
	assert.Empty(t, got.ActionItems)
}

func TestBuildStudentDashboard_ContinueLesson(t *testing.T) {
	user := &model.User{ID: uuid.New(), Email: "sam@example.com"}

	t.Run("正常系: 完了したモジュールを飛ばす", func(t *testing.T) {
		curriculum := buildCurriculum(2, 1, 2)
		m1 := curriculum.Modules[0]
		progress := completedProgress(user.ID, m1.Lessons[0].ContentBlocks...)

		got := BuildStudentDashboard(StudentDashboardInput{
			User:       user,
			Enrollment: testEnrollment(user.ID, "2026-03-02"),
			Curriculum: curriculum,
			Progress:   progress,
			Today:      date(t, "2026-03-09"),
		})
		require.NotNil(t, got.ContinueLesson)
		assert.Equal(t, curriculum.Modules[1].Lessons[0].ID, got.ContinueLesson.ID)
	})

	t.Run("正常系: 利用可能な未完了レッスンが無ければ nil", func(t *testing.T) {
		curriculum := buildCurriculum(2, 1, 2)
		progress := completedProgress(user.ID, curriculum.Modules[0].Lessons[0].ContentBlocks...)

		got := BuildStudentDashboard(StudentDashboardInput{
			User:       user,
			Enrollment: testEnrollment(user.ID, "2026-03-02"),
			Curriculum: curriculum,
			Progress:   progress,
			Today:      date(t, "2026-03-05"),
		})
		assert.Nil(t, got.ContinueLesson)
	})

	t.Run("正常系: override で前倒しされたモジュールが対象になる", func(t *testing.T) {
		curriculum := buildCurriculum(2, 1, 2)
		progress := completedProgress(user.ID, curriculum.Modules[0].Lessons[0].ContentBlocks...)
		enrollment := testEnrollment(user.ID, "2026-03-02")
		override := datatypes.Date(date(t, "2026-03-04"))
		enrollment.ModuleAssignments = []model.ModuleAssignment{
			{ID: uuid.New(), EnrollmentID: enrollment.ID, ModuleID: curriculum.Modules[1].ID, UnlockDateOverride: &override},
		}

		got := BuildStudentDashboard(StudentDashboardInput{
			User:       user,
			Enrollment: enrollment,
			Curriculum: curriculum,
			Progress:   progress,
			Today:      date(t, "2026-03-05"),
		})
		require.NotNil(t, got.ContinueLesson)
		assert.Equal(t, curriculum.Modules[1].Lessons[0].ID, got.ContinueLesson.ID)
		assert.Equal(t, "2026-03-04", got.Modules[1].Lessons[0].UnlockDate)
	})
}

func TestBuildStudentDashboard_LessonWithoutBlocks(t *testing.T) {
	user := &model.User{ID: uuid.New(), Email: "sam@example.com"}
	curriculum := buildCurriculum(1, 2, 2)
	curriculum.Modules[0].Lessons[1].ContentBlocks = nil
	m1 := curriculum.Modules[0]
	progress := completedProgress(user.ID, m1.Lessons[0].ContentBlocks...)

	got := BuildStudentDashboard(StudentDashboardInput{
		User:       user,
		Enrollment: testEnrollment(user.ID, "2026-03-02"),
		Curriculum: curriculum,
		Progress:   progress,
		Today:      date(t, "2026-03-03"),
	})

	require.Len(t, got.Modules, 1)
	assert.Equal(t, 100.0, got.Modules[0].ProgressPercentage)
	assert.Equal(t, model.ProgressSummary{Completed: 2, Total: 2, Percentage: 100}, *got.OverallProgress)

	empty := got.Modules[0].Lessons[1]
	assert.Equal(t, 0, empty.TotalBlocks)
	assert.False(t, empty.Completed, "ブロックの無いレッスンは完了扱いにしない")
	assert.Equal(t, 0.0, empty.ProgressPercentage)
	assert.True(t, empty.Available)

	require.NotNil(t, got.ContinueLesson)
	assert.Equal(t, m1.Lessons[1].ID, got.ContinueLesson.ID)
}

func TestBuildStudentDashboard_EmptyCurriculum(t *testing.T) {
	user := &model.User{ID: uuid.New(), Email: "sam@example.com"}

	got := BuildStudentDashboard(StudentDashboardInput{
		User:       user,
		Enrollment: testEnrollment(user.ID, "2026-03-02"),
		Curriculum: &model.Curriculum{ID: uuid.New()},
		Today:      date(t, "2026-03-05"),
	})

	assert.Equal(t, model.ProgressSummary{Completed: 0, Total: 0, Percentage: 0}, *got.OverallProgress)
	assert.Empty(t, got.Modules)
	assert.Nil(t, got.ContinueLesson)
}

func TestNotEnrolledDashboard(t *testing.T) {
	user := &model.User{ID: uuid.New(), FirstName: "Sam", LastName: "Lee", Role: model.RoleStudent}

	got := NotEnrolledDashboard(user)
	assert.False(t, got.Enrolled)
	assert.Equal(t, "Sam Lee", got.User.FullName)
	assert.Nil(t, got.Cohort)
	assert.Nil(t, got.OverallProgress)
}

func gradePtr(g model.Grade) *model.Grade { return &g }

func TestActionItems(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	lesson := &model.Lesson{Title: "Arrays"}

	newSubmission := func(blockID uuid.UUID, num int, grade *model.Grade, minutes int) *model.Submission {
		return &model.Submission{
			ID:             uuid.New(),
			ContentBlockID: blockID,
			NumSubmissions: num,
			Grade:          grade,
			CreatedAt:      base.Add(time.Duration(minutes) * time.Minute),
			ContentBlock:   &model.ContentBlock{ID: blockID, Title: "Cart", Lesson: lesson},
		}
	}

	t.Run("正常系: 最新の提出が R のものだけ", func(t *testing.T) {
		redoBlock := uuid.New()
		resubmittedBlock := uuid.New()
		gradedBlock := uuid.New()

		redo := newSubmission(redoBlock, 1, gradePtr(model.GradeR), 0)
		submissions := []*model.Submission{
			redo,
			newSubmission(resubmittedBlock, 1, gradePtr(model.GradeR), 1),
			newSubmission(resubmittedBlock, 2, nil, 2), // 再提出済み
			newSubmission(gradedBlock, 1, gradePtr(model.GradeA), 3),
		}

		got := ActionItems(submissions, MaxActionItems)
		require.Len(t, got, 1)
		assert.Equal(t, "redo", got[0].Type)
		assert.Equal(t, redo.ID, got[0].SubmissionID)
		assert.Equal(t, "Cart", got[0].ContentBlockTitle)
		assert.Equal(t, "Arrays", got[0].LessonTitle)
	})

	t.Run("正常系: 新しい順に最大5件", func(t *testing.T) {
		var submissions []*model.Submission
		for i := 0; i < 7; i++ {
			submissions = append(submissions, newSubmission(uuid.New(), 1, gradePtr(model.GradeR), i))
		}

		got := ActionItems(submissions, MaxActionItems)
		require.Len(t, got, MaxActionItems)
		assert.Equal(t, submissions[6].ID, got[0].SubmissionID)
		assert.Equal(t, submissions[2].ID, got[4].SubmissionID)
	})

	t.Run("正常系: 提出が無ければ空", func(t *testing.T) {
		got := ActionItems(nil, MaxActionItems)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestStaffStudentRows(t *testing.T) {
	alice := &model.User{ID: uuid.New(), FirstName: "Alice", Email: "alice@example.com"}
	bob := &model.User{ID: uuid.New(), FirstName: "Bob", Email: "bob@example.com"}
	carol := &model.User{ID: uuid.New(), FirstName: "Carol", Email: "carol@example.com"}

	enrollments := []*model.Enrollment{
		{UserID: bob.ID, User: bob, Status: model.EnrollmentActive},
		{UserID: carol.ID, User: carol, Status: model.EnrollmentActive},
		{UserID: alice.ID, User: alice, Status: model.EnrollmentActive},
		{UserID: uuid.New(), Status: model.EnrollmentActive}, // User 未読み込みは除外
	}
	completed := map[uuid.UUID]int{bob.ID: 2, carol.ID: 6, alice.ID: 2}

	rows := StaffStudentRows(enrollments, completed, 8)
	require.Len(t, rows, 3)
	assert.Equal(t, "Carol", rows[0].FullName)
	assert.Equal(t, 75.0, rows[0].ProgressPercentage)
	// 同率は名前順
	assert.Equal(t, "Alice", rows[1].FullName)
	assert.Equal(t, "Bob", rows[2].FullName)
	assert.Equal(t, 25.0, rows[2].ProgressPercentage)
	assert.Equal(t, 8, rows[2].TotalBlocks)

	assert.Empty(t, StaffStudentRows(nil, nil, 0))
}

func TestCurriculumBlockIDs(t *testing.T) {
	c := buildCurriculum(2, 2, 2)
	ids := CurriculumBlockIDs(c)
	assert.Len(t, ids, 8)
	assert.Equal(t, c.Modules[0].Lessons[0].ContentBlocks[0].ID, ids[0])
}
