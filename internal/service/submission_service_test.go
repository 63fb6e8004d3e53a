package service

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"cohort_lms/internal/model"
	"cohort_lms/internal/repository"
	"cohort_lms/internal/repository/mocks"
	servicemocks "cohort_lms/internal/service/mocks"
	"cohort_lms/internal/webutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var gradedAt = time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)

func newSubmissionServiceForTest(db *gorm.DB, mailer Mailer) SubmissionService {
	return NewSubmissionService(
		db,
		repository.NewGormSubmissionRepository(),
		repository.NewGormProgressRepository(),
		repository.NewGormContentBlockRepository(),
		mailer,
		FixedClock{At: gradedAt},
		"http://localhost:5173",
	)
}

func assertStatus(t *testing.T, want int, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, webutil.MapErrorToStatusCode(err))
}

func Test_submissionService_Submit(t *testing.T) {
	ctx := testContext()
	db := newTestDB(t)
	f := seedCourse(t, db)
	svc := newSubmissionServiceForTest(db, nil)
	student := f.Student.Principal()
	block := f.Blocks[0]

	t.Run("正常系: 再提出ごとに回数が 1, 2, 3 と増える", func(t *testing.T) {
		for want := 1; want <= 3; want++ {
			resp, err := svc.Submit(ctx, student, &model.CreateSubmissionRequest{
				ContentBlockID: block.ID.String(),
				Text:           "attempt",
			})
			require.NoError(t, err)
			assert.Equal(t, want, resp.NumSubmissions)
			assert.Nil(t, resp.Grade)
			assert.Equal(t, "Sam Student", resp.UserName)
			assert.Nil(t, resp.Solution)
		}

		// 提出で進捗は in_progress になる
		p := findProgress(t, db, f.Student.ID, block.ID)
		assert.Equal(t, model.ProgressInProgress, p.Status)
		assert.Nil(t, p.CompletedAt)
	})

	t.Run("正常系: 完了済みの進捗は提出で下がらない", func(t *testing.T) {
		done := f.Blocks[1]
		require.NoError(t, db.Create(&model.Progress{
			ID: uuid.New(), UserID: f.Student.ID, ContentBlockID: done.ID, Status: model.ProgressCompleted,
		}).Error)

		_, err := svc.Submit(ctx, student, &model.CreateSubmissionRequest{ContentBlockID: done.ID.String()})
		require.NoError(t, err)

		p := findProgress(t, db, f.Student.ID, done.ID)
		assert.Equal(t, model.ProgressCompleted, p.Status)
		assert.NotNil(t, p.CompletedAt)
	})

	t.Run("異常系: 存在しないブロック", func(t *testing.T) {
		_, err := svc.Submit(ctx, student, &model.CreateSubmissionRequest{ContentBlockID: uuid.NewString()})
		assertStatus(t, http.StatusNotFound, err)
	})

	t.Run("異常系: content_block_id が UUID でない", func(t *testing.T) {
		_, err := svc.Submit(ctx, student, &model.CreateSubmissionRequest{ContentBlockID: "nope"})
		assertStatus(t, http.StatusUnprocessableEntity, err)
	})
}

func Test_submissionService_Grade(t *testing.T) {
	ctx := testContext()

	t.Run("正常系: A で進捗が completed になり通知される", func(t *testing.T) {
		db := newTestDB(t)
		f := seedCourse(t, db)
		mailer := servicemocks.NewMailer(t)
		svc := newSubmissionServiceForTest(db, mailer)
		block := f.Blocks[0]

		sub, err := svc.Submit(ctx, f.Student.Principal(), &model.CreateSubmissionRequest{ContentBlockID: block.ID.String()})
		require.NoError(t, err)

		mailer.On("Send", mock.Anything, "student@example.com", "Your submission was graded: "+block.Title, mock.AnythingOfType("string")).
			Return(nil).Once()

		resp, err := svc.Grade(ctx, f.Instructor.Principal(), sub.ID, &model.GradeSubmissionRequest{Grade: "A", Feedback: "Nice"})
		require.NoError(t, err)
		require.NotNil(t, resp.Grade)
		assert.Equal(t, model.GradeA, *resp.Grade)
		assert.Equal(t, "Nice", resp.Feedback)
		require.NotNil(t, resp.GradedBy)
		assert.Equal(t, "Ivy", *resp.GradedBy)
		require.NotNil(t, resp.GradedAt)
		assert.True(t, gradedAt.Equal(*resp.GradedAt))

		p := findProgress(t, db, f.Student.ID, block.ID)
		assert.Equal(t, model.ProgressCompleted, p.Status)
		require.NotNil(t, p.CompletedAt)
		assert.True(t, gradedAt.Equal(*p.CompletedAt))
	})

	t.Run("正常系: R では進捗は変わらず、完了済みも戻さない", func(t *testing.T) {
		db := newTestDB(t)
		f := seedCourse(t, db)
		svc := newSubmissionServiceForTest(db, &LogMailer{})
		staff := f.Instructor.Principal()

		fresh := f.Blocks[0]
		sub, err := svc.Submit(ctx, f.Student.Principal(), &model.CreateSubmissionRequest{ContentBlockID: fresh.ID.String()})
		require.NoError(t, err)
		_, err = svc.Grade(ctx, staff, sub.ID, &model.GradeSubmissionRequest{Grade: "R"})
		require.NoError(t, err)
		assert.Equal(t, model.ProgressInProgress, findProgress(t, db, f.Student.ID, fresh.ID).Status)

		// A のあとで R に採点し直しても completed のまま
		other := f.Blocks[1]
		sub2, err := svc.Submit(ctx, f.Student.Principal(), &model.CreateSubmissionRequest{ContentBlockID: other.ID.String()})
		require.NoError(t, err)
		_, err = svc.Grade(ctx, staff, sub2.ID, &model.GradeSubmissionRequest{Grade: "B"})
		require.NoError(t, err)
		completedAt := findProgress(t, db, f.Student.ID, other.ID).CompletedAt
		require.NotNil(t, completedAt)

		resp, err := svc.Grade(ctx, staff, sub2.ID, &model.GradeSubmissionRequest{Grade: "R"})
		require.NoError(t, err)
		assert.Equal(t, model.GradeR, *resp.Grade)
		p := findProgress(t, db, f.Student.ID, other.ID)
		assert.Equal(t, model.ProgressCompleted, p.Status)
		assert.True(t, completedAt.Equal(*p.CompletedAt))
	})

	t.Run("正常系: A のあとの再提出を R にしても完了は維持される", func(t *testing.T) {
		db := newTestDB(t)
		f := seedCourse(t, db)
		block := f.Blocks[0]
		first := newSubmissionServiceForTest(db, nil)

		sub, err := first.Submit(ctx, f.Student.Principal(), &model.CreateSubmissionRequest{ContentBlockID: block.ID.String()})
		require.NoError(t, err)
		_, err = first.Grade(ctx, f.Instructor.Principal(), sub.ID, &model.GradeSubmissionRequest{Grade: "A"})
		require.NoError(t, err)

		later := NewSubmissionService(
			db,
			repository.NewGormSubmissionRepository(),
			repository.NewGormProgressRepository(),
			repository.NewGormContentBlockRepository(),
			nil,
			FixedClock{At: gradedAt.Add(48 * time.Hour)},
			"",
		)
		resub, err := later.Submit(ctx, f.Student.Principal(), &model.CreateSubmissionRequest{ContentBlockID: block.ID.String()})
		require.NoError(t, err)
		assert.Equal(t, 2, resub.NumSubmissions)
		assert.Equal(t, model.ProgressCompleted, findProgress(t, db, f.Student.ID, block.ID).Status)

		resp, err := later.Grade(ctx, f.Instructor.Principal(), resub.ID, &model.GradeSubmissionRequest{Grade: "R"})
		require.NoError(t, err)
		assert.Equal(t, model.GradeR, *resp.Grade)

		p := findProgress(t, db, f.Student.ID, block.ID)
		assert.Equal(t, model.ProgressCompleted, p.Status)
		require.NotNil(t, p.CompletedAt)
		assert.True(t, gradedAt.Equal(*p.CompletedAt))
	})

	t.Run("正常系: 通知の失敗は採点を失敗させない", func(t *testing.T) {
		db := newTestDB(t)
		f := seedCourse(t, db)
		mailer := servicemocks.NewMailer(t)
		svc := newSubmissionServiceForTest(db, mailer)

		sub, err := svc.Submit(ctx, f.Student.Principal(), &model.CreateSubmissionRequest{ContentBlockID: f.Blocks[0].ID.String()})
		require.NoError(t, err)
		mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("ses unavailable")).Once()

		resp, err := svc.Grade(ctx, f.Admin.Principal(), sub.ID, &model.GradeSubmissionRequest{Grade: "C"})
		require.NoError(t, err)
		assert.Equal(t, model.GradeC, *resp.Grade)
	})

	t.Run("異常系: 受講者は採点できない (DB に触れる前に 403)", func(t *testing.T) {
		submissionRepo := mocks.NewSubmissionRepository(t)
		progressRepo := mocks.NewProgressRepository(t)
		blockRepo := mocks.NewContentBlockRepository(t)
		svc := NewSubmissionService(newTestDB(t), submissionRepo, progressRepo, blockRepo, nil, FixedClock{At: gradedAt}, "")

		student := model.Principal{UserID: uuid.New(), Role: model.RoleStudent}
		_, err := svc.Grade(ctx, student, uuid.New(), &model.GradeSubmissionRequest{Grade: "A"})
		assertStatus(t, http.StatusForbidden, err)
		submissionRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 不正な評価は 422", func(t *testing.T) {
		svc := NewSubmissionService(newTestDB(t), mocks.NewSubmissionRepository(t), mocks.NewProgressRepository(t),
			mocks.NewContentBlockRepository(t), nil, FixedClock{At: gradedAt}, "")

		staff := model.Principal{UserID: uuid.New(), Role: model.RoleInstructor}
		_, err := svc.Grade(ctx, staff, uuid.New(), &model.GradeSubmissionRequest{Grade: "F"})
		assertStatus(t, http.StatusUnprocessableEntity, err)
	})

	t.Run("異常系: 提出が無ければ 404", func(t *testing.T) {
		submissionRepo := mocks.NewSubmissionRepository(t)
		svc := NewSubmissionService(newTestDB(t), submissionRepo, mocks.NewProgressRepository(t),
			mocks.NewContentBlockRepository(t), nil, FixedClock{At: gradedAt}, "")
		id := uuid.New()
		submissionRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), id).Return(nil, model.ErrNotFound).Once()

		_, err := svc.Grade(ctx, model.Principal{UserID: uuid.New(), Role: model.RoleAdmin}, id, &model.GradeSubmissionRequest{Grade: "A"})
		assertStatus(t, http.StatusNotFound, err)
	})

	t.Run("異常系: 進捗の更新に失敗したら 500", func(t *testing.T) {
		submissionRepo := mocks.NewSubmissionRepository(t)
		progressRepo := mocks.NewProgressRepository(t)
		svc := NewSubmissionService(newTestDB(t), submissionRepo, progressRepo,
			mocks.NewContentBlockRepository(t), nil, FixedClock{At: gradedAt}, "")

		sub := &model.Submission{ID: uuid.New(), UserID: uuid.New(), ContentBlockID: uuid.New(), NumSubmissions: 1}
		submissionRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), sub.ID).Return(sub, nil).Once()
		submissionRepo.On("Update", mock.Anything, mock.AnythingOfType("*gorm.DB"), sub).Return(nil).Once()
		progressRepo.On("FindByUserAndBlock", mock.Anything, mock.AnythingOfType("*gorm.DB"), sub.UserID, sub.ContentBlockID).
			Return(nil, errors.New("connection reset")).Once()

		_, err := svc.Grade(ctx, model.Principal{UserID: uuid.New(), Role: model.RoleInstructor}, sub.ID, &model.GradeSubmissionRequest{Grade: "A"})
		assertStatus(t, http.StatusInternalServerError, err)
	})
}

func Test_submissionService_AccessRules(t *testing.T) {
	ctx := testContext()
	db := newTestDB(t)
	f := seedCourse(t, db)
	svc := newSubmissionServiceForTest(db, nil)

	other := &model.User{ID: uuid.New(), ExternalID: "sub-other", Email: "other@example.com", Role: model.RoleStudent}
	require.NoError(t, db.Create(other).Error)

	sub, err := svc.Submit(ctx, f.Student.Principal(), &model.CreateSubmissionRequest{ContentBlockID: f.Blocks[0].ID.String(), Text: "v1"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, other.Principal(), &model.CreateSubmissionRequest{ContentBlockID: f.Blocks[0].ID.String()})
	require.NoError(t, err)

	t.Run("正常系: 受講者の一覧は自分の提出のみ", func(t *testing.T) {
		otherID := other.ID
		list, err := svc.List(ctx, f.Student.Principal(), model.SubmissionFilter{UserID: &otherID})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, f.Student.ID, list[0].UserID)
	})

	t.Run("正常系: 講師は全件と未採点で絞り込める", func(t *testing.T) {
		list, err := svc.List(ctx, f.Instructor.Principal(), model.SubmissionFilter{Ungraded: true})
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("正常系: 講師には解答が含まれる", func(t *testing.T) {
		resp, err := svc.Get(ctx, f.Instructor.Principal(), sub.ID)
		require.NoError(t, err)
		assert.NotNil(t, resp.Solution)
	})

	t.Run("異常系: 他人の提出は見られない", func(t *testing.T) {
		_, err := svc.Get(ctx, other.Principal(), sub.ID)
		assertStatus(t, http.StatusForbidden, err)
	})

	t.Run("正常系: 採点前なら本人が編集できる", func(t *testing.T) {
		text := "v2"
		resp, err := svc.Update(ctx, f.Student.Principal(), sub.ID, &model.UpdateSubmissionRequest{Text: &text})
		require.NoError(t, err)
		assert.Equal(t, "v2", resp.Text)
	})

	t.Run("異常系: 採点後は本人でも編集できない", func(t *testing.T) {
		_, err := svc.Grade(ctx, f.Instructor.Principal(), sub.ID, &model.GradeSubmissionRequest{Grade: "R"})
		require.NoError(t, err)

		text := "v3"
		_, err = svc.Update(ctx, f.Student.Principal(), sub.ID, &model.UpdateSubmissionRequest{Text: &text})
		assertStatus(t, http.StatusForbidden, err)
	})
}
