package model_test

import (
	"testing"
	"time"

	"cohort_lms/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress_SyncCompletedAt(t *testing.T) {
	t1 := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	t.Run("正常系: completed になった時点の日時を設定する", func(t *testing.T) {
		p := &model.Progress{Status: model.ProgressCompleted}
		p.SyncCompletedAt(t1)
		require.NotNil(t, p.CompletedAt)
		assert.Equal(t, t1, *p.CompletedAt)
	})

	t.Run("正常系: completed のままなら保持する", func(t *testing.T) {
		p := &model.Progress{Status: model.ProgressCompleted, CompletedAt: &t1}
		p.SyncCompletedAt(t2)
		assert.Equal(t, t1, *p.CompletedAt)
	})

	t.Run("正常系: completed 以外に戻ったら消す", func(t *testing.T) {
		p := &model.Progress{Status: model.ProgressInProgress, CompletedAt: &t1}
		p.SyncCompletedAt(t2)
		assert.Nil(t, p.CompletedAt)
	})
}

func TestParseDate(t *testing.T) {
	d, err := model.ParseDate("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", model.FormatDate(d))

	_, err = model.ParseDate("03/02/2026")
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	assert.Nil(t, model.FormatDatePtr(nil))
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Sam Student", (&model.User{FirstName: "Sam", LastName: "Student", Email: "s@example.com"}).FullName())
	assert.Equal(t, "Ivy", (&model.User{FirstName: "Ivy"}).FullName())
	assert.Equal(t, "ada", (&model.User{Email: "ada@example.com"}).FullName())
}
