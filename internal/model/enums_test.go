package model_test

import (
	"encoding/json"
	"testing"

	"cohort_lms/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrade(t *testing.T) {
	t.Run("正常系: 名前で JSON にする", func(t *testing.T) {
		b, err := json.Marshal(struct {
			Grade *model.Grade `json:"grade"`
		}{Grade: gradePtr(model.GradeA)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"grade":"A"}`, string(b))
	})

	t.Run("正常系: 未採点は null", func(t *testing.T) {
		b, err := json.Marshal(struct {
			Grade *model.Grade `json:"grade"`
		}{})
		require.NoError(t, err)
		assert.JSONEq(t, `{"grade":null}`, string(b))
	})

	t.Run("正常系: R のみ再提出", func(t *testing.T) {
		for _, s := range []string{"A", "B", "C", "R"} {
			g, err := model.ParseGrade(s)
			require.NoError(t, err)
			assert.Equal(t, s == "R", g.IsRedo(), s)
		}
	})

	t.Run("異常系: 未知の評価は ErrInvalidInput", func(t *testing.T) {
		_, err := model.ParseGrade("F")
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		var g model.Grade
		assert.ErrorIs(t, json.Unmarshal([]byte(`1`), &g), model.ErrInvalidInput)
	})
}

func TestRole(t *testing.T) {
	r, err := model.ParseRole("instructor")
	require.NoError(t, err)
	assert.True(t, r.IsStaff())
	assert.False(t, r.IsAdmin())
	assert.True(t, model.RoleAdmin.IsStaff())
	assert.False(t, model.RoleStudent.IsStaff())

	var decoded model.Role
	require.NoError(t, json.Unmarshal([]byte(`"admin"`), &decoded))
	assert.Equal(t, model.RoleAdmin, decoded)

	assert.Equal(t, "unknown(9)", model.Role(9).String())
}

func TestProgressStatus(t *testing.T) {
	s, err := model.ParseProgressStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, model.ProgressInProgress, s)

	b, err := json.Marshal(model.ProgressCompleted)
	require.NoError(t, err)
	assert.Equal(t, `"completed"`, string(b))

	_, err = model.ParseProgressStatus("done")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func gradePtr(g model.Grade) *model.Grade { return &g }
