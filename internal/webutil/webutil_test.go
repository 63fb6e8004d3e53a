package webutil_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cohort_lms/internal/model"
	"cohort_lms/internal/webutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"NotFound", model.ErrNotFound, http.StatusNotFound},
		{"AppError で包んだ Validation", model.NewAppError("VALIDATION_ERROR", "bad", "", model.ErrValidation), http.StatusUnprocessableEntity},
		{"InvalidInput", model.ErrInvalidInput, http.StatusBadRequest},
		{"Unauthorized", model.ErrUnauthorized, http.StatusUnauthorized},
		{"Forbidden", model.ErrForbidden, http.StatusForbidden},
		{"fmt で包んだ Conflict", fmt.Errorf("create: %w", model.ErrConflict), http.StatusConflict},
		{"その他は 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, webutil.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Run("正常系: AppError はそのまま返す", func(t *testing.T) {
		rec := httptest.NewRecorder()
		webutil.HandleError(rec, nil, model.NewAppError("NOT_FOUND", "Lesson not found", "", model.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"Lesson not found"}}`, rec.Body.String())
	})

	t.Run("正常系: 想定外のエラーは詳細を隠す", func(t *testing.T) {
		rec := httptest.NewRecorder()
		webutil.HandleError(rec, nil, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
		assert.Contains(t, rec.Body.String(), "INTERNAL_SERVER_ERROR")
	})
}

type gradeRequest struct {
	SubmissionID string `json:"submission_id" validate:"required,uuid"`
	Grade        string `json:"grade" validate:"required,oneof=A B C R"`
	GradedOn     string `json:"graded_on" validate:"omitempty,datetime=2006-01-02"`
}

func TestDecodeAndValidate(t *testing.T) {
	decode := func(body string) (*gradeRequest, error) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var dst gradeRequest
		err := webutil.DecodeAndValidate(httptest.NewRecorder(), req, &dst)
		return &dst, err
	}

	t.Run("正常系", func(t *testing.T) {
		got, err := decode(`{"submission_id":"0b3c1f9a-3f5d-4f37-9b2d-2b8f6a4f3f10","grade":"B"}`)
		require.NoError(t, err)
		assert.Equal(t, "B", got.Grade)
	})

	t.Run("異常系: JSON でなければ 400", func(t *testing.T) {
		_, err := decode(`{"grade":`)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, webutil.MapErrorToStatusCode(err))

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_REQUEST_BODY", appErr.Detail.Code)
	})

	t.Run("異常系: 検証エラーは json タグ名で全件返す", func(t *testing.T) {
		_, err := decode(`{"submission_id":"abc","grade":"F","graded_on":"10/19/2026"}`)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, webutil.MapErrorToStatusCode(err))

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
		assert.Equal(t, "submission_id", appErr.Detail.Field)
		require.Len(t, appErr.Detail.Messages, 3)
		assert.Equal(t, "submission_id must be a valid UUID", appErr.Detail.Messages[0])
		assert.Equal(t, "grade must be one of: A B C R", appErr.Detail.Messages[1])
		assert.Equal(t, "graded_on must be a date in the format YYYY-MM-DD", appErr.Detail.Messages[2])
	})
}

func TestQueryParams(t *testing.T) {
	t.Run("正常系: 無ければ nil と false", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/submissions", nil)

		id, err := webutil.QueryUUID(req, "module_id")
		require.NoError(t, err)
		assert.Nil(t, id)

		ungraded, err := webutil.QueryBool(req, "ungraded")
		require.NoError(t, err)
		assert.False(t, ungraded)
	})

	t.Run("正常系: 値を読む", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/submissions?module_id=0b3c1f9a-3f5d-4f37-9b2d-2b8f6a4f3f10&ungraded=1", nil)

		id, err := webutil.QueryUUID(req, "module_id")
		require.NoError(t, err)
		require.NotNil(t, id)
		assert.Equal(t, "0b3c1f9a-3f5d-4f37-9b2d-2b8f6a4f3f10", id.String())

		ungraded, err := webutil.QueryBool(req, "ungraded")
		require.NoError(t, err)
		assert.True(t, ungraded)
	})

	t.Run("異常系: 不正な値は 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/submissions?module_id=7&ungraded=maybe", nil)

		_, err := webutil.QueryUUID(req, "module_id")
		assert.Equal(t, http.StatusBadRequest, webutil.MapErrorToStatusCode(err))
		_, err = webutil.QueryBool(req, "ungraded")
		assert.Equal(t, http.StatusBadRequest, webutil.MapErrorToStatusCode(err))
	})
}
