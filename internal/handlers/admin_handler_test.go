// internal/handlers/admin_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"

	"cohort_lms/internal/handlers"
	"cohort_lms/internal/model"
	"cohort_lms/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCohortHandler_SetModuleOverride(t *testing.T) {
	enrollmentID := uuid.New()
	moduleID := uuid.New()
	override := "2026-03-02"

	tests := []struct {
		name           string
		path           string
		body           interface{}
		setupMock      func(m *mocks.CohortService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 両方の URL パラメータを渡す",
			path: "/api/v1/enrollments/" + enrollmentID.String() + "/module_assignments/" + moduleID.String(),
			body: model.SetUnlockOverrideRequest{UnlockDateOverride: &override},
			setupMock: func(m *mocks.CohortService) {
				m.On("SetModuleOverride", mock.Anything, enrollmentID, moduleID, &model.SetUnlockOverrideRequest{UnlockDateOverride: &override}).
					Return(&model.ModuleAssignmentResponse{ID: uuid.New(), ModuleID: moduleID, UnlockDateOverride: &override}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 日付の形式が不正なら 422",
			path:           "/api/v1/enrollments/" + enrollmentID.String() + "/module_assignments/" + moduleID.String(),
			body:           map[string]string{"unlock_date_override": "03/02/2026"},
			setupMock:      func(m *mocks.CohortService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: module_id が UUID でなければ 400",
			path:           "/api/v1/enrollments/" + enrollmentID.String() + "/module_assignments/first",
			body:           model.SetUnlockOverrideRequest{},
			setupMock:      func(m *mocks.CohortService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_URL_PARAM",
		},
		{
			name: "異常系: 別カリキュラムのモジュールは 400",
			path: "/api/v1/enrollments/" + enrollmentID.String() + "/module_assignments/" + moduleID.String(),
			body: model.SetUnlockOverrideRequest{},
			setupMock: func(m *mocks.CohortService) {
				m.On("SetModuleOverride", mock.Anything, enrollmentID, moduleID, mock.Anything).
					Return(nil, model.NewAppError("INVALID_INPUT", "Module does not belong to the cohort's curriculum", "module_id", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_INPUT",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cohortService := mocks.NewCohortService(t)
			tc.setupMock(cohortService)
			server := newTestServer(t, nil, handlers.Services{Cohorts: cohortService})

			body := sendRequest(t, server,
				httpRequestDetails{Method: http.MethodPatch, Path: tc.path, Body: tc.body, Headers: asUser(uuid.New(), model.RoleAdmin)},
				httpResponseExpectations{ExpectedCode: tc.expectedStatus, ExpectedErrorCode: tc.expectedCode},
			)
			if tc.expectedStatus == http.StatusOK {
				var got model.ModuleAssignmentResponse
				decodeEnvelope(t, body, "module_assignment", &got)
				require.NotNil(t, got.UnlockDateOverride)
				assert.Equal(t, override, *got.UnlockDateOverride)
			}
		})
	}
}

func TestCohortHandler_CreateAndDelete(t *testing.T) {
	adminID := uuid.New()

	t.Run("正常系: コホート作成は 201", func(t *testing.T) {
		curriculumID := uuid.New()
		cohortService := mocks.NewCohortService(t)
		cohortService.On("CreateCohort", mock.Anything, mock.MatchedBy(func(req *model.CreateCohortRequest) bool {
			return req.Name == "Cohort 4" && req.CurriculumID == curriculumID.String()
		})).Return(&model.CohortResponse{ID: uuid.New(), Name: "Cohort 4"}, nil).Once()
		server := newTestServer(t, nil, handlers.Services{Cohorts: cohortService})

		body := sendRequest(t, server,
			httpRequestDetails{
				Method:  http.MethodPost,
				Path:    "/api/v1/cohorts",
				Body:    map[string]string{"name": "Cohort 4", "curriculum_id": curriculumID.String(), "start_date": "2026-09-07"},
				Headers: asUser(adminID, model.RoleAdmin),
			},
			httpResponseExpectations{ExpectedCode: http.StatusCreated},
		)
		assert.Contains(t, string(body), `"name":"Cohort 4"`)
	})

	t.Run("正常系: 受講登録の削除は 204", func(t *testing.T) {
		enrollmentID := uuid.New()
		cohortService := mocks.NewCohortService(t)
		cohortService.On("DeleteEnrollment", mock.Anything, enrollmentID).Return(nil).Once()
		server := newTestServer(t, nil, handlers.Services{Cohorts: cohortService})

		body := sendRequest(t, server,
			httpRequestDetails{Method: http.MethodDelete, Path: "/api/v1/enrollments/" + enrollmentID.String(), Headers: asUser(adminID, model.RoleAdmin)},
			httpResponseExpectations{ExpectedCode: http.StatusNoContent},
		)
		assert.Empty(t, body)
	})

	t.Run("異常系: 重複登録は 409", func(t *testing.T) {
		cohortID := uuid.New()
		cohortService := mocks.NewCohortService(t)
		cohortService.On("CreateEnrollment", mock.Anything, cohortID, mock.Anything).
			Return(nil, model.NewAppError("CONFLICT", "User is already enrolled in this cohort", "user_id", model.ErrConflict)).Once()
		server := newTestServer(t, nil, handlers.Services{Cohorts: cohortService})

		sendRequest(t, server,
			httpRequestDetails{
				Method:  http.MethodPost,
				Path:    "/api/v1/cohorts/" + cohortID.String() + "/enrollments",
				Body:    map[string]string{"user_id": uuid.NewString()},
				Headers: asUser(adminID, model.RoleAdmin),
			},
			httpResponseExpectations{ExpectedCode: http.StatusConflict, ExpectedErrorCode: "CONFLICT"},
		)
	})
}

func TestLessonHandler_GetLesson(t *testing.T) {
	lessonID := uuid.New()
	studentID := uuid.New()

	t.Run("正常系: 受講者には解放日を返す", func(t *testing.T) {
		available := false
		unlockDate := "2026-03-09"
		lessonService := mocks.NewLessonService(t)
		lessonService.On("GetLessonDetail", mock.Anything, model.Principal{UserID: studentID, Role: model.RoleStudent}, lessonID).
			Return(&model.LessonDetailResponse{
				LessonResponse: model.LessonResponse{ID: lessonID, Title: "Intro to Go"},
				Available:      &available,
				UnlockDate:     &unlockDate,
				ContentBlocks:  []model.LessonDetailBlock{},
			}, nil).Once()
		server := newTestServer(t, nil, handlers.Services{Lessons: lessonService})

		body := sendRequest(t, server,
			httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/lessons/" + lessonID.String(), Headers: asUser(studentID, model.RoleStudent)},
			httpResponseExpectations{ExpectedCode: http.StatusOK},
		)
		assert.JSONEq(t, `false`, string(extractField(t, body, "lesson", "available")))
		assert.JSONEq(t, `"2026-03-09"`, string(extractField(t, body, "lesson", "unlock_date")))
		assert.JSONEq(t, `null`, string(extractField(t, body, "lesson", "next_lesson")))
	})

	t.Run("異常系: 存在しないレッスンは 404", func(t *testing.T) {
		lessonService := mocks.NewLessonService(t)
		lessonService.On("GetLessonDetail", mock.Anything, mock.Anything, lessonID).
			Return(nil, model.NewAppError("NOT_FOUND", "Lesson not found", "", model.ErrNotFound)).Once()
		server := newTestServer(t, nil, handlers.Services{Lessons: lessonService})

		sendRequest(t, server,
			httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/lessons/" + lessonID.String(), Headers: asUser(studentID, model.RoleStudent)},
			httpResponseExpectations{ExpectedCode: http.StatusNotFound, ExpectedErrorCode: "NOT_FOUND"},
		)
	})
}

func TestLessonHandler_CreateContentBlock(t *testing.T) {
	lessonID := uuid.New()

	t.Run("正常系: 管理者がブロックを作る", func(t *testing.T) {
		lessonService := mocks.NewLessonService(t)
		lessonService.On("CreateContentBlock", mock.Anything, lessonID, mock.MatchedBy(func(req *model.CreateContentBlockRequest) bool {
			return req.BlockType == "exercise" && req.Position == 1
		})).Return(&model.ContentBlockResponse{ID: uuid.New(), LessonID: lessonID, BlockType: model.BlockExercise, Position: 1}, nil).Once()
		server := newTestServer(t, nil, handlers.Services{Lessons: lessonService})

		body := sendRequest(t, server,
			httpRequestDetails{
				Method:  http.MethodPost,
				Path:    "/api/v1/lessons/" + lessonID.String() + "/content_blocks",
				Body:    map[string]interface{}{"block_type": "exercise", "position": 1, "body": "Build a todo app"},
				Headers: asUser(uuid.New(), model.RoleAdmin),
			},
			httpResponseExpectations{ExpectedCode: http.StatusCreated},
		)
		assert.JSONEq(t, `"exercise"`, string(extractField(t, body, "content_block", "block_type")))
	})

	t.Run("異常系: 不明な block_type は 422", func(t *testing.T) {
		server := newTestServer(t, nil, handlers.Services{Lessons: mocks.NewLessonService(t)})

		sendRequest(t, server,
			httpRequestDetails{
				Method:  http.MethodPost,
				Path:    "/api/v1/lessons/" + lessonID.String() + "/content_blocks",
				Body:    map[string]interface{}{"block_type": "quiz"},
				Headers: asUser(uuid.New(), model.RoleAdmin),
			},
			httpResponseExpectations{ExpectedCode: http.StatusUnprocessableEntity, ExpectedErrorCode: "VALIDATION_ERROR"},
		)
	})
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Run("正常系: role で絞り込む", func(t *testing.T) {
		role := model.RoleStudent
		userService := mocks.NewUserService(t)
		userService.On("ListUsers", mock.Anything, &role).
			Return([]model.UserResponse{{ID: uuid.New(), FullName: "Sam Student", Role: model.RoleStudent}}, nil).Once()
		server := newTestServer(t, nil, handlers.Services{Users: userService})

		body := sendRequest(t, server,
			httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/users?role=student", Headers: asUser(uuid.New(), model.RoleInstructor)},
			httpResponseExpectations{ExpectedCode: http.StatusOK},
		)
		var got []model.UserResponse
		decodeEnvelope(t, body, "users", &got)
		require.Len(t, got, 1)
		assert.Equal(t, "Sam Student", got[0].FullName)
	})

	t.Run("異常系: 不明な role は 400", func(t *testing.T) {
		server := newTestServer(t, nil, handlers.Services{Users: mocks.NewUserService(t)})

		sendRequest(t, server,
			httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/users?role=bogus", Headers: asUser(uuid.New(), model.RoleAdmin)},
			httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "INVALID_QUERY_PARAM"},
		)
	})
}

func TestCurriculumHandler_DeleteCurriculum(t *testing.T) {
	curriculumID := uuid.New()

	tests := []struct {
		name           string
		returnErr      error
		expectedStatus int
		expectedCode   string
	}{
		{name: "正常系: 204", expectedStatus: http.StatusNoContent},
		{
			name:           "異常系: コホートが参照していれば 409",
			returnErr:      model.NewAppError("CONFLICT", "Curriculum is used by cohorts", "", model.ErrConflict),
			expectedStatus: http.StatusConflict,
			expectedCode:   "CONFLICT",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			curriculumService := mocks.NewCurriculumService(t)
			curriculumService.On("DeleteCurriculum", mock.Anything, curriculumID).Return(tc.returnErr).Once()
			server := newTestServer(t, nil, handlers.Services{Curricula: curriculumService})

			sendRequest(t, server,
				httpRequestDetails{Method: http.MethodDelete, Path: "/api/v1/curricula/" + curriculumID.String(), Headers: asUser(uuid.New(), model.RoleAdmin)},
				httpResponseExpectations{ExpectedCode: tc.expectedStatus, ExpectedErrorCode: tc.expectedCode},
			)
		})
	}
}
