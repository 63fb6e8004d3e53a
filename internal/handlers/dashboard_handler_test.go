// internal/handlers/dashboard_handler_test.go
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

func TestDashboardHandler_GetDashboard(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		headers        map[string]string
		setupMock      func(m *mocks.DashboardService)
		expectedStatus int
		expectedCode   string
		verify         func(t *testing.T, body []byte)
	}{
		{
			name:    "正常系: 受講者は自分の進捗",
			headers: asUser(userID, model.RoleStudent),
			setupMock: func(m *mocks.DashboardService) {
				m.On("StudentDashboard", mock.Anything, model.Principal{UserID: userID, Role: model.RoleStudent}).
					Return(&model.StudentDashboard{
						Enrolled:        true,
						OverallProgress: &model.ProgressSummary{Completed: 3, Total: 8, Percentage: 37.5},
						Modules:         []model.DashboardModule{},
						ActionItems:     []model.ActionItem{},
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			verify: func(t *testing.T, body []byte) {
				var got model.StudentDashboard
				decodeEnvelope(t, body, "dashboard", &got)
				assert.True(t, got.Enrolled)
				assert.Equal(t, 37.5, got.OverallProgress.Percentage)
			},
		},
		{
			name:    "正常系: 受講登録が無ければ enrolled=false",
			headers: asUser(userID, model.RoleStudent),
			setupMock: func(m *mocks.DashboardService) {
				m.On("StudentDashboard", mock.Anything, mock.Anything).
					Return(&model.StudentDashboard{Enrolled: false}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			verify: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `false`, string(extractField(t, body, "dashboard", "enrolled")))
			},
		},
		{
			name:    "正常系: 講師はコホートの概要",
			headers: asUser(userID, model.RoleInstructor),
			setupMock: func(m *mocks.DashboardService) {
				ungraded := int64(4)
				m.On("StaffDashboard", mock.Anything, model.Principal{UserID: userID, Role: model.RoleInstructor}).
					Return(&model.StaffDashboard{
						Cohort:        &model.DashboardCohort{ID: uuid.New(), Name: "Cohort 3"},
						UngradedCount: &ungraded,
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			verify: func(t *testing.T, body []byte) {
				var got model.StaffDashboard
				decodeEnvelope(t, body, "dashboard", &got)
				require.NotNil(t, got.Cohort)
				assert.Equal(t, "Cohort 3", got.Cohort.Name)
				assert.Equal(t, int64(4), *got.UngradedCount)
			},
		},
		{
			name:    "正常系: 進行中のコホートが無ければ cohorts=[]",
			headers: asUser(userID, model.RoleAdmin),
			setupMock: func(m *mocks.DashboardService) {
				m.On("StaffDashboard", mock.Anything, mock.Anything).
					Return(&model.StaffDashboard{Cohorts: &[]model.DashboardCohort{}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			verify: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `[]`, string(extractField(t, body, "dashboard", "cohorts")))
			},
		},
		{
			name:           "異常系: ヘッダーが無ければ 401",
			headers:        nil,
			setupMock:      func(m *mocks.DashboardService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:    "異常系: サービスの内部エラーは 500",
			headers: asUser(userID, model.RoleStudent),
			setupMock: func(m *mocks.DashboardService) {
				m.On("StudentDashboard", mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", model.ErrInternalServer)).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dashboardService := mocks.NewDashboardService(t)
			tc.setupMock(dashboardService)
			server := newTestServer(t, nil, handlers.Services{Dashboard: dashboardService})

			body := sendRequest(t, server,
				httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/dashboard", Headers: tc.headers},
				httpResponseExpectations{ExpectedCode: tc.expectedStatus, ExpectedErrorCode: tc.expectedCode},
			)
			if tc.verify != nil {
				tc.verify(t, body)
			}
		})
	}
}
