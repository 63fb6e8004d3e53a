package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cohort_lms/internal/config"
	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"
	"cohort_lms/internal/service/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-hmac-secret"

// principalEcho はコンテキストの Principal を JSON で返す
var principalEcho = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.GetPrincipal(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"user_id": principal.UserID.String(), "role": principal.Role.String()})
})

func signToken(t *testing.T, secret string, claims model.IdPClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp), "body: %s", string(body))
	return resp.Error.Code
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{HMACSecret: testSecret, Issuer: "https://clerk.example.com"}}
	user := &model.User{ID: uuid.New(), Email: "sam@example.com", Role: model.RoleInstructor}

	validClaims := model.IdPClaims{
		Email: "sam@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_2abc",
			Issuer:    "https://clerk.example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	tests := []struct {
		name           string
		header         string
		setupMock      func(m *mocks.UserService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "正常系: 有効なトークン",
			header: "Bearer " + signToken(t, testSecret, validClaims),
			setupMock: func(m *mocks.UserService) {
				m.On("ResolveIdentity", mock.Anything, model.IdentityClaims{Subject: "user_2abc", Email: "sam@example.com"}).
					Return(user, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: Authorization ヘッダーなし",
			setupMock:      func(m *mocks.UserService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "異常系: Bearer 以外の形式",
			header:         "Basic dXNlcjpwYXNz",
			setupMock:      func(m *mocks.UserService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name: "異常系: 期限切れ",
			header: "Bearer " + signToken(t, testSecret, model.IdPClaims{RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user_2abc",
				Issuer:    "https://clerk.example.com",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			}}),
			setupMock:      func(m *mocks.UserService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name: "異常系: exp がない",
			header: "Bearer " + signToken(t, testSecret, model.IdPClaims{RegisteredClaims: jwt.RegisteredClaims{
				Subject: "user_2abc",
				Issuer:  "https://clerk.example.com",
			}}),
			setupMock:      func(m *mocks.UserService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name:           "異常系: 署名の鍵が違う",
			header:         "Bearer " + signToken(t, "other-secret", validClaims),
			setupMock:      func(m *mocks.UserService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name: "異常系: issuer が違う",
			header: "Bearer " + signToken(t, testSecret, model.IdPClaims{RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user_2abc",
				Issuer:    "https://evil.example.com",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}}),
			setupMock:      func(m *mocks.UserService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name:   "異常系: ユーザーを解決できない",
			header: "Bearer " + signToken(t, testSecret, validClaims),
			setupMock: func(m *mocks.UserService) {
				m.On("ResolveIdentity", mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("UNAUTHORIZED", "Unable to determine email for user", "", model.ErrUnauthorized)).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			userService := mocks.NewUserService(t)
			tc.setupMock(userService)

			authMiddleware, err := middleware.JWTAuthMiddleware(cfg, userService)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			authMiddleware(principalEcho).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, errorCode(t, rec.Body.Bytes()))
				return
			}
			assert.JSONEq(t, `{"user_id":"`+user.ID.String()+`","role":"instructor"}`, rec.Body.String())
		})
	}
}

func TestJWTAuthMiddleware_Config(t *testing.T) {
	t.Run("異常系: 鍵が無ければ作成に失敗する", func(t *testing.T) {
		_, err := middleware.JWTAuthMiddleware(&config.Config{}, mocks.NewUserService(t))
		require.Error(t, err)
	})

	t.Run("異常系: 不正な PEM", func(t *testing.T) {
		_, err := middleware.JWTAuthMiddleware(&config.Config{JWT: config.JWTConfig{RSAPublicKeyPEM: "not a pem"}}, mocks.NewUserService(t))
		require.Error(t, err)
	})
}

func TestDevAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		headers        map[string]string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "正常系: ロール省略時は student",
			headers:        map[string]string{middleware.DevUserIDHeader: userID.String()},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"user_id":"` + userID.String() + `","role":"student"}`,
		},
		{
			name:           "正常系: admin",
			headers:        map[string]string{middleware.DevUserIDHeader: userID.String(), middleware.DevUserRoleHeader: "admin"},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"user_id":"` + userID.String() + `","role":"admin"}`,
		},
		{
			name:           "異常系: X-User-ID なし",
			headers:        map[string]string{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: 不明なロール",
			headers:        map[string]string{middleware.DevUserIDHeader: userID.String(), middleware.DevUserRoleHeader: "root"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			middleware.DevAuthMiddleware(principalEcho).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			} else {
				assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec.Body.Bytes()))
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	serve := func(h http.Handler, principal *model.Principal) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if principal != nil {
			req = req.WithContext(middleware.WithPrincipal(req.Context(), *principal))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	student := model.Principal{UserID: uuid.New(), Role: model.RoleStudent}
	instructor := model.Principal{UserID: uuid.New(), Role: model.RoleInstructor}
	admin := model.Principal{UserID: uuid.New(), Role: model.RoleAdmin}

	assert.Equal(t, http.StatusForbidden, serve(middleware.RequireStaff(ok), &student).Code)
	assert.Equal(t, http.StatusNoContent, serve(middleware.RequireStaff(ok), &instructor).Code)
	assert.Equal(t, http.StatusNoContent, serve(middleware.RequireStaff(ok), &admin).Code)

	assert.Equal(t, http.StatusForbidden, serve(middleware.RequireAdmin(ok), &instructor).Code)
	assert.Equal(t, http.StatusNoContent, serve(middleware.RequireAdmin(ok), &admin).Code)

	rec := serve(middleware.RequireAdmin(ok), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec.Body.Bytes()))
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := middleware.LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"status":"completed"}`, string(body), "body must still be readable after logging")

		middleware.GetLogger(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"NOT_FOUND"}}`))
	}))

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/progress", bytes.NewBufferString(`{"status":"completed"}`))
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var completed map[string]interface{}
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Contains(t, entry, "req_id")
		if entry["msg"] == "Request completed" {
			completed = entry
		}
	}
	require.NotNil(t, completed)
	assert.Equal(t, "WARN", completed["level"])
	assert.EqualValues(t, http.StatusNotFound, completed["status"])

	assert.Contains(t, buf.String(), "inside handler")
	assert.Contains(t, buf.String(), "[SENSITIVE]")
	assert.NotContains(t, buf.String(), "secret-token")
}

func TestGetLogger_Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, slog.Default(), middleware.GetLogger(req.Context()))

	_, err := middleware.GetPrincipal(req.Context())
	assert.True(t, errors.Is(err, model.ErrUnauthorized))
}
