package middleware

import (
	"net/http"

	"cohort_lms/internal/model"
	"cohort_lms/internal/webutil"

	"github.com/google/uuid"
)

const (
	DevUserIDHeader   = "X-User-ID"
	DevUserRoleHeader = "X-User-Role"
)

// DevAuthMiddleware は開発時とハンドラのテスト用
// X-User-ID (必須) と X-User-Role (省略時 student) から Principal を作る。DBは参照しない
func DevAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userID, err := uuid.Parse(r.Header.Get(DevUserIDHeader))
		if err != nil {
			logger.Warn("[DEV AUTH] Missing or invalid X-User-ID header")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID header must be a valid UUID", "", model.ErrUnauthorized))
			return
		}

		role := model.RoleStudent
		if raw := r.Header.Get(DevUserRoleHeader); raw != "" {
			if role, err = model.ParseRole(raw); err != nil {
				logger.Warn("[DEV AUTH] Invalid X-User-Role header", "role", raw)
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-Role header is not a valid role", "", model.ErrUnauthorized))
				return
			}
		}

		ctx := WithPrincipal(r.Context(), model.Principal{UserID: userID, Role: role})
		ctx = WithLogger(ctx, logger.With("user_id", userID.String()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
