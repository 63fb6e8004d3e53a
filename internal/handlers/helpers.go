package handlers

import (
	"log/slog"
	"net/http"

	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"
	"cohort_lms/internal/webutil"
)

// envelope はレスポンスを {"<name>": ...} で包む
type envelope map[string]interface{}

// handlerLogger はリクエストスコープのロガーにハンドラ名を付ける
func handlerLogger(r *http.Request, name string) *slog.Logger {
	return middleware.GetLogger(r.Context()).With(slog.String("handler", name))
}

// requirePrincipal は認証ミドルウェアが入れた Principal を取り出す。無ければ 401 を返して false
func requirePrincipal(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (model.Principal, bool) {
	principal, err := middleware.GetPrincipal(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return model.Principal{}, false
	}
	return principal, true
}

// writeError は 4xx を Warn で記録してからエラーを返す (5xx は HandleError が Error で記録する)
func writeError(w http.ResponseWriter, logger *slog.Logger, msg string, err error) {
	if webutil.MapErrorToStatusCode(err) < http.StatusInternalServerError {
		logger.Warn(msg, slog.Any("error", err))
	}
	webutil.HandleError(w, logger, err)
}
