package handlers

import (
	"log/slog"
	"net/http"

	"cohort_lms/internal/model"
	"cohort_lms/internal/service"
	"cohort_lms/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// UpdateProgress は PATCH /progress
func (h *ProgressHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateProgress")

	principal, ok := requirePrincipal(w, r, logger)
	if !ok {
		return
	}

	var req model.UpdateProgressRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid progress request", err)
		return
	}

	progress, err := h.service.UpdateProgress(r.Context(), principal, &req)
	if err != nil {
		writeError(w, logger, "Error updating progress in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"progress": progress}, logger)
}

// ListProgress は GET /progress?module_id=&lesson_id=
func (h *ProgressHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListProgress")

	principal, ok := requirePrincipal(w, r, logger)
	if !ok {
		return
	}

	var filter model.ProgressFilter
	var err error
	if filter.ModuleID, err = webutil.QueryUUID(r, "module_id"); err != nil {
		writeError(w, logger, "Invalid module_id query", err)
		return
	}
	if filter.LessonID, err = webutil.QueryUUID(r, "lesson_id"); err != nil {
		writeError(w, logger, "Invalid lesson_id query", err)
		return
	}

	progress, err := h.service.ListProgress(r.Context(), principal, filter)
	if err != nil {
		writeError(w, logger, "Error listing progress in service", err)
		return
	}
	logger.Debug("Progress listed", slog.Int("count", len(progress)))
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"progress": progress}, logger)
}

// GetStudentProgress は GET /progress/student/{user_id} (講師・管理者)
func (h *ProgressHandler) GetStudentProgress(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetStudentProgress")

	userID, err := webutil.URLParamUUID(r, "user_id")
	if err != nil {
		writeError(w, logger, "Invalid user ID format in URL", err)
		return
	}

	progress, err := h.service.StudentProgress(r.Context(), userID)
	if err != nil {
		writeError(w, logger, "Error getting student progress in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}
