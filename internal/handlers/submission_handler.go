package handlers

import (
	"log/slog"
	"net/http"

	"cohort_lms/internal/model"
	"cohort_lms/internal/service"
	"cohort_lms/internal/webutil"
)

type SubmissionHandler struct {
	service service.SubmissionService
}

func NewSubmissionHandler(s service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: s}
}

// ListSubmissions は GET /submissions
// 講師・管理者は user_id, module_id, ungraded で絞り込める。受講者は常に自分の提出のみ
func (h *SubmissionHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListSubmissions")

	principal, ok := requirePrincipal(w, r, logger)
	if !ok {
		return
	}

	var filter model.SubmissionFilter
	var err error
	if filter.UserID, err = webutil.QueryUUID(r, "user_id"); err != nil {
		writeError(w, logger, "Invalid user_id query", err)
		return
	}
	if filter.ModuleID, err = webutil.QueryUUID(r, "module_id"); err != nil {
		writeError(w, logger, "Invalid module_id query", err)
		return
	}
	if filter.Ungraded, err = webutil.QueryBool(r, "ungraded"); err != nil {
		writeError(w, logger, "Invalid ungraded query", err)
		return
	}

	submissions, err := h.service.List(r.Context(), principal, filter)
	if err != nil {
		writeError(w, logger, "Error listing submissions in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"submissions": submissions}, logger)
}

// CreateSubmission は POST /submissions
func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateSubmission")

	principal, ok := requirePrincipal(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateSubmissionRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid submission request", err)
		return
	}

	submission, err := h.service.Submit(r.Context(), principal, &req)
	if err != nil {
		writeError(w, logger, "Error creating submission in service", err)
		return
	}
	logger.Info("Submission created", slog.String("submission_id", submission.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, envelope{"submission": submission}, logger)
}

// GetSubmission は GET /submissions/{id}
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetSubmission")

	principal, ok := requirePrincipal(w, r, logger)
	if !ok {
		return
	}
	submissionID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid submission ID format in URL", err)
		return
	}

	submission, err := h.service.Get(r.Context(), principal, submissionID)
	if err != nil {
		writeError(w, logger, "Error getting submission in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"submission": submission}, logger)
}

// UpdateSubmission は PATCH /submissions/{id}
func (h *SubmissionHandler) UpdateSubmission(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateSubmission")

	principal, ok := requirePrincipal(w, r, logger)
	if !ok {
		return
	}
	submissionID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid submission ID format in URL", err)
		return
	}

	var req model.UpdateSubmissionRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid submission update request", err)
		return
	}

	submission, err := h.service.Update(r.Context(), principal, submissionID, &req)
	if err != nil {
		writeError(w, logger, "Error updating submission in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"submission": submission}, logger)
}

// GradeSubmission は PATCH /submissions/{id}/grade (講師・管理者)
func (h *SubmissionHandler) GradeSubmission(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GradeSubmission")

	principal, ok := requirePrincipal(w, r, logger)
	if !ok {
		return
	}
	submissionID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid submission ID format in URL", err)
		return
	}

	var req model.GradeSubmissionRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid grade request", err)
		return
	}

	submission, err := h.service.Grade(r.Context(), principal, submissionID, &req)
	if err != nil {
		writeError(w, logger, "Error grading submission in service", err)
		return
	}
	logger.Info("Submission graded", slog.String("submission_id", submissionID.String()), slog.String("grade", req.Grade))
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"submission": submission}, logger)
}
