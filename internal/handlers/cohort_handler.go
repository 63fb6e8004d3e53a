package handlers

import (
	"log/slog"
	"net/http"

	"cohort_lms/internal/model"
	"cohort_lms/internal/service"
	"cohort_lms/internal/webutil"
)

// CohortHandler はコホート・受講登録・モジュール割り当てのエンドポイント
type CohortHandler struct {
	service service.CohortService
}

func NewCohortHandler(s service.CohortService) *CohortHandler {
	return &CohortHandler{service: s}
}

func (h *CohortHandler) ListCohorts(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListCohorts")

	cohorts, err := h.service.ListCohorts(r.Context())
	if err != nil {
		writeError(w, logger, "Error listing cohorts in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"cohorts": cohorts}, logger)
}

func (h *CohortHandler) GetCohort(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetCohort")

	cohortID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid cohort ID format in URL", err)
		return
	}

	cohort, err := h.service.GetCohort(r.Context(), cohortID)
	if err != nil {
		writeError(w, logger, "Error getting cohort in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"cohort": cohort}, logger)
}

func (h *CohortHandler) CreateCohort(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateCohort")

	var req model.CreateCohortRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid cohort request", err)
		return
	}

	cohort, err := h.service.CreateCohort(r.Context(), &req)
	if err != nil {
		writeError(w, logger, "Error creating cohort in service", err)
		return
	}
	logger.Info("Cohort created", slog.String("cohort_id", cohort.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, envelope{"cohort": cohort}, logger)
}

func (h *CohortHandler) UpdateCohort(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateCohort")

	cohortID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid cohort ID format in URL", err)
		return
	}
	var req model.UpdateCohortRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid cohort update request", err)
		return
	}

	cohort, err := h.service.UpdateCohort(r.Context(), cohortID, &req)
	if err != nil {
		writeError(w, logger, "Error updating cohort in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"cohort": cohort}, logger)
}

func (h *CohortHandler) DeleteCohort(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteCohort")

	cohortID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid cohort ID format in URL", err)
		return
	}
	if err := h.service.DeleteCohort(r.Context(), cohortID); err != nil {
		writeError(w, logger, "Error deleting cohort in service", err)
		return
	}
	webutil.RespondNoContent(w)
}

func (h *CohortHandler) ListEnrollments(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListEnrollments")

	cohortID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid cohort ID format in URL", err)
		return
	}

	enrollments, err := h.service.ListEnrollments(r.Context(), cohortID)
	if err != nil {
		writeError(w, logger, "Error listing enrollments in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"enrollments": enrollments}, logger)
}

func (h *CohortHandler) CreateEnrollment(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateEnrollment")

	cohortID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid cohort ID format in URL", err)
		return
	}
	var req model.CreateEnrollmentRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid enrollment request", err)
		return
	}

	enrollment, err := h.service.CreateEnrollment(r.Context(), cohortID, &req)
	if err != nil {
		writeError(w, logger, "Error creating enrollment in service", err)
		return
	}
	logger.Info("Enrollment created",
		slog.String("enrollment_id", enrollment.ID.String()),
		slog.String("cohort_id", cohortID.String()),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, envelope{"enrollment": enrollment}, logger)
}

func (h *CohortHandler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetEnrollment")

	enrollmentID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid enrollment ID format in URL", err)
		return
	}

	enrollment, err := h.service.GetEnrollment(r.Context(), enrollmentID)
	if err != nil {
		writeError(w, logger, "Error getting enrollment in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"enrollment": enrollment}, logger)
}

func (h *CohortHandler) UpdateEnrollment(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateEnrollment")

	enrollmentID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid enrollment ID format in URL", err)
		return
	}
	var req model.UpdateEnrollmentRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid enrollment update request", err)
		return
	}

	enrollment, err := h.service.UpdateEnrollment(r.Context(), enrollmentID, &req)
	if err != nil {
		writeError(w, logger, "Error updating enrollment in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"enrollment": enrollment}, logger)
}

func (h *CohortHandler) DeleteEnrollment(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteEnrollment")

	enrollmentID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid enrollment ID format in URL", err)
		return
	}
	if err := h.service.DeleteEnrollment(r.Context(), enrollmentID); err != nil {
		writeError(w, logger, "Error deleting enrollment in service", err)
		return
	}
	webutil.RespondNoContent(w)
}

// SetModuleOverride は受講者ごとのモジュール解放日を上書きする。null で解除
func (h *CohortHandler) SetModuleOverride(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "SetModuleOverride")

	enrollmentID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid enrollment ID format in URL", err)
		return
	}
	moduleID, err := webutil.URLParamUUID(r, "module_id")
	if err != nil {
		writeError(w, logger, "Invalid module ID format in URL", err)
		return
	}
	var req model.SetUnlockOverrideRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid unlock override request", err)
		return
	}

	assignment, err := h.service.SetModuleOverride(r.Context(), enrollmentID, moduleID, &req)
	if err != nil {
		writeError(w, logger, "Error setting unlock override in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"module_assignment": assignment}, logger)
}
