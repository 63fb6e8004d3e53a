package handlers

import (
	"log/slog"
	"net/http"

	"cohort_lms/internal/model"
	"cohort_lms/internal/service"
	"cohort_lms/internal/webutil"
)

// CurriculumHandler はカリキュラムとモジュールのエンドポイント
type CurriculumHandler struct {
	service service.CurriculumService
}

func NewCurriculumHandler(s service.CurriculumService) *CurriculumHandler {
	return &CurriculumHandler{service: s}
}

func (h *CurriculumHandler) ListCurricula(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListCurricula")

	curricula, err := h.service.ListCurricula(r.Context())
	if err != nil {
		writeError(w, logger, "Error listing curricula in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"curricula": curricula}, logger)
}

func (h *CurriculumHandler) GetCurriculum(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetCurriculum")

	curriculumID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid curriculum ID format in URL", err)
		return
	}

	curriculum, err := h.service.GetCurriculum(r.Context(), curriculumID)
	if err != nil {
		writeError(w, logger, "Error getting curriculum in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"curriculum": curriculum}, logger)
}

func (h *CurriculumHandler) CreateCurriculum(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateCurriculum")

	var req model.CreateCurriculumRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid curriculum request", err)
		return
	}

	curriculum, err := h.service.CreateCurriculum(r.Context(), &req)
	if err != nil {
		writeError(w, logger, "Error creating curriculum in service", err)
		return
	}
	logger.Info("Curriculum created", slog.String("curriculum_id", curriculum.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, envelope{"curriculum": curriculum}, logger)
}

func (h *CurriculumHandler) UpdateCurriculum(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateCurriculum")

	curriculumID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid curriculum ID format in URL", err)
		return
	}
	var req model.UpdateCurriculumRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid curriculum update request", err)
		return
	}

	curriculum, err := h.service.UpdateCurriculum(r.Context(), curriculumID, &req)
	if err != nil {
		writeError(w, logger, "Error updating curriculum in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"curriculum": curriculum}, logger)
}

func (h *CurriculumHandler) DeleteCurriculum(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteCurriculum")

	curriculumID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid curriculum ID format in URL", err)
		return
	}
	if err := h.service.DeleteCurriculum(r.Context(), curriculumID); err != nil {
		writeError(w, logger, "Error deleting curriculum in service", err)
		return
	}
	webutil.RespondNoContent(w)
}

func (h *CurriculumHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListModules")

	curriculumID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid curriculum ID format in URL", err)
		return
	}

	modules, err := h.service.ListModules(r.Context(), curriculumID)
	if err != nil {
		writeError(w, logger, "Error listing modules in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"modules": modules}, logger)
}

func (h *CurriculumHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetModule")

	moduleID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid module ID format in URL", err)
		return
	}

	module, err := h.service.GetModule(r.Context(), moduleID)
	if err != nil {
		writeError(w, logger, "Error getting module in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"module": module}, logger)
}

func (h *CurriculumHandler) CreateModule(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateModule")

	curriculumID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid curriculum ID format in URL", err)
		return
	}
	var req model.CreateModuleRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid module request", err)
		return
	}

	module, err := h.service.CreateModule(r.Context(), curriculumID, &req)
	if err != nil {
		writeError(w, logger, "Error creating module in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, envelope{"module": module}, logger)
}

func (h *CurriculumHandler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateModule")

	moduleID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid module ID format in URL", err)
		return
	}
	var req model.UpdateModuleRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid module update request", err)
		return
	}

	module, err := h.service.UpdateModule(r.Context(), moduleID, &req)
	if err != nil {
		writeError(w, logger, "Error updating module in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"module": module}, logger)
}

func (h *CurriculumHandler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteModule")

	moduleID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid module ID format in URL", err)
		return
	}
	if err := h.service.DeleteModule(r.Context(), moduleID); err != nil {
		writeError(w, logger, "Error deleting module in service", err)
		return
	}
	webutil.RespondNoContent(w)
}
