package handlers

import (
	"net/http"

	"cohort_lms/internal/model"
	"cohort_lms/internal/service"
	"cohort_lms/internal/webutil"
)

// LessonHandler はレッスンとコンテンツブロックのエンドポイント
type LessonHandler struct {
	service service.LessonService
}

func NewLessonHandler(s service.LessonService) *LessonHandler {
	return &LessonHandler{service: s}
}

func (h *LessonHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListLessons")

	moduleID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid module ID format in URL", err)
		return
	}

	lessons, err := h.service.ListLessons(r.Context(), moduleID)
	if err != nil {
		writeError(w, logger, "Error listing lessons in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"lessons": lessons}, logger)
}

// GetLesson はブロック本文の HTML、本人の進捗と提出、前後のレッスンを含めて返す
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetLesson")

	principal, ok := requirePrincipal(w, r, logger)
	if !ok {
		return
	}
	lessonID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid lesson ID format in URL", err)
		return
	}

	lesson, err := h.service.GetLessonDetail(r.Context(), principal, lessonID)
	if err != nil {
		writeError(w, logger, "Error getting lesson in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"lesson": lesson}, logger)
}

func (h *LessonHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateLesson")

	moduleID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid module ID format in URL", err)
		return
	}
	var req model.CreateLessonRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid lesson request", err)
		return
	}

	lesson, err := h.service.CreateLesson(r.Context(), moduleID, &req)
	if err != nil {
		writeError(w, logger, "Error creating lesson in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, envelope{"lesson": lesson}, logger)
}

func (h *LessonHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateLesson")

	lessonID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid lesson ID format in URL", err)
		return
	}
	var req model.UpdateLessonRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid lesson update request", err)
		return
	}

	lesson, err := h.service.UpdateLesson(r.Context(), lessonID, &req)
	if err != nil {
		writeError(w, logger, "Error updating lesson in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"lesson": lesson}, logger)
}

func (h *LessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteLesson")

	lessonID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid lesson ID format in URL", err)
		return
	}
	if err := h.service.DeleteLesson(r.Context(), lessonID); err != nil {
		writeError(w, logger, "Error deleting lesson in service", err)
		return
	}
	webutil.RespondNoContent(w)
}

func (h *LessonHandler) ListContentBlocks(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListContentBlocks")

	lessonID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid lesson ID format in URL", err)
		return
	}

	blocks, err := h.service.ListContentBlocks(r.Context(), lessonID)
	if err != nil {
		writeError(w, logger, "Error listing content blocks in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"content_blocks": blocks}, logger)
}

func (h *LessonHandler) GetContentBlock(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetContentBlock")

	blockID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid content block ID format in URL", err)
		return
	}

	block, err := h.service.GetContentBlock(r.Context(), blockID)
	if err != nil {
		writeError(w, logger, "Error getting content block in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"content_block": block}, logger)
}

func (h *LessonHandler) CreateContentBlock(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateContentBlock")

	lessonID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid lesson ID format in URL", err)
		return
	}
	var req model.CreateContentBlockRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid content block request", err)
		return
	}

	block, err := h.service.CreateContentBlock(r.Context(), lessonID, &req)
	if err != nil {
		writeError(w, logger, "Error creating content block in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, envelope{"content_block": block}, logger)
}

func (h *LessonHandler) UpdateContentBlock(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateContentBlock")

	blockID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid content block ID format in URL", err)
		return
	}
	var req model.UpdateContentBlockRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid content block update request", err)
		return
	}

	block, err := h.service.UpdateContentBlock(r.Context(), blockID, &req)
	if err != nil {
		writeError(w, logger, "Error updating content block in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"content_block": block}, logger)
}

func (h *LessonHandler) DeleteContentBlock(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteContentBlock")

	blockID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid content block ID format in URL", err)
		return
	}
	if err := h.service.DeleteContentBlock(r.Context(), blockID); err != nil {
		writeError(w, logger, "Error deleting content block in service", err)
		return
	}
	webutil.RespondNoContent(w)
}
