package handlers

import (
	"net/http"

	"cohort_lms/internal/model"
	"cohort_lms/internal/service"
	"cohort_lms/internal/webutil"
)

// UserHandler はセッション・プロフィール・ユーザー管理のエンドポイント
type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// CreateSession はログイン直後にフロントエンドから呼ばれ、ユーザー情報を同期して返す
func (h *UserHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateSession")

	principal, ok := requirePrincipal(w, r, logger)
	if !ok {
		return
	}

	user, err := h.service.SyncSession(r.Context(), principal)
	if err != nil {
		writeError(w, logger, "Error syncing session in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetProfile")

	principal, ok := requirePrincipal(w, r, logger)
	if !ok {
		return
	}

	user, err := h.service.GetProfile(r.Context(), principal)
	if err != nil {
		writeError(w, logger, "Error getting profile in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateProfile")

	principal, ok := requirePrincipal(w, r, logger)
	if !ok {
		return
	}
	var req model.UpdateProfileRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid profile update request", err)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), principal, &req)
	if err != nil {
		writeError(w, logger, "Error updating profile in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// ListUsers は ?role=student などで絞り込める
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListUsers")

	var role *model.Role
	if raw := r.URL.Query().Get("role"); raw != "" {
		parsed, err := model.ParseRole(raw)
		if err != nil {
			writeError(w, logger, "Invalid role query parameter",
				model.NewAppError("INVALID_QUERY_PARAM", "role must be one of student, instructor, admin", "role", model.ErrInvalidInput))
			return
		}
		role = &parsed
	}

	users, err := h.service.ListUsers(r.Context(), role)
	if err != nil {
		writeError(w, logger, "Error listing users in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"users": users}, logger)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetUser")

	userID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid user ID format in URL", err)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, logger, "Error getting user in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateUser")

	userID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		writeError(w, logger, "Invalid user ID format in URL", err)
		return
	}
	var req model.UpdateUserRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		writeError(w, logger, "Invalid user update request", err)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		writeError(w, logger, "Error updating user in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"user": user}, logger)
}
