package handlers

import (
	"net/http"

	"cohort_lms/internal/service"
	"cohort_lms/internal/webutil"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboard は講師・管理者ならコホートの概要、受講者なら自分の進捗を返す
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetDashboard")

	principal, ok := requirePrincipal(w, r, logger)
	if !ok {
		return
	}

	if principal.IsStaff() {
		dashboard, err := h.service.StaffDashboard(r.Context(), principal)
		if err != nil {
			writeError(w, logger, "Error building staff dashboard", err)
			return
		}
		webutil.RespondWithJSON(w, http.StatusOK, envelope{"dashboard": dashboard}, logger)
		return
	}

	dashboard, err := h.service.StudentDashboard(r.Context(), principal)
	if err != nil {
		writeError(w, logger, "Error building student dashboard", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, envelope{"dashboard": dashboard}, logger)
}
