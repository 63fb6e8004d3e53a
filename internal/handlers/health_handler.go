package handlers

import (
	"context"
	"net/http"
	"time"

	"cohort_lms/internal/webutil"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health は DB に ping できれば 200、できなければ 503
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "Health")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.Error("Database ping failed", "error", err)
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}, logger)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}
