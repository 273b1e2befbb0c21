package handlers

import (
	"log/slog"
	"net/http"

	"go_5_memory_game/internal/repository"
	"go_5_memory_game/internal/webutil"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewHealthHandler(db *gorm.DB, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{db: db, logger: logger}
}

// GetHealth はDB接続を確認する
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	if err := repository.Ping(r.Context(), h.db); err != nil {
		h.logger.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}, h.logger)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}
