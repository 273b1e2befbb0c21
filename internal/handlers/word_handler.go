// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_memory_game/internal/middleware"
	"go_5_memory_game/internal/service"
	"go_5_memory_game/internal/webutil"
)

// WordHandler exposes the learner's word statistics.
type WordHandler struct {
	service service.GameService
	logger  *slog.Logger
}

func NewWordHandler(s service.GameService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// GetWords は単語ごとの正解数・不正解数・優先度を返す
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetWords")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.ListWordStats(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// DeleteWords は学習者の統計をリセットする
func (h *WordHandler) DeleteWords(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "DeleteWords")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.ResetStatistics(r.Context(), learnerID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
