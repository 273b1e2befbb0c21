// internal/handlers/game_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_memory_game/internal/middleware"
	"go_5_memory_game/internal/model"
	"go_5_memory_game/internal/service"
	"go_5_memory_game/internal/webutil"
)

type GameHandler struct {
	service service.GameService
	logger  *slog.Logger
}

func NewGameHandler(s service.GameService, logger *slog.Logger) *GameHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameHandler{
		service: s,
		logger:  logger,
	}
}

// requestLogger prefers the request-scoped logger so req_id and learner_id are kept.
func requestLogger(r *http.Request, fallback *slog.Logger, handler string) *slog.Logger {
	logger := fallback
	if l := middleware.GetLogger(r.Context()); l != slog.Default() {
		logger = l
	}
	return logger.With(slog.String("handler", handler))
}

// PostGame は新しいゲーム (10ラウンド) を開始する
func (h *GameHandler) PostGame(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostGame")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	game, err := h.service.StartGame(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, game, logger)
}

// GetGame はゲームの現在の状態を返す
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetGame")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	gameID, err := webutil.URLParamUUID(r, "game_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	game, err := h.service.GetGame(r.Context(), learnerID, gameID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, game, logger)
}

// PutAnswer はラウンドへの回答を受け付ける
func (h *GameHandler) PutAnswer(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PutAnswer")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	gameID, err := webutil.URLParamUUID(r, "game_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	roundIndex, err := webutil.URLParamInt(r, "round_index")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid answer request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.SubmitAnswer(r.Context(), learnerID, gameID, roundIndex, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
