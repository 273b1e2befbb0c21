// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"go_5_memory_game/internal/model"
	"go_5_memory_game/internal/webutil"

	"github.com/google/uuid"
)

const LearnerIDHeader = "X-Learner-ID"

// DevLearnerContextMiddleware は開発時用ミドルウェアです。
// X-Learner-ID ヘッダーのUUIDをそのまま学習者IDとして使います。
func DevLearnerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get(LearnerIDHeader)
		if raw == "" {
			logger.Warn("[DEV AUTH] Failed: X-Learner-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Learner-ID header is required.", LearnerIDHeader, model.ErrForbidden))
			return
		}

		learnerID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-Learner-ID format", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Learner-ID must be a UUID.", LearnerIDHeader, model.ErrForbidden))
			return
		}

		logger.Debug("[DEV AUTH] Learner ID set to context (no validation)", "learner_id", learnerID.String())
		next.ServeHTTP(w, r.WithContext(withLearner(r.Context(), learnerID)))
	})
}
