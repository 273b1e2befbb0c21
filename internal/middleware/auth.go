package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_5_memory_game/internal/model"
	"go_5_memory_game/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// sub クレームの学習者IDをコンテキストにセットします。
func JWTAuthMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrForbidden))
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header must be 'Bearer <token>'.", "", model.ErrForbidden))
				return
			}

			token, err := jwt.Parse(headerParts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				if secretKey == "" {
					return nil, errors.New("jwt secret key is not configured")
				}
				return []byte(secretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token is invalid.", "", model.ErrForbidden))
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token carries no learner.", "", model.ErrForbidden))
				return
			}

			learnerID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token learner is malformed.", "", model.ErrForbidden))
				return
			}

			next.ServeHTTP(w, r.WithContext(withLearner(r.Context(), learnerID)))
		})
	}
}

// withLearner sets the learner ID and tags the request logger with it.
func withLearner(ctx context.Context, learnerID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, model.LearnerIDKey, learnerID)
	return WithLogger(ctx, GetLogger(ctx).With("learner_id", learnerID.String()))
}

func GetLearnerIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.LearnerIDKey).(uuid.UUID)
	if !ok {
		// ミドルウェアが正しく動作していない等の内部エラー
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Learner could not be read from the request context.", "", model.ErrInternalServer)
	}
	return value, nil
}
