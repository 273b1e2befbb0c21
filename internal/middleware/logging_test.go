package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestGetLogger_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), GetLogger(context.Background()))
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var inner *slog.Logger
	h := chimiddleware.RequestID(LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = GetLogger(r.Context())
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/games", strings.NewReader(`{"x":1}`))
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, `{"ok":true}`, rec.Body.String())
	assert.NotNil(t, inner)
	assert.NotSame(t, logger, inner)

	out := buf.String()
	assert.Contains(t, out, "Request started")
	assert.Contains(t, out, "Request completed")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "req_id=")
	assert.Contains(t, out, "[SENSITIVE]")
	assert.NotContains(t, out, "secret-token")
}
