package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_memory_game/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: model.ErrNotFound, want: http.StatusNotFound},
		{name: "wrapped invalid input", err: fmt.Errorf("x: %w", model.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "conflict app error", err: model.NewAppError("ROUND_NOT_CURRENT", "m", "", model.ErrConflict), want: http.StatusConflict},
		{name: "forbidden", err: model.ErrForbidden, want: http.StatusForbidden},
		{name: "empty pool", err: model.NewAppError("EMPTY_POOL", "m", "", fmt.Errorf("create round 0: %w", model.ErrEmptyPool)), want: http.StatusServiceUnavailable},
		{name: "storage write", err: model.NewAppError("STATISTICS_SAVE_FAILED", "m", "", model.ErrStorageWrite), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, discard, model.NewAppError("GAME_NOT_FOUND", "Game x was not found.", "game_id", model.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":{"code":"GAME_NOT_FOUND","message":"Game x was not found.","field":"game_id"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	HandleError(rec, nil, errors.New("database exploded"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "exploded")
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantErr   bool
	}{
		{name: "ok", body: `{"selected":"Katze"}`},
		{name: "missing selected", body: `{}`, wantErr: true, wantField: "selected"},
		{name: "unknown field", body: `{"selected":"Katze","extra":1}`, wantErr: true},
		{name: "not json", body: `selected=Katze`, wantErr: true},
		{name: "too long", body: `{"selected":"` + strings.Repeat("a", 201) + `"}`, wantErr: true, wantField: "selected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(tt.body))
			var dst model.SubmitAnswerRequest

			err := DecodeAndValidate(req, &dst)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "Katze", dst.Selected)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)

			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, appErr.Detail.Field)
				assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
			}
		})
	}
}

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithJSON(rec, http.StatusCreated, map[string]int{"n": 1}, discard)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got["n"])

	rec = httptest.NewRecorder()
	RespondWithJSON(rec, http.StatusOK, map[string]interface{}{"f": func() {}}, discard)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
