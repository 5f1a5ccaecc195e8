package shared

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/quill-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithLogger(t *testing.T, buf *bytes.Buffer) *http.Request {
	t.Helper()
	log := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/blog/create", nil)
	return req.WithContext(logger.WithLogger(req.Context(), log))
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "object",
			status:       http.StatusOK,
			data:         map[string]interface{}{"msg": "ok", "id": 1},
			expectedBody: `{"id":1,"msg":"ok"}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
			assert.Empty(t, w.Header().Get(TraceIDHeader))
		})
	}
}

func TestRespondWithJSON_TraceHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	w := httptest.NewRecorder()

	RespondWithMessage(w, req, http.StatusOK, "hello")

	assert.Equal(t, GetTraceID(req.Context()), w.Header().Get(TraceIDHeader))
	assert.JSONEq(t, `{"msg":"hello"}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	var buf bytes.Buffer
	req := requestWithLogger(t, &buf)
	w := httptest.NewRecorder()

	secret := errors.New("dial postgres://quill:hunter2@db:5432/quill failed")
	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "Something went wrong", secret)

	assert.JSONEq(t, `{"error":"Something went wrong"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "hunter2")

	logs := buf.String()
	assert.Contains(t, logs, `"level":"ERROR"`)
	assert.Contains(t, logs, "API error response")
	assert.NotContains(t, logs, "hunter2")
}

func TestLogError_Levels(t *testing.T) {
	tests := []struct {
		name   string
		status int
		opts   []ResponseOption
		level  string
	}{
		{name: "server error", status: http.StatusInternalServerError, level: "ERROR"},
		{name: "client error", status: http.StatusLengthRequired, level: "DEBUG"},
		{name: "elevated client error", status: http.StatusForbidden, opts: []ResponseOption{WithElevatedLogLevel()}, level: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			LogError(requestWithLogger(t, &buf), tt.status, "msg", errors.New("boom"), tt.opts...)
			require.NotEmpty(t, buf.String())
			assert.Contains(t, buf.String(), `"level":"`+tt.level+`"`)
		})
	}
}

func TestRespondWithMessageAndLog(t *testing.T) {
	var buf bytes.Buffer
	req := requestWithLogger(t, &buf)
	w := httptest.NewRecorder()

	RespondWithMessageAndLog(w, req.WithContext(context.WithoutCancel(req.Context())),
		http.StatusForbidden, "You are not authenticated !!", errors.New("bad signature"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"msg":"You are not authenticated !!"}`, w.Body.String())
}
