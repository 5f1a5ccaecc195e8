package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/quill-api/internal/api/shared"
	"github.com/phrazzld/quill-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var traceID string
	handler := chimiddleware.RequestID(TraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		shared.RespondWithMessage(w, r, http.StatusOK, "ok")
	})))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Len(t, traceID, 32)
	assert.Equal(t, traceID, w.Header().Get(shared.TraceIDHeader))

	logs := buf.String()
	assert.Contains(t, logs, "request started")
	assert.Contains(t, logs, "inside handler")
	assert.Contains(t, logs, `"trace_id":"`+traceID+`"`)
	assert.Contains(t, logs, `"request_id"`)
}
