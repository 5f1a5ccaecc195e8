package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/quill-api/internal/platform/logger"
	"github.com/phrazzld/quill-api/internal/redact"
)

// MessageResponse is the {"msg": ...} body used for both successes and
// client-facing failures.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the {"error": ...} body used for server-side failures.
// The trace ID travels in the X-Trace-ID header so the body keeps its shape.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"-"` // Not serialized to JSON, used for logging
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel raises the log level of a 4xx response from DEBUG to
// WARN.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if traceID := GetTraceID(r.Context()); traceID != "" {
		w.Header().Set(TraceIDHeader, traceID)
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// RespondWithMessage writes a {"msg": message} body.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, MessageResponse{Msg: message})
}

// LogError logs err, redacted, at a level chosen from status:
// 5xx at ERROR, 4xx at DEBUG unless elevated to WARN.
func LogError(r *http.Request, status int, userMessage string, err error, opts ...ResponseOption) {
	attrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	level := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case responseOpts.elevateLogLevel && status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), level, "API error response", attrs...)
}

// RespondWithErrorAndLog logs the detailed error and writes only the safe
// message to the client as {"error": userMessage}.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	LogError(r, status, userMessage, err, opts...)
	RespondWithJSON(w, r, status, ErrorResponse{Error: userMessage, Code: status})
}

// RespondWithMessageAndLog is RespondWithErrorAndLog for failures reported
// under the "msg" key.
func RespondWithMessageAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	LogError(r, status, userMessage, err, opts...)
	RespondWithMessage(w, r, status, userMessage)
}
