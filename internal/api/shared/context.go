package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"
)

// ContextKey is the type of request context keys set by the API layer.
type ContextKey string

const (
	// UserIDContextKey holds the uuid.UUID of the authenticated caller.
	UserIDContextKey ContextKey = "userID"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters

	// TraceIDHeader carries the trace ID back to the client.
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a fresh trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns 16 random bytes as hex. If crypto/rand fails it
// falls back to a time-derived ID rather than a static value.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	n, err := rand.Read(b)
	if err != nil || n != TraceIDLength {
		slog.Error("failed to generate secure random trace ID",
			slog.Any("error", err),
			slog.Int("bytes_read", n))
		return generateFallbackTraceID(time.Now())
	}

	return hex.EncodeToString(b)
}

func generateFallbackTraceID(now time.Time) string {
	id := make([]byte, TraceIDLength)
	binary.BigEndian.PutUint64(id[:8], uint64(now.UnixNano()))
	binary.BigEndian.PutUint32(id[8:12], uint32(now.Nanosecond()))
	binary.BigEndian.PutUint32(id[12:16], uint32(now.Unix()))
	return hex.EncodeToString(id)
}
