package utils

import (
	"context"
	"log"
	"strings"
)

type requestIDCtxKey struct{}

// WithRequestID stores the request id on the context so service-layer logs can
// correlate with the HTTP access log.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey{}, rid)
}

// RequestIDFrom returns the request id carried by ctx, if any.
func RequestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if rid, ok := ctx.Value(requestIDCtxKey{}).(string); ok {
		return rid
	}
	return ""
}

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// LogEventCtx is LogEvent with the request id taken from the context.
func LogEventCtx(ctx context.Context, module, action, message string) {
	LogEvent(RequestIDFrom(ctx), module, action, message)
}
