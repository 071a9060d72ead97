//go:build notrace

package xmlb

import (
	"context"
	"log/slog"
)

// No-op implementations when built with -tags notrace

type traceLoggerKey struct{}

// WithTraceLogger adds a trace logger to the context - no-op version
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	return ctx
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
