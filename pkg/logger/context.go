package logger

import (
	"context"

	"go.uber.org/zap"
)

type logKey struct{}

// From returns the request logger carried by ctx. Without one it falls back
// to zap's global logger, which main replaces at start up.
func From(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(logKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.L()
}

func With(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, logKey{}, l)
}
