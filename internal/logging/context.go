package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type ctxKey struct{}

//nolint:gochecknoglobals // Package-level context key is idiomatic
var loggerCtxKey = ctxKey{}

// WithLogger attaches a logger to the context. The command layer puts its
// logger here so everything below it logs through the same instance.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// FromContext returns the logger attached to the context, falling back to
// the package default when none is present.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
