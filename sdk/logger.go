package sdk

import (
	"context"

	"go.uber.org/zap"
)

// Logger is the minimal logging surface the core needs.
type Logger interface {
	Infow(msg string, keysAndValues ...any)
}

type contextLoggerKeyT string

// ContextLoggerKey is the context key under which callers may provide their
// own Logger.
const ContextLoggerKey = contextLoggerKeyT("govern-logger")

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, ContextLoggerKey, logger)
}

// LoggerFrom extracts the logger from ctx, falling back to a production zap
// logger when none is set.
func LoggerFrom(ctx context.Context) Logger {
	value := ctx.Value(ContextLoggerKey)
	logger, ok := value.(Logger)
	if !ok {
		logger = zap.Must(zap.NewProduction()).Sugar()
	}

	return logger
}
