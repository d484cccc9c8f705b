package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithEngineID creates a child logger with an engine_id field
func WithEngineID(ctx context.Context, engineID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("engine_id", engineID).Logger()
	return WithContext(ctx, childLogger)
}

// WithHandle creates a child logger with a handle field
func WithHandle(ctx context.Context, handle int) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Int("handle", handle).Logger()
	return WithContext(ctx, childLogger)
}
