// Package logging is the client's structured logger. Every call takes the
// request context; args are alternating keys and values.
package logging

import "context"

type Logger interface {
	// Debug carries per-request traces such as each API round trip.
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn is for recoverable trouble: a failed profile refresh, a 401.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With scopes a logger, e.g. log.With("component", "session").
	With(args ...any) Logger
}
