// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// CommandKey is the context key for the invoking command path.
// Exported so it can be used consistently across packages.
type CommandKey struct{}

// WithCommand returns a context with the invoking command path embedded,
// e.g. "curator nodelete add". Audit log entries attribute changes to it.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, CommandKey{}, command)
}

// CommandFromContext returns the command path from context, or empty string if not set.
func CommandFromContext(ctx context.Context) string {
	if v := ctx.Value(CommandKey{}); v != nil {
		return v.(string)
	}
	return ""
}
