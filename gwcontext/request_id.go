// Package gwcontext provides request-tracking context utilities.
package gwcontext

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const requestIDKey contextKey = iota

// NewRequestID generates a new unique request ID.
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID adds a request ID to the context.
func WithRequestID(parent context.Context, requestID string) context.Context {
	return context.WithValue(parent, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, returning
// an empty string when none is set.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
