// Package utils provides small helpers shared by the client packages:
// request id propagation through context, the resty client constructor,
// and an unverified reader for the access token's claims.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key under which a request id travels in a context.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// RequestIDFromContext returns the request id stored in ctx, or a fresh one
// when ctx carries none.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDCtxKey).(string); ok && id != "" {
		return id
	}
	return NewRequestID()
}
