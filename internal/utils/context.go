// Package utils provides small helpers shared by the confkeeper packages:
// typed context keys, JSON response writing, the HTTP client wrapper and
// identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey stores the request trace identifier in a context.
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, "b3c1...")
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext returns the trace identifier stored under
// [TraceIDCtxKey]; ok is false when it is missing or not a string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
