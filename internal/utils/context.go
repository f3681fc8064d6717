// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, payload
// signatures, HTTP response writing, HTTP client initialization, JWT token
// generation and validation, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AdminLoginCtxKey is the key the auth middleware stores the authenticated
// administrator login under.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AdminLoginCtxKey, "admin")
var AdminLoginCtxKey = contextKey("adminLogin")

// TraceIDCtxKey is the key the trace-id middleware stores the request trace
// id under.
var TraceIDCtxKey = contextKey("traceID")

// GetAdminLoginFromContext retrieves the administrator login from the
// context. ok is false when the value is missing, empty or not a string.
func GetAdminLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(AdminLoginCtxKey).(string)
	return login, ok && login != ""
}

// GetTraceIDFromContext retrieves the request trace id, or "" if none.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
