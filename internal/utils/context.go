// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, trace ID
// generation and HTTP client initialization.
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

// TraceIDCtxKey is the key used to store the trace identifier in the context.
// Used together with GetTraceIDFromContext for type-safe retrieval.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace identifier from the context.
//
// Returns the trace ID and an ok flag:
//   - ok == true  — a non-empty string value is present
//   - ok == false — value is missing, empty or has an unexpected type
//
// Example usage:
//
//	traceID, ok := utils.GetTraceIDFromContext(ctx)
//	if !ok {
//	    traceID = utils.NewUUIDGenerator().Generate()
//	}
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
