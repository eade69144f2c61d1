// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for carrying the check identifier through a context and
// generating time-ordered identifiers.
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

// CheckIDCtxKey is the key used to store the identifier of the running
// check in the context.
//
//	ctx := utils.WithCheckID(ctx, id)
var CheckIDCtxKey = contextKey("checkID")

// WithCheckID returns a copy of ctx carrying checkID.
func WithCheckID(ctx context.Context, checkID string) context.Context {
	return context.WithValue(ctx, CheckIDCtxKey, checkID)
}

// GetCheckIDFromContext retrieves the check identifier from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true: value is found, non-empty and has the string type
//   - ok == false: value is missing or has an unexpected type
func GetCheckIDFromContext(ctx context.Context) (string, bool) {
	checkID, ok := ctx.Value(CheckIDCtxKey).(string)
	return checkID, ok && checkID != ""
}
