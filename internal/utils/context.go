// Package utils provides general-purpose helper utilities used across
// different parts of the service. Includes tools for working with context,
// type-safe keys, HTTP response writing, identifier generation, and per-key
// locking.
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

// TenantIDCtxKey is the key used to store the tenant identifier in the
// context. Used together with GetTenantIDFromContext for type-safe retrieval
// of the tenant id from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.TenantIDCtxKey, "tenant-42")
var TenantIDCtxKey = contextKey("tenantID")

// GetTenantIDFromContext retrieves the tenant identifier from the context.
//
// Returns the tenant id and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetTenantIDFromContext(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(TenantIDCtxKey).(string)
	return tenantID, ok
}
