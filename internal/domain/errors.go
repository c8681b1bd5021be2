package domain

import "errors"

// Store outcome classification. The repository tags every failure with one
// of these sentinels so the HTTP layer can map outcomes without inspecting
// backend-specific error types.

var (
	// ErrConditionFailed indicates a conditional write was rejected: a create
	// against an existing key, or an update/delete against a missing key.
	// This is a routine outcome, not a system fault.
	ErrConditionFailed = errors.New("conditional check failed")

	// ErrNotFound indicates a single-item read matched no item.
	ErrNotFound = errors.New("todo not found")
)
