// Package domain defines domain-level errors for the alerts feature.
package domain

import "errors"

// Domain errors for alert operations.
// These errors represent business rule failures and are mapped to HTTP status
// codes by the transport layer.
var (
	// ErrInvalidCondition indicates that the requested comparison direction is
	// not one of the recognized values (greater_than / less_than).
	ErrInvalidCondition = errors.New("invalid alert condition")

	// ErrAlertNotFound indicates that no alert exists at the requested index.
	ErrAlertNotFound = errors.New("alert not found")
)
