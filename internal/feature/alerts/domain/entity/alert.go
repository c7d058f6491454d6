// Package entity defines the domain models for the alerts feature.
package entity

import (
	"time"

	"xrp_alert_backend/internal/feature/alerts/domain"
)

// Condition is the comparison direction of a price alert.
type Condition string

const (
	// ConditionGreaterThan triggers when the observed price is strictly above the threshold.
	ConditionGreaterThan Condition = "greater_than"
	// ConditionLessThan triggers when the observed price is strictly below the threshold.
	ConditionLessThan Condition = "less_than"
)

// ParseCondition validates a raw condition string from caller input.
// Only the two recognized values are accepted; the match is exact and case-sensitive.
func ParseCondition(s string) (Condition, error) {
	switch Condition(s) {
	case ConditionGreaterThan:
		return ConditionGreaterThan, nil
	case ConditionLessThan:
		return ConditionLessThan, nil
	default:
		return "", domain.ErrInvalidCondition
	}
}

// PriceAlert is a user-defined price threshold rule.
// It is immutable once constructed; the ID is server-assigned and informational
// (deletion stays positional by list index).
type PriceAlert struct {
	ID        string    // Server-assigned UUID
	Symbol    string    // Trading pair (e.g. "xrpusd")
	Threshold float64   // Price threshold for the alert
	Condition Condition // Comparison direction
	Enabled   bool      // Disabled alerts are skipped during checks
	CreatedAt time.Time
}

// TriggeredAlert is a single alert firing against an observed price.
// It carries no state; repeated checks against the same price fire again.
type TriggeredAlert struct {
	AlertID   string
	Symbol    string
	Message   string
	Price     float64
	Threshold float64
	Timestamp time.Time
}
