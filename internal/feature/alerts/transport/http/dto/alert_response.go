package dto

import (
	"time"

	"xrp_alert_backend/internal/feature/alerts/domain/entity"
)

// AlertJSON is the wire representation of a configured alert.
type AlertJSON struct {
	ID        string  `json:"id"`
	Symbol    string  `json:"symbol"`
	Threshold float64 `json:"threshold"`
	Condition string  `json:"condition"`
	Enabled   bool    `json:"enabled"`
	CreatedAt string  `json:"created_at"`
}

// NewAlertJSON converts a domain alert to its wire representation.
func NewAlertJSON(a entity.PriceAlert) AlertJSON {
	return AlertJSON{
		ID:        a.ID,
		Symbol:    a.Symbol,
		Threshold: a.Threshold,
		Condition: string(a.Condition),
		Enabled:   a.Enabled,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// AlertResponse is the body returned after configuring an alert.
type AlertResponse struct {
	Success bool      `json:"success"`
	Alert   AlertJSON `json:"alert"`
	Message string    `json:"message"`
}

// AlertListResponse is the body returned by GET /alerts.
type AlertListResponse struct {
	Alerts []AlertJSON `json:"alerts"`
	Total  int         `json:"total"`
}

// DeleteAlertResponse is the body returned after a positional delete.
type DeleteAlertResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
