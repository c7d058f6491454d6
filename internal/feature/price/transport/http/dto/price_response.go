// Package dto defines data transfer objects for the price feature's HTTP transport layer.
package dto

// PriceResponse is the body returned by GET /price.
type PriceResponse struct {
	Price     float64 `json:"price"`
	Timestamp string  `json:"timestamp"` // RFC3339, UTC
}
