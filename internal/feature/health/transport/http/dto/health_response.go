// Package dto defines data transfer objects for the health feature's HTTP transport layer.
package dto

// HealthResponse is the body returned by GET /health.
// CurrentPrice is null until the first successful fetch.
type HealthResponse struct {
	Status       string   `json:"status"`
	CurrentPrice *float64 `json:"current_price"`
	AlertsActive int      `json:"alerts_active"`
}

// RootResponse is the service banner returned by GET /.
type RootResponse struct {
	Service   string   `json:"service"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}
