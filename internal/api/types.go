// Package api defines shared response envelopes used by the HTTP transport layer.
package api

// ErrorResponse is the common error body returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
