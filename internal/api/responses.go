// Package api defines the shared HTTP response payloads used across
// feature handlers.
package api

// ErrorResponse is the uniform error body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a minimal success body: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}
