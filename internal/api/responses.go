// Package api defines the JSON response envelopes shared by all HTTP handlers.
package api

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for successful requests that carry
// no resource payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
