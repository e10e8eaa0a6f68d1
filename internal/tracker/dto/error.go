package dto

// ErrorResponse is the standard error payload for the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
}
