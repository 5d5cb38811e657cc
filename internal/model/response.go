package model

// ErrorResponse is the JSON error shape for request-level failures.
// Upstream generation failures are not reported this way; they flow
// in-band as plain text inside the streamed body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
