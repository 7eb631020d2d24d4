// Package apierror provides the standardized error envelope for the API.
// All 4xx/5xx responses go through this package so that internal details
// (stack traces, DB errors) never leak to clients.
package apierror

// APIError is the canonical error envelope for all error responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
