package requestresponse

import (
	"fmt"
	"net/mail"
	"strings"
)

// ValidationError carries per-field messages for a rejected request
// body. Handlers render it as a 400 with the field map attached.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// fieldErrors accumulates checks and returns nil when everything passed.
type fieldErrors map[string]string

func (f fieldErrors) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		f[field] = "is required"
	}
}

func (f fieldErrors) email(field, value string) {
	if _, err := mail.ParseAddress(value); err != nil {
		f[field] = "must be a valid email address"
	}
}

func (f fieldErrors) oneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	f[field] = "must be one of: " + strings.Join(allowed, ", ")
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// ErrorResponse : standard error envelope
type ErrorResponse struct {
	Error   string            `json:"error" example:"Bad Request"`
	Message string            `json:"message" example:"validation failed"`
	Code    int               `json:"code" example:"400"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MessageResponse : confirmation envelope for localized success messages
type MessageResponse struct {
	Message string `json:"message" example:"Opération réussie"`
}
