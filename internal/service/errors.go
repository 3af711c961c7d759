package service

import (
	"errors"
	"fmt"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("resource already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrLLMUnavailable means no credential is configured for a language model provider.
	ErrLLMUnavailable = errors.New("language model provider is not configured")
	// ErrStorageUnavailable means no object storage bucket is configured.
	ErrStorageUnavailable = errors.New("image storage is not configured")
	// ErrEmptyCompletion means the provider answered without any content.
	ErrEmptyCompletion = errors.New("no content in model response")
)

// ValidationError reports a missing or malformed field.
type ValidationError = models.ValidationError

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UpstreamError is a failed call to an external provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s request failed with status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
