// ABOUTME: Error types shared across the suggestion and timeline services
// ABOUTME: Lets handlers map failures to HTTP statuses without string matching

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a requested resource (a place page, a cached
// entry) does not exist upstream.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ValidationError reports rejected caller input, such as an empty or
// over-long query.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ExternalAPIError reports a failed call to an upstream service. API names
// the upstream (wikipedia, news); StatusCode is the upstream HTTP status,
// zero when the request never completed.
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("%s upstream error (status %d): %s", e.API, e.StatusCode, e.Message)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI reports whether err is, or wraps, an ExternalAPIError.
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError adds context to err while keeping the original type visible to
// the Is* helpers. Returns nil for a nil err.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
