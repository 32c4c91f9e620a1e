package errors

import (
	"errors"
	"fmt"
)

// Taxonomy of client failures. Every error surfaced by the SDK wraps exactly
// one of these sentinels, so callers branch with errors.Is instead of string
// matching.
var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrNotFound             = errors.New("not found")
	ErrBotDetected          = errors.New("bot activity detected")
	ErrSubscriptionRequired = errors.New("subscription required")
	ErrQualityNotAvailable  = errors.New("quality not available")
	ErrBadRequest           = errors.New("bad request")
	ErrTimedOut             = errors.New("request timed out")
	ErrNetwork              = errors.New("network error")
	ErrGraphQL              = errors.New("graphql error")
	ErrResponseShape        = errors.New("unexpected response shape")
	ErrValidation           = errors.New("validation error")
)

// WrapError wraps an error with a taxonomy sentinel
func WrapError(err error, errType error, message string) error {
	return fmt.Errorf("%w: %s: %w", errType, message, err)
}

// Errorf builds a taxonomy error without an underlying cause
func Errorf(errType error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errType, fmt.Sprintf(format, args...))
}

// Is provides a convenience wrapper around errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap provides a convenience wrapper around errors.Unwrap
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
