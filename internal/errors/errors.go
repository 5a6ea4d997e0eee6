// Package errors provides consistent error types for FPT Pray.
// It defines three main categories: RejectionError (invalid input, fixable by
// the visitor), ConfigError (required sink configuration missing), and
// delivery errors (UpstreamError, NetworkError) for failures past validation.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrItemNotFound       = errors.New("item not found")
	ErrItemLocked         = errors.New("item is still locked")
)

// RejectionKind identifies why input was rejected. Rejections are resolved
// entirely locally and never reach the network.
type RejectionKind string

const (
	IncompleteInput RejectionKind = "incomplete_input"
	InvalidEmail    RejectionKind = "invalid_email"
	TooShort        RejectionKind = "too_short"
	TooLong         RejectionKind = "too_long"
)

// RejectionError represents invalid submission input. Message carries the
// user-facing Vietnamese text shown on the page.
type RejectionError struct {
	Kind    RejectionKind
	Message string
	Field   string // the field that caused the rejection (optional)
}

func (e *RejectionError) Error() string {
	return e.Message
}

// NewRejection creates a new RejectionError.
func NewRejection(kind RejectionKind, message string) *RejectionError {
	return &RejectionError{Kind: kind, Message: message}
}

// NewRejectionWithField creates a new RejectionError with field context.
func NewRejectionWithField(kind RejectionKind, field, message string) *RejectionError {
	return &RejectionError{Kind: kind, Field: field, Message: message}
}

// AsRejection returns the RejectionError in err's chain, if any.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// IsRejection returns true if err is a validation rejection.
func IsRejection(err error) bool {
	_, ok := AsRejection(err)
	return ok
}

// ConfigError means a required sink configuration value is missing. The
// missing key is logged server-side; the caller only ever sees a generic
// failure message.
type ConfigError struct {
	Key string // the missing environment key
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required config: %s", e.Key)
}

// NewConfigError creates a new ConfigError for the given environment key.
func NewConfigError(key string) *ConfigError {
	return &ConfigError{Key: key}
}

// UpstreamError means the downstream sink answered with a non-2xx status.
type UpstreamError struct {
	StatusCode int
	Body       string // truncated response body, for operator logs only
}

func (e *UpstreamError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("upstream error: %d %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("upstream error: %d", e.StatusCode)
}

// NetworkError means the sink could not be reached at all.
type NetworkError struct {
	Op    string // the operation that failed
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a new NetworkError.
func NewNetworkError(op string, cause error) *NetworkError {
	return &NetworkError{Op: op, Cause: cause}
}

// Is re-exported from the standard library for call-site convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
