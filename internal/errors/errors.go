// Package errors provides centralized error definitions and error handling
// utilities for skipselect. It defines the catalog fetch error taxonomy,
// semantic error types, sentinel errors for selection state transitions, and
// classification helpers used by the UI to decide what to show the user.
//
// # Error Types
//
// Domain errors describe what went wrong while talking to the catalog
// service:
//   - NetworkError: the request produced no response (transport failure)
//   - RemoteFetchError: the service answered with a non-success status
//   - DecodeError: the response body did not match the expected shape
//
// Semantic errors describe common conditions:
//   - NotFoundError: a referenced resource (usually an offer) does not exist
//   - ValidationError: a value violates an invariant
//
// # Usage
//
//	err := errors.NewRemoteFetchError(500).WithURL(u)
//	if errors.IsRetryable(err) { ... }
//
//	var remote *errors.RemoteFetchError
//	if errors.As(err, &remote) {
//	    log.Warn("catalog returned error", "status", remote.StatusCode)
//	}
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Selection-related sentinel errors
var (
	// ErrOfferNotFound indicates that an offer id is not part of the catalog.
	ErrOfferNotFound = New("offer not found")
	// ErrUnknownFilter indicates that a filter toggle name is not recognized.
	ErrUnknownFilter = New("unknown filter")
	// ErrInvalidTransition indicates an operation not allowed in the current state.
	ErrInvalidTransition = New("invalid state transition")
	// ErrFetchInProgress indicates that a fetch is already pending.
	ErrFetchInProgress = New("fetch already in progress")
	// ErrStaleResult indicates a fetch result from a superseded fetch.
	ErrStaleResult = New("stale fetch result")
	// ErrClosed indicates that the state was torn down.
	ErrClosed = New("state closed")
	// ErrNoSelection indicates that no offer is selected.
	ErrNoSelection = New("no offer selected")
)

// ErrInvalidInput indicates that input validation failed.
var ErrInvalidInput = New("invalid input")

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// AppError is the base interface for all skipselect errors.
// It extends the standard error interface with classification methods.
type AppError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the error is transient and the operation
	// may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// formatWithContext renders "<kind> [k=v, ...]: message[: cause]".
func formatWithContext(kind string, parts []string, message string, cause error) string {
	prefix := kind
	if len(parts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", kind, strings.Join(parts, ", "))
	}
	if message == "" {
		if cause != nil {
			return fmt.Sprintf("%s: %v", prefix, cause)
		}
		return prefix
	}
	if cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, message, cause)
	}
	return fmt.Sprintf("%s: %s", prefix, message)
}

// -----------------------------------------------------------------------------
// Catalog Fetch Errors
// -----------------------------------------------------------------------------

// NetworkError means the catalog request produced no response at all:
// connection refused, DNS failure, TLS failure, timeout or cancellation.
//
// Example:
//
//	err := errors.NewNetworkError(cause).WithURL("https://example.test/skips")
type NetworkError struct {
	baseError
	URL string
}

// NewNetworkError creates a new NetworkError wrapping the transport failure.
func NewNetworkError(cause error) *NetworkError {
	return &NetworkError{
		baseError: baseError{
			message:    "request failed",
			cause:      cause,
			severity:   SeverityError,
			retryable:  true,
			userFacing: true,
		},
	}
}

// WithURL adds the request URL to the error context.
func (e *NetworkError) WithURL(u string) *NetworkError {
	e.URL = u
	return e
}

// Error returns the formatted error message.
func (e *NetworkError) Error() string {
	var parts []string
	if e.URL != "" {
		parts = append(parts, fmt.Sprintf("url=%s", e.URL))
	}
	return formatWithContext("network error", parts, e.message, e.cause)
}

// RemoteFetchError means the catalog service answered with a non-success
// status code.
//
// Example:
//
//	err := errors.NewRemoteFetchError(503)
//	fmt.Println(err) // "remote fetch error [status=503]: Service Unavailable"
type RemoteFetchError struct {
	baseError
	StatusCode int
	URL        string
}

// NewRemoteFetchError creates a new RemoteFetchError for the given status.
// Server errors and 429 are retryable, other client errors are not.
func NewRemoteFetchError(statusCode int) *RemoteFetchError {
	retryable := statusCode >= 500 || statusCode == http.StatusTooManyRequests
	return &RemoteFetchError{
		baseError: baseError{
			message:    http.StatusText(statusCode),
			severity:   SeverityError,
			retryable:  retryable,
			userFacing: true,
		},
		StatusCode: statusCode,
	}
}

// WithURL adds the request URL to the error context.
func (e *RemoteFetchError) WithURL(u string) *RemoteFetchError {
	e.URL = u
	return e
}

// WithCause attaches an underlying error, such as a body read failure.
func (e *RemoteFetchError) WithCause(cause error) *RemoteFetchError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *RemoteFetchError) Error() string {
	parts := []string{fmt.Sprintf("status=%d", e.StatusCode)}
	if e.URL != "" {
		parts = append(parts, fmt.Sprintf("url=%s", e.URL))
	}
	return formatWithContext("remote fetch error", parts, e.message, e.cause)
}

// DecodeError means the response body did not have the expected shape.
//
// Example:
//
//	err := errors.NewDecodeError("missing required field", nil).WithField("[2].price_before_vat")
type DecodeError struct {
	baseError
	Field string
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(message string, cause error) *DecodeError {
	return &DecodeError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField records which field of the payload failed to decode.
func (e *DecodeError) WithField(field string) *DecodeError {
	e.Field = field
	return e
}

// Error returns the formatted error message.
func (e *DecodeError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	return formatWithContext("decode error", parts, e.message, e.cause)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("offer", "17999")
//	fmt.Println(err) // "offer not found: 17999"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s not found", resourceType),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.ResourceType, e.ResourceID)
}

// Is matches ErrOfferNotFound for offer lookups.
func (e *NotFoundError) Is(target error) bool {
	if e.ResourceType == "offer" && target == ErrOfferNotFound {
		return true
	}
	return false
}

// ValidationError represents a value violating an invariant.
//
// Example:
//
//	err := errors.NewValidationError("must be between 0 and 100").WithField("vat").WithValue(120.0)
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}
	return formatWithContext("validation error", parts, e.message, e.cause)
}

// Is matches ErrInvalidInput so callers can test for any validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition
// that may succeed on retry. Context cancellation is never retryable, even
// when it surfaces as a NetworkError.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if isContextCanceled(err) {
		return false
	}

	var appErr AppError
	if As(err, &appErr) {
		return appErr.IsRetryable()
	}
	return false
}

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	var appErr AppError
	if As(err, &appErr) {
		return appErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement AppError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}
	var appErr AppError
	if As(err, &appErr) {
		return appErr.Severity()
	}
	return SeverityError
}

// isContextCanceled reports whether err stems from a canceled context.
func isContextCanceled(err error) bool {
	return Is(err, context.Canceled)
}

// UserMessage renders the text shown on the error screen for a failed fetch.
// Only user facing errors add detail to the headline.
func UserMessage(err error) string {
	const headline = "Failed to load available skips. Please try again."
	if !IsUserFacing(err) {
		return headline
	}

	var network *NetworkError
	var remote *RemoteFetchError
	var decode *DecodeError
	switch {
	case As(err, &remote):
		return fmt.Sprintf("%s (the service responded with %d)", headline, remote.StatusCode)
	case As(err, &network):
		return headline + " (the service could not be reached)"
	case As(err, &decode):
		return headline + " (the service sent an unexpected response)"
	}
	return fmt.Sprintf("%s (%s)", headline, err.Error())
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
// The result still matches the wrapped error with Is and As.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
