// Package errs defines the error taxonomy shared across dispatch
// components: transient failures that drive the retry coordinator, fatal
// wiring errors raised at startup, and recipient-resolution failures that
// abort a single request.
package errs

import (
	"errors"
	"fmt"
	"time"
)

// RetryableError marks a transient failure. The failure kind keys the
// retry record; max attempts and interval parameterize the backoff.
type RetryableError struct {
	Kind        string
	MaxAttempts int
	Interval    time.Duration
	Err         error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable failure %s: %v", e.Kind, e.Err)
}

func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable wraps err as a RetryableError of the given kind.
func Retryable(kind string, maxAttempts int, interval time.Duration, err error) *RetryableError {
	return &RetryableError{Kind: kind, MaxAttempts: maxAttempts, Interval: interval, Err: err}
}

// AsRetryable extracts a RetryableError from err's chain.
func AsRetryable(err error) (*RetryableError, bool) {
	var re *RetryableError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// ConfigError marks missing or invalid static wiring. It is fatal at
// startup only; it must never be produced while processing events.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "configuration error: " + e.Reason }

// Configf builds a ConfigError from a format string.
func Configf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// ResolutionError marks a failed recipient resolution; the affected
// AlertRequest is marked FAILED and no retry is attempted.
type ResolutionError struct {
	VehicleID string
	Err       error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("recipient resolution failed for vehicle %s: %v", e.VehicleID, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// IsResolution reports whether err's chain contains a ResolutionError.
func IsResolution(err error) bool {
	var re *ResolutionError
	return errors.As(err, &re)
}
