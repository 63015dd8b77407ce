// Package notifier adapts the raw transport clients to the provider
// interface served by the channel registry. Each adapter classifies its
// transport failures: transient ones come back tagged for the retry
// coordinator, permanent ones fail the channel outright.
package notifier

import "time"

// RetryPolicy parameterizes how an adapter tags transient failures.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
}

const statusSent = "SENT"
