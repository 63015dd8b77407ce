// Package metrics exposes the dispatcher's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsConsumed counts inbound events by declared kind.
	EventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatcher_events_consumed_total",
		Help: "Inbound events consumed, by kind.",
	}, []string{"kind"})

	// DispatchOutcomes counts per-channel dispatch decisions.
	DispatchOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatcher_channel_outcomes_total",
		Help: "Per-channel dispatch outcomes (delivered, snoozed, muted, skipped, retrying).",
	}, []string{"channel", "outcome"})

	// PublishDuration observes notifier publish latency.
	PublishDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dispatcher_publish_duration_seconds",
		Help:    "Latency of notifier publish calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"channel", "provider"})

	// BufferFlushes counts buffered alerts replayed after quiet time.
	BufferFlushes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatcher_buffer_flushes_total",
		Help: "Buffered alerts replayed through dispatch after quiet time ended.",
	})

	// RetryAttempts counts retry attempts by failure kind.
	RetryAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatcher_retry_attempts_total",
		Help: "Retry attempts requested, by failure kind.",
	}, []string{"kind"})

	// TerminalStatuses counts requests reaching a terminal status.
	TerminalStatuses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatcher_terminal_statuses_total",
		Help: "Requests closed with a terminal delivery status.",
	}, []string{"status"})
)
