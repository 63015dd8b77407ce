// Package feedback emits best-effort lifecycle notices on terminal
// delivery outcomes.
package feedback

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

type writer interface {
	Write(ctx context.Context, key string, payload []byte) error
}

// Emitter publishes lifecycle notices to the feedback destination.
// Emission is fire-and-forget: failures are logged and never propagated
// into the dispatch path.
type Emitter struct {
	writer  writer
	enabled bool
	now     func() time.Time
}

// NewEmitter builds an Emitter. A disabled emitter swallows every notice.
func NewEmitter(w writer, enabled bool) *Emitter {
	return &Emitter{writer: w, enabled: enabled, now: time.Now}
}

// Emit publishes one notice keyed by request id.
func (e *Emitter) Emit(ctx context.Context, fb model.Feedback) {
	if !e.enabled {
		return
	}
	if fb.Timestamp.IsZero() {
		fb.Timestamp = e.now()
	}

	payload, err := json.Marshal(fb)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("request_id", fb.RequestID).Msg("failed to encode feedback notice")
		return
	}
	if err := e.writer.Write(ctx, fb.RequestID, payload); err != nil {
		zlog.Logger.Error().Err(err).
			Str("request_id", fb.RequestID).
			Str("status", string(fb.Status)).
			Msg("failed to emit feedback notice")
	}
}
