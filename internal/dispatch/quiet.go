package dispatch

import (
	"context"
	"errors"
	"time"

	"github.com/openfleet/alert-dispatcher/internal/model"
	"github.com/openfleet/alert-dispatcher/internal/repository/configstore"
)

// QuietSource re-evaluates quiet time for a buffered tuple against the
// live notification configs, so a reconfiguration between snooze and
// timer-fired is honored.
type QuietSource struct {
	configs configSource
	eval    suppressor
}

// NewQuietSource builds the quiet-time source used by the schedule
// coordinator on timer-fired and reconfigured notices.
func NewQuietSource(configs configSource, eval suppressor) *QuietSource {
	return &QuietSource{configs: configs, eval: eval}
}

// RemainingQuietTime reports whether the tuple's channel is still inside a
// quiet window at now and, if so, the delay until it ends. The window is
// evaluated in the recipient's timezone, the same zone the original snooze
// used. A deleted config or a disabled channel counts as quiet time over.
func (q *QuietSource) RemainingQuietTime(ctx context.Context, key model.BufferKey, timezone string, now time.Time) (time.Duration, bool, error) {
	configs, err := q.configs.FindConfigs(ctx, key.UserID, key.VehicleID, key.ContactID, key.Group)
	if err != nil {
		if errors.Is(err, configstore.ErrConfigNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	for _, cfg := range configs {
		if !cfg.Enabled {
			continue
		}
		for _, ch := range cfg.Channels {
			if ch.Type != key.Channel || !ch.Enabled {
				continue
			}
			match := q.eval.Match(ch.Suppressions, timezone, now)
			if match == nil {
				continue
			}
			d, err := q.eval.QuietDuration(*match, timezone, now)
			if err != nil {
				return 0, false, err
			}
			return d, true, nil
		}
	}
	return 0, false, nil
}
