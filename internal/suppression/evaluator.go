// Package suppression decides whether "now" falls inside a recipient's
// configured quiet-time window and, when it does, how long the alert has
// to wait before delivery may resume.
package suppression

import (
	"fmt"
	"time"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	// slack absorbs external-scheduler jitter so a resumed alert never
	// lands back inside the same window.
	slack = 45 * time.Second
)

// Evaluator matches instants against ordered suppression configs.
// DefaultTimezone is used when a recipient has no timezone of their own.
type Evaluator struct {
	DefaultTimezone string
}

// New returns an Evaluator falling back to the given timezone name.
func New(defaultTZ string) *Evaluator {
	return &Evaluator{DefaultTimezone: defaultTZ}
}

// Match returns the first config containing now (in the recipient's
// timezone), or nil when no window is active. First match wins; overlap
// between configs is not resolved.
func (e *Evaluator) Match(configs []model.SuppressionConfig, timezone string, now time.Time) *model.SuppressionConfig {
	local := now.In(e.location(timezone))

	for i := range configs {
		if e.matches(configs[i], local) {
			return &configs[i]
		}
	}
	return nil
}

// QuietDuration returns the delay until the matched window's end, plus a
// fixed slack. The result is the delay handed to the external scheduler.
func (e *Evaluator) QuietDuration(cfg model.SuppressionConfig, timezone string, now time.Time) (time.Duration, error) {
	loc := e.location(timezone)
	local := now.In(loc)

	end, err := windowEnd(cfg, local, loc)
	if err != nil {
		return 0, err
	}

	d := end.Sub(local)
	if d < 0 {
		d = 0
	}
	return d + slack, nil
}

func (e *Evaluator) location(timezone string) *time.Location {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(e.DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func (e *Evaluator) matches(cfg model.SuppressionConfig, local time.Time) bool {
	switch cfg.Kind {
	case model.SuppressionVacation:
		return vacationMatches(cfg, local)
	case model.SuppressionRecurring:
		return recurringMatches(cfg, local)
	}
	return false
}

func vacationMatches(cfg model.SuppressionConfig, local time.Time) bool {
	start, err := time.ParseInLocation(dateLayout+" "+timeLayout, cfg.StartDate+" "+cfg.StartTime, local.Location())
	if err != nil {
		return false
	}
	end, err := time.ParseInLocation(dateLayout+" "+timeLayout, cfg.EndDate+" "+cfg.EndTime, local.Location())
	if err != nil {
		return false
	}
	return !local.Before(start) && !local.After(end)
}

func recurringMatches(cfg model.SuppressionConfig, local time.Time) bool {
	start, err := minutesOfDay(cfg.StartTime)
	if err != nil {
		return false
	}
	end, err := minutesOfDay(cfg.EndTime)
	if err != nil {
		return false
	}

	minute := local.Hour()*60 + local.Minute()

	if end < start {
		// Overnight window: the portion after StartTime belongs to today,
		// the portion before EndTime belongs to yesterday's entry.
		if minute >= start {
			return dayInSet(cfg.Days, local.Weekday())
		}
		if minute < end {
			yesterday := local.AddDate(0, 0, -1).Weekday()
			return dayInSet(cfg.Days, yesterday)
		}
		return false
	}

	return dayInSet(cfg.Days, local.Weekday()) && minute >= start && minute < end
}

// windowEnd computes the absolute end instant of an active window.
func windowEnd(cfg model.SuppressionConfig, local time.Time, loc *time.Location) (time.Time, error) {
	switch cfg.Kind {
	case model.SuppressionVacation:
		end, err := time.ParseInLocation(dateLayout+" "+timeLayout, cfg.EndDate+" "+cfg.EndTime, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse vacation end: %w", err)
		}
		return end, nil

	case model.SuppressionRecurring:
		start, err := minutesOfDay(cfg.StartTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse recurring start: %w", err)
		}
		end, err := minutesOfDay(cfg.EndTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse recurring end: %w", err)
		}

		day := local
		if end < start && local.Hour()*60+local.Minute() >= start {
			// Past midnight boundary is still ahead of us.
			day = local.AddDate(0, 0, 1)
		}
		endAt := time.Date(day.Year(), day.Month(), day.Day(), end/60, end%60, 0, 0, loc)
		return endAt, nil
	}

	return time.Time{}, fmt.Errorf("unknown suppression kind %q", cfg.Kind)
}

func minutesOfDay(s string) (int, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func dayInSet(days []time.Weekday, d time.Weekday) bool {
	for _, v := range days {
		if v == d {
			return true
		}
	}
	return false
}
