package suppression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, time.UTC)
	require.NoError(t, err)
	return ts
}

func TestMatch_Vacation(t *testing.T) {
	e := New("UTC")

	cfg := model.SuppressionConfig{
		Kind:      model.SuppressionVacation,
		StartDate: "2025-07-01", StartTime: "08:00",
		EndDate: "2025-07-10", EndTime: "18:00",
	}

	assert.NotNil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-05 12:00")))
	assert.NotNil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-01 08:00")))
	assert.NotNil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-10 18:00")))
	assert.Nil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-06-30 12:00")))
	assert.Nil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-10 18:01")))
}

func TestMatch_RecurringSameDay(t *testing.T) {
	e := New("UTC")

	// Mon-Fri 09:00-17:00.
	cfg := model.SuppressionConfig{
		Kind:      model.SuppressionRecurring,
		StartTime: "09:00", EndTime: "17:00",
		Days: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	}

	// 2025-07-07 is a Monday.
	assert.NotNil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-07 09:00")))
	assert.NotNil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-07 16:59")))
	// End is exclusive.
	assert.Nil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-07 17:00")))
	// 2025-07-06 is a Sunday.
	assert.Nil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-06 12:00")))
}

func TestMatch_RecurringOvernight(t *testing.T) {
	e := New("UTC")

	// Monday 22:00 through Tuesday 06:00.
	cfg := model.SuppressionConfig{
		Kind:      model.SuppressionRecurring,
		StartTime: "22:00", EndTime: "06:00",
		Days: []time.Weekday{time.Monday},
	}

	// Monday 23:59 matches, Tuesday 00:01 matches via yesterday's entry.
	assert.NotNil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-07 23:59")))
	assert.NotNil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-08 00:01")))
	assert.NotNil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-08 05:59")))
	// Tuesday 06:00 is past the window end.
	assert.Nil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-08 06:00")))
	// Wednesday early morning: Tuesday is not in the day set.
	assert.Nil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-09 00:01")))
	// Monday daytime is outside the window.
	assert.Nil(t, e.Match([]model.SuppressionConfig{cfg}, "UTC", at(t, "2025-07-07 12:00")))
}

func TestMatch_FirstMatchWins(t *testing.T) {
	e := New("UTC")

	first := model.SuppressionConfig{
		Kind:      model.SuppressionRecurring,
		StartTime: "00:00", EndTime: "23:59",
		Days: []time.Weekday{time.Monday},
	}
	second := model.SuppressionConfig{
		Kind:      model.SuppressionVacation,
		StartDate: "2025-07-01", StartTime: "00:00",
		EndDate: "2025-07-31", EndTime: "23:59",
	}

	got := e.Match([]model.SuppressionConfig{first, second}, "UTC", at(t, "2025-07-07 12:00"))
	require.NotNil(t, got)
	assert.Equal(t, model.SuppressionRecurring, got.Kind)
}

func TestMatch_UnknownTimezoneFallsBack(t *testing.T) {
	e := New("UTC")

	cfg := model.SuppressionConfig{
		Kind:      model.SuppressionRecurring,
		StartTime: "09:00", EndTime: "17:00",
		Days: []time.Weekday{time.Monday},
	}

	assert.NotNil(t, e.Match([]model.SuppressionConfig{cfg}, "Not/AZone", at(t, "2025-07-07 12:00")))
}

func TestQuietDuration_Vacation(t *testing.T) {
	e := New("UTC")

	cfg := model.SuppressionConfig{
		Kind:      model.SuppressionVacation,
		StartDate: "2025-07-01", StartTime: "00:00",
		EndDate: "2025-07-10", EndTime: "18:00",
	}

	// Evaluated 10 seconds before the window end: 10s remaining + 45s slack.
	now := at(t, "2025-07-10 18:00").Add(-10 * time.Second)
	d, err := e.QuietDuration(cfg, "UTC", now)
	require.NoError(t, err)
	assert.Equal(t, 55*time.Second, d)
}

func TestQuietDuration_NeverBelowSlack(t *testing.T) {
	e := New("UTC")

	cfg := model.SuppressionConfig{
		Kind:      model.SuppressionVacation,
		StartDate: "2025-07-01", StartTime: "00:00",
		EndDate: "2025-07-10", EndTime: "18:00",
	}

	// Even exactly at the end the scheduler delay keeps the slack.
	d, err := e.QuietDuration(cfg, "UTC", at(t, "2025-07-10 18:00"))
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, d)
}

func TestQuietDuration_RecurringSameDay(t *testing.T) {
	e := New("UTC")

	cfg := model.SuppressionConfig{
		Kind:      model.SuppressionRecurring,
		StartTime: "09:00", EndTime: "17:00",
		Days: []time.Weekday{time.Monday},
	}

	d, err := e.QuietDuration(cfg, "UTC", at(t, "2025-07-07 16:00"))
	require.NoError(t, err)
	assert.Equal(t, time.Hour+45*time.Second, d)
}

func TestQuietDuration_RecurringOvernight(t *testing.T) {
	e := New("UTC")

	cfg := model.SuppressionConfig{
		Kind:      model.SuppressionRecurring,
		StartTime: "22:00", EndTime: "06:00",
		Days: []time.Weekday{time.Monday},
	}

	// Monday 23:00: the window ends Tuesday 06:00, seven hours later.
	d, err := e.QuietDuration(cfg, "UTC", at(t, "2025-07-07 23:00"))
	require.NoError(t, err)
	assert.Equal(t, 7*time.Hour+45*time.Second, d)

	// Tuesday 05:00: one hour to go on the same window.
	d, err = e.QuietDuration(cfg, "UTC", at(t, "2025-07-08 05:00"))
	require.NoError(t, err)
	assert.Equal(t, time.Hour+45*time.Second, d)
}

func TestQuietDuration_UnknownKind(t *testing.T) {
	e := New("UTC")

	_, err := e.QuietDuration(model.SuppressionConfig{Kind: "LUNAR"}, "UTC", time.Now())
	assert.Error(t, err)
}
