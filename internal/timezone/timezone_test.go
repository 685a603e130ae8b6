package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "Europe/Berlin", Location("Europe/Berlin").String())
}

func TestWeekdayUsesProviderLocation(t *testing.T) {
	// 01:30 UTC on a Tuesday is still Monday evening in Sao Paulo.
	instant := time.Date(2026, 10, 20, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Tuesday, Weekday(instant, "UTC"))
	assert.Equal(t, time.Monday, Weekday(instant, "America/Sao_Paulo"))
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	c := NewFixedClock(start)

	assert.Equal(t, start, c.Now())
	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())
}
