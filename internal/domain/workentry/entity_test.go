package workentry

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func entry(day time.Time, start, end string, pause int) WorkEntry {
	parse := func(clock string) *time.Time {
		c, _ := time.Parse("15:04", clock)
		t := time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC)
		return &t
	}
	return WorkEntry{
		WorkDate:     day,
		StartTime:    parse(start),
		EndTime:      parse(end),
		PauseMinutes: pause,
	}
}

func TestHours(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		entry WorkEntry
		want  string
	}{
		{"full day with pause", entry(day, "09:00", "17:00", 30), "7.5"},
		{"no pause", entry(day, "07:00", "15:00", 0), "8"},
		{"pause exceeds span", entry(day, "09:00", "09:15", 60), "0"},
		{"missing times", WorkEntry{WorkDate: day}, "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			want, _ := decimal.NewFromString(c.want)
			assert.True(t, c.entry.Hours().Equal(want),
				"Hours() = %s, want %s", c.entry.Hours(), want)
		})
	}
}

func TestIsWeekend(t *testing.T) {
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	assert.True(t, WorkEntry{WorkDate: saturday}.IsWeekend())
	assert.True(t, WorkEntry{WorkDate: sunday}.IsWeekend())
	assert.False(t, WorkEntry{WorkDate: monday}.IsWeekend())
}

func TestStatusLockedForOwner(t *testing.T) {
	assert.False(t, StatusDraft.LockedForOwner())
	assert.False(t, StatusPending.LockedForOwner())
	assert.False(t, StatusRejected.LockedForOwner())
	assert.True(t, StatusSubmitted.LockedForOwner())
	assert.True(t, StatusConfirmed.LockedForOwner())
}
