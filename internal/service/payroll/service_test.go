package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/craneworks/craneops-backend-go/internal/domain/workentry"
)

func TestPeriodFor_OddWeekStartsPeriod(t *testing.T) {
	// 2026-01-05 is the Monday of ISO week 2 of 2026; the period anchors on
	// week 1, which started Monday 2025-12-29.
	d := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	p := PeriodFor(d)

	assert.Equal(t, 2026, p.Year)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC), p.StartDate)
	assert.Equal(t, time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC), p.EndDate)
}

func TestPeriodFor_SpansFourteenDays(t *testing.T) {
	d := time.Date(2026, 6, 17, 0, 0, 0, 0, time.UTC)
	p := PeriodFor(d)

	assert.Equal(t, time.Monday, p.StartDate.Weekday())
	assert.Equal(t, 13*24*time.Hour, p.EndDate.Sub(p.StartDate))
	assert.True(t, p.Contains(d))
}

func TestPeriodFor_AdjacentWeeksShareAPeriod(t *testing.T) {
	// Both weeks of a bi-weekly period resolve to the same period.
	oddWeekDay := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)  // ISO week 11
	evenWeekDay := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC) // ISO week 12

	assert.Equal(t, PeriodFor(oddWeekDay), PeriodFor(evenWeekDay))
}

func TestPeriodFor_Boundaries(t *testing.T) {
	d := time.Date(2026, 6, 17, 0, 0, 0, 0, time.UTC)
	p := PeriodFor(d)

	assert.True(t, p.Contains(p.StartDate))
	assert.True(t, p.Contains(p.EndDate))
	assert.False(t, p.Contains(p.StartDate.AddDate(0, 0, -1)))
	assert.False(t, p.Contains(p.EndDate.AddDate(0, 0, 1)))
}

func testEntry(day time.Time, hours float64) workentry.WorkEntry {
	start := time.Date(day.Year(), day.Month(), day.Day(), 7, 0, 0, 0, time.UTC)
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return workentry.WorkEntry{
		WorkDate:  day,
		StartTime: &start,
		EndTime:   &end,
	}
}

func TestSplitHours_AllNormal(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	var entries []workentry.WorkEntry
	for i := 0; i < 4; i++ {
		entries = append(entries, testEntry(monday.AddDate(0, 0, i), 8))
	}

	normal, overtime, weekend := SplitHours(entries)
	assert.True(t, normal.Equal(decimal.NewFromInt(32)), "normal = %s", normal)
	assert.True(t, overtime.IsZero(), "overtime = %s", overtime)
	assert.True(t, weekend.IsZero(), "weekend = %s", weekend)
}

func TestSplitHours_OvertimeBeyondNormalWeek(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	var entries []workentry.WorkEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, testEntry(monday.AddDate(0, 0, i), 9))
	}

	// 45 weekday hours in one ISO week: 37 normal, 8 overtime.
	normal, overtime, weekend := SplitHours(entries)
	assert.True(t, normal.Equal(decimal.NewFromInt(37)), "normal = %s", normal)
	assert.True(t, overtime.Equal(decimal.NewFromInt(8)), "overtime = %s", overtime)
	assert.True(t, weekend.IsZero())
}

func TestSplitHours_WeekendNeverOvertime(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	saturday := monday.AddDate(0, 0, 5)

	var entries []workentry.WorkEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, testEntry(monday.AddDate(0, 0, i), 8))
	}
	entries = append(entries, testEntry(saturday, 6))

	// 40 weekday hours spill 3 into overtime; the Saturday hours stay in
	// their own bucket.
	normal, overtime, weekend := SplitHours(entries)
	assert.True(t, normal.Equal(decimal.NewFromInt(37)), "normal = %s", normal)
	assert.True(t, overtime.Equal(decimal.NewFromInt(3)), "overtime = %s", overtime)
	assert.True(t, weekend.Equal(decimal.NewFromInt(6)), "weekend = %s", weekend)
}

func TestSplitHours_OvertimePerWeekNotPerPeriod(t *testing.T) {
	week1Monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	week2Monday := week1Monday.AddDate(0, 0, 7)

	var entries []workentry.WorkEntry
	// 20 hours in each of two ISO weeks: never overtime even though the
	// period total is 40.
	for i := 0; i < 4; i++ {
		entries = append(entries, testEntry(week1Monday.AddDate(0, 0, i), 5))
		entries = append(entries, testEntry(week2Monday.AddDate(0, 0, i), 5))
	}

	normal, overtime, _ := SplitHours(entries)
	assert.True(t, normal.Equal(decimal.NewFromInt(40)), "normal = %s", normal)
	assert.True(t, overtime.IsZero(), "overtime = %s", overtime)
}
