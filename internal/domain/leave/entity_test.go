package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkingDaysBetween(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{"single weekday", monday, monday, 1},
		{"full work week", monday, monday.AddDate(0, 0, 4), 5},
		{"week including weekend", monday, monday.AddDate(0, 0, 6), 5},
		{"two full weeks", monday, monday.AddDate(0, 0, 13), 10},
		{"weekend only", monday.AddDate(0, 0, 5), monday.AddDate(0, 0, 6), 0},
		{"end before start", monday, monday.AddDate(0, 0, -1), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, WorkingDaysBetween(c.start, c.end))
		})
	}
}

func TestOverlaps(t *testing.T) {
	req := LeaveRequest{
		StartDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
	}

	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

	assert.True(t, req.Overlaps(day(9), day(13)), "identical range")
	assert.True(t, req.Overlaps(day(13), day(20)), "touching at the end")
	assert.True(t, req.Overlaps(day(1), day(9)), "touching at the start")
	assert.True(t, req.Overlaps(day(10), day(11)), "contained")
	assert.False(t, req.Overlaps(day(14), day(20)), "after")
	assert.False(t, req.Overlaps(day(1), day(8)), "before")
}

func TestVacationDaysLeft(t *testing.T) {
	b := LeaveBalance{VacationDaysTotal: 25, VacationDaysUsed: 10, CarryOverDays: 3}
	assert.Equal(t, 18.0, b.VacationDaysLeft())

	overdrawn := LeaveBalance{VacationDaysTotal: 25, VacationDaysUsed: 30}
	assert.Equal(t, 0.0, overdrawn.VacationDaysLeft())
}

func TestTypeSelfApproves(t *testing.T) {
	assert.True(t, TypeEmergency.SelfApproves())
	assert.False(t, TypeVacation.SelfApproves())
	assert.False(t, TypeSick.SelfApproves())
}

func TestStatusBlocking(t *testing.T) {
	assert.True(t, StatusPending.Blocking())
	assert.True(t, StatusApproved.Blocking())
	assert.False(t, StatusRejected.Blocking())
	assert.False(t, StatusCancelled.Blocking())
}
