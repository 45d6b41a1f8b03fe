package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/craneworks/craneops-backend-go/internal/domain/availability"
	"github.com/craneworks/craneops-backend-go/internal/domain/crane"
	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
	"github.com/craneworks/craneops-backend-go/internal/domain/task"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func assignment(taskID, title string, deadline *time.Time) task.TaskAssignment {
	return task.TaskAssignment{
		ID:           "assignment-" + taskID,
		TaskID:       taskID,
		EmployeeID:   "emp-1",
		TaskTitle:    strPtr(title),
		TaskDeadline: deadline,
	}
}

func TestWeekStart(t *testing.T) {
	// Wednesday 2026-01-14
	wed := time.Date(2026, 1, 14, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), WeekStart(wed))

	// Sunday belongs to the week started the previous Monday
	sun := time.Date(2026, 1, 18, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), WeekStart(sun))

	// Monday is its own week start
	mon := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, WeekStart(mon))
}

func TestBuildVerdict_NoAssignments(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	v := BuildVerdict("emp-1", nil, 12, now, nil, nil)

	assert.True(t, v.IsAvailable)
	assert.Empty(t, v.ConflictingTasks)
	assert.Equal(t, 12.0, v.WorkHoursThisWeek)
	assert.Equal(t, availability.MaxWeeklyHours, v.MaxWeeklyHours)
	assert.Nil(t, v.NextAvailableDate)
}

func TestBuildVerdict_DeadlineInsideWindow(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	deadline := now.AddDate(0, 0, 3)

	v := BuildVerdict("emp-1", []task.TaskAssignment{
		assignment("t1", "Montage", timePtr(deadline)),
	}, 0, now, nil, nil)

	assert.False(t, v.IsAvailable)
	assert.Len(t, v.ConflictingTasks, 1)
	assert.Equal(t, "t1", v.ConflictingTasks[0].TaskID)
	assert.Equal(t, "Montage", v.ConflictingTasks[0].TaskTitle)
	if assert.NotNil(t, v.NextAvailableDate) {
		assert.Equal(t, deadline, *v.NextAvailableDate)
	}
}

func TestBuildVerdict_DeadlineOutsideDefaultWindow(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	deadline := now.AddDate(0, 0, DefaultWindowDays+5)

	v := BuildVerdict("emp-1", []task.TaskAssignment{
		assignment("t1", "Montage", timePtr(deadline)),
	}, 0, now, nil, nil)

	assert.True(t, v.IsAvailable)
	assert.Empty(t, v.ConflictingTasks)
}

func TestBuildVerdict_TargetDateExtendsWindow(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	deadline := now.AddDate(0, 0, 20)
	target := now.AddDate(0, 0, 30)

	v := BuildVerdict("emp-1", []task.TaskAssignment{
		assignment("t1", "Montage", timePtr(deadline)),
	}, 0, now, &target, nil)

	assert.False(t, v.IsAvailable)
	assert.Len(t, v.ConflictingTasks, 1)
}

func TestBuildVerdict_NilDeadlineConflictsIndefinitely(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	bounded := now.AddDate(0, 0, 2)

	v := BuildVerdict("emp-1", []task.TaskAssignment{
		assignment("t1", "Løbende service", nil),
		assignment("t2", "Montage", timePtr(bounded)),
	}, 0, now, nil, nil)

	assert.False(t, v.IsAvailable)
	assert.Len(t, v.ConflictingTasks, 2)
	// An open-ended conflict leaves no predictable free date.
	assert.Nil(t, v.NextAvailableDate)
}

func TestBuildVerdict_ExcludedTaskSkipped(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	deadline := now.AddDate(0, 0, 3)

	v := BuildVerdict("emp-1", []task.TaskAssignment{
		assignment("t1", "Montage", timePtr(deadline)),
	}, 0, now, nil, strPtr("t1"))

	assert.True(t, v.IsAvailable)
	assert.Empty(t, v.ConflictingTasks)
}

func TestBuildVerdict_WeeklyHourCap(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	v := BuildVerdict("emp-1", nil, availability.MaxWeeklyHours, now, nil, nil)
	assert.False(t, v.IsAvailable)

	v = BuildVerdict("emp-1", nil, availability.MaxWeeklyHours-0.5, now, nil, nil)
	assert.True(t, v.IsAvailable)
}

func TestBuildVerdict_NextAvailableIsLatestDeadline(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	early := now.AddDate(0, 0, 2)
	late := now.AddDate(0, 0, 5)

	v := BuildVerdict("emp-1", []task.TaskAssignment{
		assignment("t1", "A", timePtr(late)),
		assignment("t2", "B", timePtr(early)),
	}, 0, now, nil, nil)

	if assert.NotNil(t, v.NextAvailableDate) {
		assert.Equal(t, late, *v.NextAvailableDate)
	}
}

func TestEvaluateQualifications_AllQualified(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	w := employee.Employee{ID: "emp-1", Name: "Ole"}

	result := EvaluateQualifications(
		w,
		[]string{"ct-1"},
		[]crane.CertificateType{{ID: "cert-1", Name: "Mobilkran certifikat B"}},
		[]employee.WorkerSkill{{EmployeeID: "emp-1", CraneTypeID: "ct-1"}},
		[]employee.WorkerCertificate{{EmployeeID: "emp-1", CertificateTypeID: "cert-1"}},
		now,
		EligibilityOptions{},
	)

	assert.True(t, result.Eligible())
	assert.Empty(t, result.IneligibilityReasons)
}

func TestEvaluateQualifications_MissingCertificate(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	w := employee.Employee{ID: "emp-1", Name: "Ole"}

	result := EvaluateQualifications(
		w,
		nil,
		[]crane.CertificateType{{ID: "cert-1", Name: "Mobilkran certifikat B"}},
		nil,
		nil,
		now,
		EligibilityOptions{},
	)

	assert.False(t, result.HasRequiredCertificates)
	assert.True(t, result.HasRequiredCraneTypes)
	assert.Contains(t, result.IneligibilityReasons, "missing or expired certificate: Mobilkran certifikat B")
}

func TestEvaluateQualifications_ExpiredCertificate(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	expired := now.AddDate(0, -1, 0)
	w := employee.Employee{ID: "emp-1", Name: "Ole"}

	result := EvaluateQualifications(
		w,
		nil,
		[]crane.CertificateType{{ID: "cert-1", Name: "Mobilkran certifikat B"}},
		nil,
		[]employee.WorkerCertificate{{EmployeeID: "emp-1", CertificateTypeID: "cert-1", Expires: &expired}},
		now,
		EligibilityOptions{},
	)

	assert.False(t, result.HasRequiredCertificates)
}

func TestEvaluateQualifications_MissingCraneType(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	w := employee.Employee{ID: "emp-1", Name: "Ole"}

	result := EvaluateQualifications(
		w,
		[]string{"ct-1", "ct-2"},
		nil,
		[]employee.WorkerSkill{{EmployeeID: "emp-1", CraneTypeID: "ct-1"}},
		nil,
		now,
		EligibilityOptions{},
	)

	assert.False(t, result.HasRequiredCraneTypes)
	assert.Contains(t, result.IneligibilityReasons, "not qualified for crane type ct-2")
}

func TestEvaluateQualifications_SkipFlags(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	w := employee.Employee{ID: "emp-1", Name: "Ole"}

	result := EvaluateQualifications(
		w,
		[]string{"ct-1"},
		[]crane.CertificateType{{ID: "cert-1", Name: "Mobilkran certifikat B"}},
		nil,
		nil,
		now,
		EligibilityOptions{SkipCertificateValidation: true, SkipCraneTypeValidation: true},
	)

	assert.True(t, result.Eligible())
	assert.Empty(t, result.IneligibilityReasons)
}
