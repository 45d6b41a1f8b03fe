package leave

import "time"

type Type string

const (
	TypeVacation     Type = "VACATION"
	TypeSick         Type = "SICK"
	TypePersonal     Type = "PERSONAL"
	TypeParental     Type = "PARENTAL"
	TypeCompensatory Type = "COMPENSATORY"
	TypeEmergency    Type = "EMERGENCY"
)

func (t Type) Valid() bool {
	switch t {
	case TypeVacation, TypeSick, TypePersonal, TypeParental, TypeCompensatory, TypeEmergency:
		return true
	}
	return false
}

// SelfApproves reports whether a request of this type is approved at
// creation without a manager decision.
func (t Type) SelfApproves() bool {
	return t == TypeEmergency
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// Blocking reports whether the request occupies its date range for the
// overlap invariant.
func (s Status) Blocking() bool {
	return s == StatusPending || s == StatusApproved
}

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       Type

	StartDate time.Time
	EndDate   time.Time
	HalfDay   bool
	TotalDays float64

	Reason *string
	Status Status

	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	EmployeeName *string
}

// Overlaps reports whether [r.StartDate, r.EndDate] intersects
// [start, end]. Dates are inclusive on both ends.
func (r LeaveRequest) Overlaps(start, end time.Time) bool {
	return !r.StartDate.After(end) && !r.EndDate.Before(start)
}

// LeaveBalance holds per-year counters, recomputed from approved requests.
type LeaveBalance struct {
	ID         string
	EmployeeID string
	Year       int

	VacationDaysTotal float64
	VacationDaysUsed  float64
	SickDaysUsed      float64
	PersonalDaysTotal float64
	PersonalDaysUsed  float64
	CarryOverDays     float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VacationDaysLeft returns remaining vacation days including carry-over.
func (b LeaveBalance) VacationDaysLeft() float64 {
	left := b.VacationDaysTotal + b.CarryOverDays - b.VacationDaysUsed
	if left < 0 {
		return 0
	}
	return left
}

// WorkingDaysBetween counts Monday–Friday days in [start, end] inclusive.
func WorkingDaysBetween(start, end time.Time) float64 {
	if end.Before(start) {
		return 0
	}
	days := 0.0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}
