package workentry

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusSubmitted Status = "submitted"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusSubmitted, StatusConfirmed, StatusRejected:
		return true
	}
	return false
}

// LockedForOwner reports whether the owning worker may no longer mutate the
// entry. Enforced at write time, not by the schema.
func (s Status) LockedForOwner() bool {
	return s == StatusSubmitted || s == StatusConfirmed
}

type ConfirmationStatus string

const (
	ConfirmationPending  ConfirmationStatus = "pending"
	ConfirmationApproved ConfirmationStatus = "approved"
	ConfirmationRejected ConfirmationStatus = "rejected"
)

// WorkEntry is one employee's logged hours for one task on one date.
// Unique per (employee, task, work_date).
type WorkEntry struct {
	ID         string
	EmployeeID string
	TaskID     string
	WorkDate   time.Time

	StartTime    *time.Time
	EndTime      *time.Time
	PauseMinutes int
	Km           *float64

	Status             Status
	ConfirmationStatus ConfirmationStatus
	RejectionReason    *string
	SentToPayroll      bool

	CreatedAt time.Time
	UpdatedAt time.Time

	EmployeeName *string
	TaskTitle    *string
}

// Hours returns (end - start) - pause in decimal hours. Entries missing a
// start or end contribute zero rather than an error.
func (w WorkEntry) Hours() decimal.Decimal {
	if w.StartTime == nil || w.EndTime == nil {
		return decimal.Zero
	}
	worked := w.EndTime.Sub(*w.StartTime) - time.Duration(w.PauseMinutes)*time.Minute
	if worked < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(worked.Minutes()).Div(decimal.NewFromInt(60))
}

// IsWeekend reports whether the entry falls on a Saturday or Sunday.
func (w WorkEntry) IsWeekend() bool {
	wd := w.WorkDate.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
