package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type BatchStatus string

const (
	BatchStatusCreated BatchStatus = "created"
	BatchStatusSent    BatchStatus = "sent"
	BatchStatusFailed  BatchStatus = "failed"
)

// Period is a bi-weekly payroll period anchored on ISO weeks: a period
// starts on the Monday of an odd ISO week and spans 14 days.
type Period struct {
	Year      int       `json:"year"`
	Number    int       `json:"number"` // 1-based within the year
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"` // inclusive
}

// Contains reports whether d falls inside the period.
func (p Period) Contains(d time.Time) bool {
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

// PayrollBatch records one push of confirmed hours to the payroll provider.
type PayrollBatch struct {
	ID           string
	PeriodYear   int
	PeriodNumber int
	Status       BatchStatus
	EntryCount   int
	TotalHours   decimal.Decimal
	TotalAmount  decimal.Decimal
	CreatedBy    string
	SentAt       *time.Time
	FailureNote  *string
	CreatedAt    time.Time
}

// EmployeeHours is one employee's confirmed, unsent hours grouped for the
// ready-for-payroll view.
type EmployeeHours struct {
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	NormalHours   decimal.Decimal `json:"normal_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	WeekendHours  decimal.Decimal `json:"weekend_hours"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	EntryIDs      []string        `json:"entry_ids"`
}
