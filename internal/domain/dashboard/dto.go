package dashboard

import (
	"github.com/shopspring/decimal"
)

// ChefDashboard aggregates live figures for the chief overview. Every field
// is computed from real rows; no placeholder values.
type ChefDashboard struct {
	ActiveProjects       int64           `json:"active_projects"`
	OpenTasks            int64           `json:"open_tasks"`
	ActiveWorkers        int64           `json:"active_workers"`
	PendingWorkEntries   int64           `json:"pending_work_entries"`
	PendingLeaveRequests int64           `json:"pending_leave_requests"`
	PeriodHours          decimal.Decimal `json:"period_hours"`
	PeriodWages          decimal.Decimal `json:"period_wages"`
	ReadyForPayrollHours decimal.Decimal `json:"ready_for_payroll_hours"`
}

// WorkerDashboard summarizes the authenticated worker's week.
type WorkerDashboard struct {
	WeekHours         decimal.Decimal `json:"week_hours"`
	ActiveAssignments int64           `json:"active_assignments"`
	PendingEntries    int64           `json:"pending_entries"`
	PendingLeave      int64           `json:"pending_leave"`
	VacationDaysLeft  float64         `json:"vacation_days_left"`
}
