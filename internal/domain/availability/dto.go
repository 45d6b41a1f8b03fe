package availability

import "time"

// MaxWeeklyHours is the fixed cap an operator may log per Monday–Sunday week.
const MaxWeeklyHours = 40.0

// ConflictingTask describes one assignment blocking an employee.
type ConflictingTask struct {
	TaskID    string     `json:"task_id"`
	TaskTitle string     `json:"task_title"`
	Deadline  *time.Time `json:"deadline"` // nil: conflicts indefinitely
}

// Verdict is the availability answer for one employee.
type Verdict struct {
	EmployeeID        string            `json:"employee_id"`
	IsAvailable       bool              `json:"is_available"`
	ConflictingTasks  []ConflictingTask `json:"conflicting_tasks"`
	WorkHoursThisWeek float64           `json:"work_hours_this_week"`
	MaxWeeklyHours    float64           `json:"max_weekly_hours"`
	NextAvailableDate *time.Time        `json:"next_available_date"`
}

// EligibleWorker is one roster entry in an available-workers response.
type EligibleWorker struct {
	EmployeeID              string   `json:"employee_id"`
	Name                    string   `json:"name"`
	HasRequiredCertificates bool     `json:"has_required_certificates"`
	HasRequiredCraneTypes   bool     `json:"has_required_crane_types"`
	IneligibilityReasons    []string `json:"ineligibility_reasons,omitempty"`
	Availability            *Verdict `json:"availability,omitempty"`
}

// Eligible reports whether the worker passed both qualification checks.
func (w EligibleWorker) Eligible() bool {
	return w.HasRequiredCertificates && w.HasRequiredCraneTypes
}
