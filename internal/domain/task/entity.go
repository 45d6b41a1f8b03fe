package task

import "time"

type TaskStatus string

const (
	TaskStatusPlanned   TaskStatus = "planned"
	TaskStatusActive    TaskStatus = "active"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

func (s TaskStatus) IsOpen() bool {
	return s == TaskStatusPlanned || s == TaskStatusActive
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityNormal TaskPriority = "normal"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// Task entity. Required crane types live in the task_crane_types join table.
type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description *string
	Deadline    *time.Time

	RequiredCraneTypeIDs  []string
	PreferredCraneModelID *string
	EquipmentCategoryID   *string
	EquipmentBrand        *string
	RequiredOperators     int

	Status   TaskStatus
	Priority TaskPriority

	CreatedAt time.Time
	UpdatedAt time.Time

	ProjectName *string
}

type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusActive    AssignmentStatus = "active"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)

// TaskAssignment links one employee to one task. At most one row may exist
// per (task, employee); the table carries a unique constraint on the pair.
type TaskAssignment struct {
	ID           string
	TaskID       string
	EmployeeID   string
	CraneModelID *string
	WorkDate     *time.Time
	Status       AssignmentStatus
	Notes        *string
	CreatedAt    time.Time

	TaskTitle    *string
	TaskDeadline *time.Time
	EmployeeName *string
}
