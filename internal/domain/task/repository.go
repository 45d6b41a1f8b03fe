package task

import (
	"context"
	"time"
)

// TaskRepository - interface for tasks and task_crane_types tables
type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	List(ctx context.Context, filter TaskFilter) ([]Task, int64, error)
	Update(ctx context.Context, req UpdateTaskRequest) error
	DeactivateByProject(ctx context.Context, projectID string) error
}

// AssignmentRepository - interface for task_assignments table
type AssignmentRepository interface {
	Create(ctx context.Context, a TaskAssignment) (TaskAssignment, error)
	GetByID(ctx context.Context, id string) (TaskAssignment, error)
	GetByTaskAndEmployee(ctx context.Context, taskID, employeeID string) (TaskAssignment, error)
	ListByTask(ctx context.Context, taskID string) ([]TaskAssignment, error)

	// ListOpenByEmployee returns assignments whose task is still open,
	// joined with the task deadline for conflict evaluation.
	ListOpenByEmployee(ctx context.Context, employeeID string) ([]TaskAssignment, error)

	Delete(ctx context.Context, id string) error
	CountByTask(ctx context.Context, taskID string) (int64, error)
}

// CalendarRepository answers date-window queries used by availability.
type CalendarRepository interface {
	// WeekHours returns the summed logged hours for the employee over
	// [weekStart, weekStart+7d), excluding rejected entries. Entries with
	// a missing start or end contribute zero.
	WeekHours(ctx context.Context, employeeID string, weekStart time.Time) (float64, error)
}
