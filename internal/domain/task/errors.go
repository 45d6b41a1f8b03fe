package task

import "errors"

var (
	ErrTaskNotFound       = errors.New("Task not found")
	ErrTaskClosed         = errors.New("Task is not open for assignment")
	ErrAssignmentNotFound = errors.New("Task assignment not found")
	ErrAssignmentExists   = errors.New("Employee is already assigned to this task")
	ErrWorkerNotEligible  = errors.New("Worker does not meet the task requirements")
)
