package hiring

import "context"

// Repository - interface for operator_hiring_requests table
type Repository interface {
	GetByID(ctx context.Context, id string) (OperatorHiringRequest, error)
	List(ctx context.Context, status *string) ([]OperatorHiringRequest, error)
	Create(ctx context.Context, req OperatorHiringRequest) (OperatorHiringRequest, error)

	// SetAssignment fills the assigned task/operator/project references.
	SetAssignment(ctx context.Context, id, taskID, employeeID, projectID string) error

	// ClearAssignment nulls the assigned references on every hiring request
	// pointing at the (task, employee) pair. Runs in the caller's transaction.
	ClearAssignment(ctx context.Context, taskID, employeeID string) error
}
