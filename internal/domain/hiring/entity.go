package hiring

import "time"

type RequestStatus string

const (
	RequestStatusOpen      RequestStatus = "open"
	RequestStatusAssigned  RequestStatus = "assigned"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// OperatorHiringRequest is an external customer's request for crane
// operators. When an assignment fulfilling it is deleted the assigned_*
// back-references are cleared in the same transaction.
type OperatorHiringRequest struct {
	ID            string
	CustomerName  string
	ContactEmail  *string
	Description   *string
	RequestedDate *time.Time
	Status        RequestStatus

	AssignedTaskID     *string
	AssignedOperatorID *string
	AssignedProjectID  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
