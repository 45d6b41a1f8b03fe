package leave

import (
	"context"
	"time"
)

// RequestRepository - interface for leave_requests table
type RequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status, decidedBy *string, rejectionReason *string) error

	// CheckOverlapping reports whether a PENDING or APPROVED request for the
	// employee intersects [startDate, endDate].
	CheckOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)

	// ApprovedDaysByType sums total_days of approved requests per leave type
	// for the employee within the given year.
	ApprovedDaysByType(ctx context.Context, employeeID string, year int) (map[Type]float64, error)
}

// BalanceRepository - interface for leave_balances table
type BalanceRepository interface {
	GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) (LeaveBalance, error)
	Upsert(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	ListByYear(ctx context.Context, year int) ([]LeaveBalance, error)
}
