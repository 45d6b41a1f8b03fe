package workentry

import (
	"context"
	"time"
)

// Repository - interface for work_entries table
type Repository interface {
	Create(ctx context.Context, entry WorkEntry) (WorkEntry, error)
	GetByID(ctx context.Context, id string) (WorkEntry, error)
	List(ctx context.Context, filter WorkEntryFilter) ([]WorkEntry, int64, error)
	Update(ctx context.Context, req UpdateWorkEntryRequest) error
	UpdateStatus(ctx context.Context, id string, status Status, confirmation ConfirmationStatus, rejectionReason *string) error
	Delete(ctx context.Context, id string) error

	// ListForWeek returns non-rejected entries for the employee in
	// [weekStart, weekStart+7d).
	ListForWeek(ctx context.Context, employeeID string, weekStart time.Time) ([]WorkEntry, error)

	// ListReadyForPayroll returns confirmed entries not yet sent to payroll.
	ListReadyForPayroll(ctx context.Context) ([]WorkEntry, error)

	// MarkSentToPayroll flags the entries inside the caller's transaction.
	MarkSentToPayroll(ctx context.Context, ids []string, batchID string) error
}
