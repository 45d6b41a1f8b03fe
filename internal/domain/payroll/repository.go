package payroll

import "context"

// Repository - interface for payroll_batches table
type Repository interface {
	CreateBatch(ctx context.Context, batch PayrollBatch) (PayrollBatch, error)
	GetBatchByID(ctx context.Context, id string) (PayrollBatch, error)
	ListBatches(ctx context.Context, limit, offset int) ([]PayrollBatch, int64, error)
	UpdateBatchStatus(ctx context.Context, id string, status BatchStatus, failureNote *string) error
}
