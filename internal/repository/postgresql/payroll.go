package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/payroll"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepositoryImpl{db: db}
}

const payrollBatchColumns = `
	id, period_year, period_number, status, entry_count,
	total_hours, total_amount, created_by, sent_at, failure_note, created_at
`

func scanPayrollBatch(row pgx.Row) (payroll.PayrollBatch, error) {
	var b payroll.PayrollBatch
	err := row.Scan(
		&b.ID, &b.PeriodYear, &b.PeriodNumber, &b.Status, &b.EntryCount,
		&b.TotalHours, &b.TotalAmount, &b.CreatedBy, &b.SentAt, &b.FailureNote, &b.CreatedAt,
	)
	return b, err
}

func (r *payrollRepositoryImpl) CreateBatch(ctx context.Context, batch payroll.PayrollBatch) (payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_batches (
			id, period_year, period_number, status, entry_count,
			total_hours, total_amount, created_by, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, NOW()
		) RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query,
		batch.PeriodYear, batch.PeriodNumber, batch.Status, batch.EntryCount,
		batch.TotalHours, batch.TotalAmount, batch.CreatedBy,
	).Scan(&batch.ID, &batch.CreatedAt)
	if err != nil {
		return payroll.PayrollBatch{}, fmt.Errorf("failed to create payroll batch: %w", err)
	}
	return batch, nil
}

func (r *payrollRepositoryImpl) GetBatchByID(ctx context.Context, id string) (payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollBatchColumns + ` FROM payroll_batches WHERE id = $1`

	b, err := scanPayrollBatch(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollBatch{}, payroll.ErrBatchNotFound
		}
		return payroll.PayrollBatch{}, err
	}
	return b, nil
}

func (r *payrollRepositoryImpl) ListBatches(ctx context.Context, limit, offset int) ([]payroll.PayrollBatch, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payroll_batches`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll batches: %w", err)
	}

	if limit == 0 {
		limit = 20
	}

	query := `SELECT ` + payrollBatchColumns + ` FROM payroll_batches ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payroll batches: %w", err)
	}
	defer rows.Close()

	var batches []payroll.PayrollBatch
	for rows.Next() {
		b, err := scanPayrollBatch(rows)
		if err != nil {
			return nil, 0, err
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return batches, total, nil
}

func (r *payrollRepositoryImpl) UpdateBatchStatus(ctx context.Context, id string, status payroll.BatchStatus, failureNote *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_batches
		SET status = $1,
		    failure_note = $2,
		    sent_at = CASE WHEN $1 = 'sent' THEN NOW() ELSE sent_at END
		WHERE id = $3
		RETURNING id
	`
	var updatedID string
	if err := q.QueryRow(ctx, query, status, failureNote, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrBatchNotFound
		}
		return fmt.Errorf("failed to update payroll batch status %s: %w", id, err)
	}
	return nil
}
