package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/workentry"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
)

type workEntryRepositoryImpl struct {
	db *database.DB
}

func NewWorkEntryRepository(db *database.DB) workentry.Repository {
	return &workEntryRepositoryImpl{db: db}
}

const workEntrySelect = `
	SELECT w.id, w.employee_id, w.task_id, w.work_date,
	       w.start_time, w.end_time, w.pause_minutes, w.km,
	       w.status, w.confirmation_status, w.rejection_reason, w.sent_to_payroll,
	       w.created_at, w.updated_at,
	       e.name as employee_name, t.title as task_title
	FROM work_entries w
	JOIN employees e ON w.employee_id = e.id
	JOIN tasks t ON w.task_id = t.id
`

func scanWorkEntry(row pgx.Row) (workentry.WorkEntry, error) {
	var w workentry.WorkEntry
	err := row.Scan(
		&w.ID, &w.EmployeeID, &w.TaskID, &w.WorkDate,
		&w.StartTime, &w.EndTime, &w.PauseMinutes, &w.Km,
		&w.Status, &w.ConfirmationStatus, &w.RejectionReason, &w.SentToPayroll,
		&w.CreatedAt, &w.UpdatedAt,
		&w.EmployeeName, &w.TaskTitle,
	)
	return w, err
}

func (r *workEntryRepositoryImpl) Create(ctx context.Context, entry workentry.WorkEntry) (workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_entries (
			id, employee_id, task_id, work_date,
			start_time, end_time, pause_minutes, km,
			status, confirmation_status, sent_to_payroll,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6, $7,
			$8, $9, FALSE,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.TaskID, entry.WorkDate,
		entry.StartTime, entry.EndTime, entry.PauseMinutes, entry.Km,
		entry.Status, entry.ConfirmationStatus,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return workentry.WorkEntry{}, workentry.ErrWorkEntryExists
		}
		return workentry.WorkEntry{}, fmt.Errorf("failed to create work entry: %w", err)
	}
	return entry, nil
}

func (r *workEntryRepositoryImpl) GetByID(ctx context.Context, id string) (workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	w, err := scanWorkEntry(q.QueryRow(ctx, workEntrySelect+` WHERE w.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return workentry.WorkEntry{}, workentry.ErrWorkEntryNotFound
		}
		return workentry.WorkEntry{}, err
	}
	return w, nil
}

func (r *workEntryRepositoryImpl) List(ctx context.Context, filter workentry.WorkEntryFilter) ([]workentry.WorkEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("w.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.TaskID != nil && *filter.TaskID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("w.task_id = $%d", argIdx))
		args = append(args, *filter.TaskID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("w.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.FromDate != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("w.work_date >= $%d", argIdx))
		args = append(args, *filter.FromDate)
		argIdx++
	}
	if filter.ToDate != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("w.work_date <= $%d", argIdx))
		args = append(args, *filter.ToDate)
		argIdx++
	}
	if filter.SentToPayroll != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("w.sent_to_payroll = $%d", argIdx))
		args = append(args, *filter.SentToPayroll)
		argIdx++
	}

	whereClause := "WHERE " + strings.Join(whereClauses, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM work_entries w " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work entries: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`%s %s ORDER BY w.work_date DESC, w.created_at DESC LIMIT $%d OFFSET $%d`,
		workEntrySelect, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query work entries: %w", err)
	}
	defer rows.Close()

	entries, err := collectWorkEntries(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func collectWorkEntries(rows pgx.Rows) ([]workentry.WorkEntry, error) {
	var entries []workentry.WorkEntry
	for rows.Next() {
		w, err := scanWorkEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, w)
	}
	return entries, rows.Err()
}

func (r *workEntryRepositoryImpl) Update(ctx context.Context, req workentry.UpdateWorkEntryRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	addUpdate := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.StartTime != nil {
		t, err := parseClock(*req.StartTime)
		if err != nil {
			return err
		}
		addUpdate("start_time", t)
	}
	if req.EndTime != nil {
		t, err := parseClock(*req.EndTime)
		if err != nil {
			return err
		}
		addUpdate("end_time", t)
	}
	if req.PauseMinutes != nil {
		addUpdate("pause_minutes", *req.PauseMinutes)
	}
	if req.Km != nil {
		addUpdate("km", *req.Km)
	}
	if req.Status != nil {
		addUpdate("status", *req.Status)
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for work entry update")
	}

	updates = append(updates, "updated_at = NOW()")

	args = append(args, req.ID)
	sql := "UPDATE work_entries SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return workentry.ErrWorkEntryNotFound
		}
		return fmt.Errorf("failed to update work entry %s: %w", req.ID, err)
	}
	return nil
}

func parseClock(v string) (time.Time, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", v, err)
	}
	return t, nil
}

func (r *workEntryRepositoryImpl) UpdateStatus(ctx context.Context, id string, status workentry.Status, confirmation workentry.ConfirmationStatus, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_entries
		SET status = $1, confirmation_status = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`
	var updatedID string
	if err := q.QueryRow(ctx, query, status, confirmation, rejectionReason, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return workentry.ErrWorkEntryNotFound
		}
		return fmt.Errorf("failed to update work entry status %s: %w", id, err)
	}
	return nil
}

func (r *workEntryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM work_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work entry %s: %w", id, err)
	}
	if commandTag.RowsAffected() != 1 {
		return workentry.ErrWorkEntryNotFound
	}
	return nil
}

func (r *workEntryRepositoryImpl) ListForWeek(ctx context.Context, employeeID string, weekStart time.Time) ([]workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := workEntrySelect + `
		WHERE w.employee_id = $1
		  AND w.work_date >= $2 AND w.work_date < $3
		  AND w.status <> 'rejected'
		ORDER BY w.work_date
	`
	rows, err := q.Query(ctx, query, employeeID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, fmt.Errorf("failed to query week entries: %w", err)
	}
	defer rows.Close()

	return collectWorkEntries(rows)
}

func (r *workEntryRepositoryImpl) ListReadyForPayroll(ctx context.Context) ([]workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := workEntrySelect + `
		WHERE w.status = 'confirmed' AND NOT w.sent_to_payroll
		ORDER BY w.employee_id, w.work_date
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries ready for payroll: %w", err)
	}
	defer rows.Close()

	return collectWorkEntries(rows)
}

func (r *workEntryRepositoryImpl) MarkSentToPayroll(ctx context.Context, ids []string, batchID string) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE work_entries
		SET sent_to_payroll = TRUE, payroll_batch_id = $1, updated_at = NOW()
		WHERE id = ANY($2) AND NOT sent_to_payroll
	`, batchID, ids)
	if err != nil {
		return fmt.Errorf("failed to mark entries sent to payroll: %w", err)
	}
	if commandTag.RowsAffected() != int64(len(ids)) {
		return workentry.ErrAlreadyProcessed
	}
	return nil
}
