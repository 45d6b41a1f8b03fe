package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/task"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) task.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentSelect = `
	SELECT a.id, a.task_id, a.employee_id, a.crane_model_id, a.work_date,
	       a.status, a.notes, a.created_at,
	       t.title as task_title, t.deadline as task_deadline,
	       e.name as employee_name
	FROM task_assignments a
	JOIN tasks t ON a.task_id = t.id
	JOIN employees e ON a.employee_id = e.id
`

func scanAssignment(row pgx.Row) (task.TaskAssignment, error) {
	var a task.TaskAssignment
	err := row.Scan(
		&a.ID, &a.TaskID, &a.EmployeeID, &a.CraneModelID, &a.WorkDate,
		&a.Status, &a.Notes, &a.CreatedAt,
		&a.TaskTitle, &a.TaskDeadline, &a.EmployeeName,
	)
	return a, err
}

func (r *assignmentRepositoryImpl) Create(ctx context.Context, a task.TaskAssignment) (task.TaskAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO task_assignments (id, task_id, employee_id, crane_model_id, work_date, status, notes, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query,
		a.TaskID, a.EmployeeID, a.CraneModelID, a.WorkDate, a.Status, a.Notes,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return task.TaskAssignment{}, task.ErrAssignmentExists
		}
		return task.TaskAssignment{}, fmt.Errorf("failed to create task assignment: %w", err)
	}
	return a, nil
}

func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (task.TaskAssignment, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAssignment(q.QueryRow(ctx, assignmentSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.TaskAssignment{}, task.ErrAssignmentNotFound
		}
		return task.TaskAssignment{}, err
	}
	return a, nil
}

func (r *assignmentRepositoryImpl) GetByTaskAndEmployee(ctx context.Context, taskID, employeeID string) (task.TaskAssignment, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAssignment(q.QueryRow(ctx,
		assignmentSelect+` WHERE a.task_id = $1 AND a.employee_id = $2`, taskID, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.TaskAssignment{}, task.ErrAssignmentNotFound
		}
		return task.TaskAssignment{}, err
	}
	return a, nil
}

func (r *assignmentRepositoryImpl) ListByTask(ctx context.Context, taskID string) ([]task.TaskAssignment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, assignmentSelect+` WHERE a.task_id = $1 ORDER BY a.created_at`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for task %s: %w", taskID, err)
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func (r *assignmentRepositoryImpl) ListOpenByEmployee(ctx context.Context, employeeID string) ([]task.TaskAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := assignmentSelect + `
		WHERE a.employee_id = $1 AND t.status IN ('planned', 'active')
		ORDER BY t.deadline ASC NULLS LAST
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query open assignments for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func collectAssignments(rows pgx.Rows) ([]task.TaskAssignment, error) {
	var assignments []task.TaskAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM task_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment %s: %w", id, err)
	}
	if commandTag.RowsAffected() != 1 {
		return task.ErrAssignmentNotFound
	}
	return nil
}

func (r *assignmentRepositoryImpl) CountByTask(ctx context.Context, taskID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM task_assignments WHERE task_id = $1`, taskID).Scan(&count)
	return count, err
}

type calendarRepositoryImpl struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) task.CalendarRepository {
	return &calendarRepositoryImpl{db: db}
}

// WeekHours sums logged hours over [weekStart, weekStart+7d). Entries missing
// a start or end time count as zero, pause minutes are subtracted, rejected
// entries are skipped.
func (r *calendarRepositoryImpl) WeekHours(ctx context.Context, employeeID string, weekStart time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(
			GREATEST(
				EXTRACT(EPOCH FROM (end_time - start_time)) / 3600.0
					- COALESCE(pause_minutes, 0) / 60.0,
				0
			)
		), 0)
		FROM work_entries
		WHERE employee_id = $1
		  AND work_date >= $2 AND work_date < $3
		  AND start_time IS NOT NULL AND end_time IS NOT NULL
		  AND status <> 'rejected'
	`
	var hours float64
	err := q.QueryRow(ctx, query, employeeID, weekStart, weekStart.AddDate(0, 0, 7)).Scan(&hours)
	if err != nil {
		return 0, fmt.Errorf("failed to sum week hours for employee %s: %w", employeeID, err)
	}
	return hours, nil
}
