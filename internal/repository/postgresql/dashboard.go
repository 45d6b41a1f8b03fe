package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/craneworks/craneops-backend-go/internal/domain/dashboard"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) countQuery(ctx context.Context, query string, args ...interface{}) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("dashboard count query failed: %w", err)
	}
	return count, nil
}

func (r *dashboardRepositoryImpl) CountActiveProjects(ctx context.Context) (int64, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM projects WHERE status = 'active'`)
}

func (r *dashboardRepositoryImpl) CountOpenTasks(ctx context.Context) (int64, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM tasks WHERE status IN ('planned', 'active')`)
}

func (r *dashboardRepositoryImpl) CountActiveWorkers(ctx context.Context) (int64, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM employees WHERE is_active AND role = 'arbejder'`)
}

func (r *dashboardRepositoryImpl) CountPendingWorkEntries(ctx context.Context) (int64, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM work_entries WHERE status = 'submitted'`)
}

func (r *dashboardRepositoryImpl) CountPendingLeaveRequests(ctx context.Context) (int64, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'PENDING'`)
}

// PeriodHoursAndWages sums confirmed hours inside [from, to] and prices each
// entry with the employee's weekend rate on Saturday and Sunday, normal rate
// otherwise. Hours past 37 in an entry's ISO week are not split out here;
// overtime pricing happens at payroll batching.
func (r *dashboardRepositoryImpl) PeriodHoursAndWages(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(hours), 0),
			COALESCE(SUM(hours * rate), 0)
		FROM (
			SELECT
				GREATEST(
					EXTRACT(EPOCH FROM (w.end_time - w.start_time)) / 3600.0
						- COALESCE(w.pause_minutes, 0) / 60.0,
					0
				) AS hours,
				CASE WHEN EXTRACT(ISODOW FROM w.work_date) IN (6, 7)
					THEN e.hourly_rate_weekend
					ELSE e.hourly_rate_normal
				END AS rate
			FROM work_entries w
			JOIN employees e ON w.employee_id = e.id
			WHERE w.status = 'confirmed'
			  AND w.work_date >= $1 AND w.work_date <= $2
			  AND w.start_time IS NOT NULL AND w.end_time IS NOT NULL
		) priced
	`
	var hours, wages decimal.Decimal
	if err := q.QueryRow(ctx, query, from, to).Scan(&hours, &wages); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum period hours and wages: %w", err)
	}
	return hours, wages, nil
}

func (r *dashboardRepositoryImpl) ReadyForPayrollHours(ctx context.Context) (decimal.Decimal, error) {
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
		WHERE status = 'confirmed' AND NOT sent_to_payroll
		  AND start_time IS NOT NULL AND end_time IS NOT NULL
	`
	var hours decimal.Decimal
	if err := q.QueryRow(ctx, query).Scan(&hours); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum ready-for-payroll hours: %w", err)
	}
	return hours, nil
}

func (r *dashboardRepositoryImpl) CountActiveAssignments(ctx context.Context, employeeID string) (int64, error) {
	return r.countQuery(ctx, `
		SELECT COUNT(*)
		FROM task_assignments a
		JOIN tasks t ON a.task_id = t.id
		WHERE a.employee_id = $1 AND t.status IN ('planned', 'active')
	`, employeeID)
}

func (r *dashboardRepositoryImpl) CountPendingEntries(ctx context.Context, employeeID string) (int64, error) {
	return r.countQuery(ctx,
		`SELECT COUNT(*) FROM work_entries WHERE employee_id = $1 AND status IN ('draft', 'pending', 'submitted')`,
		employeeID)
}

func (r *dashboardRepositoryImpl) CountPendingLeave(ctx context.Context, employeeID string) (int64, error) {
	return r.countQuery(ctx,
		`SELECT COUNT(*) FROM leave_requests WHERE employee_id = $1 AND status = 'PENDING'`,
		employeeID)
}
