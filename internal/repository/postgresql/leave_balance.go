package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/leave"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

const leaveBalanceColumns = `
	id, employee_id, year,
	vacation_days_total, vacation_days_used, sick_days_used,
	personal_days_total, personal_days_used, carry_over_days,
	created_at, updated_at
`

func scanLeaveBalance(row pgx.Row) (leave.LeaveBalance, error) {
	var b leave.LeaveBalance
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.Year,
		&b.VacationDaysTotal, &b.VacationDaysUsed, &b.SickDaysUsed,
		&b.PersonalDaysTotal, &b.PersonalDaysUsed, &b.CarryOverDays,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *leaveBalanceRepositoryImpl) GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveBalanceColumns + ` FROM leave_balances WHERE employee_id = $1 AND year = $2`

	b, err := scanLeaveBalance(q.QueryRow(ctx, query, employeeID, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}
	return b, nil
}

func (r *leaveBalanceRepositoryImpl) Upsert(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (
			id, employee_id, year,
			vacation_days_total, vacation_days_used, sick_days_used,
			personal_days_total, personal_days_used, carry_over_days,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5,
			$6, $7, $8,
			NOW(), NOW()
		)
		ON CONFLICT (employee_id, year) DO UPDATE SET
			vacation_days_total = EXCLUDED.vacation_days_total,
			vacation_days_used = EXCLUDED.vacation_days_used,
			sick_days_used = EXCLUDED.sick_days_used,
			personal_days_total = EXCLUDED.personal_days_total,
			personal_days_used = EXCLUDED.personal_days_used,
			carry_over_days = EXCLUDED.carry_over_days,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		balance.EmployeeID, balance.Year,
		balance.VacationDaysTotal, balance.VacationDaysUsed, balance.SickDaysUsed,
		balance.PersonalDaysTotal, balance.PersonalDaysUsed, balance.CarryOverDays,
	).Scan(&balance.ID, &balance.CreatedAt, &balance.UpdatedAt)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to upsert leave balance: %w", err)
	}
	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) ListByYear(ctx context.Context, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveBalanceColumns + ` FROM leave_balances WHERE year = $1 ORDER BY employee_id`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave balances for year %d: %w", year, err)
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		b, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}
