package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository - aggregation queries backing the dashboards
type Repository interface {
	CountActiveProjects(ctx context.Context) (int64, error)
	CountOpenTasks(ctx context.Context) (int64, error)
	CountActiveWorkers(ctx context.Context) (int64, error)
	CountPendingWorkEntries(ctx context.Context) (int64, error)
	CountPendingLeaveRequests(ctx context.Context) (int64, error)

	// PeriodHoursAndWages sums confirmed hours and their wage amounts over
	// [from, to], weekend and overtime rates applied per entry.
	PeriodHoursAndWages(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error)
	ReadyForPayrollHours(ctx context.Context) (decimal.Decimal, error)

	CountActiveAssignments(ctx context.Context, employeeID string) (int64, error)
	CountPendingEntries(ctx context.Context, employeeID string) (int64, error)
	CountPendingLeave(ctx context.Context, employeeID string) (int64, error)
}
