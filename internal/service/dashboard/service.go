package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/craneworks/craneops-backend-go/internal/domain/dashboard"
	"github.com/craneworks/craneops-backend-go/internal/domain/leave"
	"github.com/craneworks/craneops-backend-go/internal/domain/task"
	leavesvc "github.com/craneworks/craneops-backend-go/internal/service/leave"
	payrollsvc "github.com/craneworks/craneops-backend-go/internal/service/payroll"
)

type Service struct {
	repo         dashboard.Repository
	calendarRepo task.CalendarRepository
	leaveService *leavesvc.Service
}

func NewService(repo dashboard.Repository, calendarRepo task.CalendarRepository, leaveService *leavesvc.Service) *Service {
	return &Service{
		repo:         repo,
		calendarRepo: calendarRepo,
		leaveService: leaveService,
	}
}

// Chef fans the aggregation queries out concurrently and assembles the
// chief overview for the current payroll period.
func (s *Service) Chef(ctx context.Context) (dashboard.ChefDashboard, error) {
	var d dashboard.ChefDashboard
	period := payrollsvc.PeriodFor(time.Now())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.ActiveProjects, err = s.repo.CountActiveProjects(gCtx)
		return err
	})
	g.Go(func() (err error) {
		d.OpenTasks, err = s.repo.CountOpenTasks(gCtx)
		return err
	})
	g.Go(func() (err error) {
		d.ActiveWorkers, err = s.repo.CountActiveWorkers(gCtx)
		return err
	})
	g.Go(func() (err error) {
		d.PendingWorkEntries, err = s.repo.CountPendingWorkEntries(gCtx)
		return err
	})
	g.Go(func() (err error) {
		d.PendingLeaveRequests, err = s.repo.CountPendingLeaveRequests(gCtx)
		return err
	})
	g.Go(func() (err error) {
		d.PeriodHours, d.PeriodWages, err = s.repo.PeriodHoursAndWages(gCtx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		d.ReadyForPayrollHours, err = s.repo.ReadyForPayrollHours(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.ChefDashboard{}, err
	}
	return d, nil
}

// Worker summarizes the authenticated worker's current week.
func (s *Service) Worker(ctx context.Context, employeeID string) (dashboard.WorkerDashboard, error) {
	var d dashboard.WorkerDashboard
	now := time.Now()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hours, err := s.calendarRepo.WeekHours(gCtx, employeeID, weekStart(now))
		if err != nil {
			return err
		}
		d.WeekHours = decimal.NewFromFloat(hours)
		return nil
	})
	g.Go(func() (err error) {
		d.ActiveAssignments, err = s.repo.CountActiveAssignments(gCtx, employeeID)
		return err
	})
	g.Go(func() (err error) {
		d.PendingEntries, err = s.repo.CountPendingEntries(gCtx, employeeID)
		return err
	})
	g.Go(func() (err error) {
		d.PendingLeave, err = s.repo.CountPendingLeave(gCtx, employeeID)
		return err
	})
	g.Go(func() error {
		balance, err := s.leaveService.GetBalance(gCtx, employeeID, now.Year())
		if err != nil {
			if err == leave.ErrBalanceNotFound {
				return nil
			}
			return err
		}
		d.VacationDaysLeft = balance.VacationDaysLeft()
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.WorkerDashboard{}, err
	}
	return d, nil
}

func weekStart(t time.Time) time.Time {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}
