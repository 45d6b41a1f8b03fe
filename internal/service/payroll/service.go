package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
	"github.com/craneworks/craneops-backend-go/internal/domain/notification"
	"github.com/craneworks/craneops-backend-go/internal/domain/payroll"
	"github.com/craneworks/craneops-backend-go/internal/domain/workentry"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
	"github.com/craneworks/craneops-backend-go/internal/pkg/payslip"
	"github.com/craneworks/craneops-backend-go/internal/pkg/zenegy"
	"github.com/craneworks/craneops-backend-go/internal/repository/postgresql"
	notificationsvc "github.com/craneworks/craneops-backend-go/internal/service/notification"
)

// NormalWeekHours is the Danish full-time week; weekday hours beyond it
// count as overtime.
var NormalWeekHours = decimal.NewFromInt(37)

type Service struct {
	db *database.DB
	payroll.Repository
	workEntryRepo workentry.Repository
	employee.EmployeeRepository
	zenegy   *zenegy.Client
	notifier *notificationsvc.Service
	logger   *slog.Logger
}

func NewService(
	db *database.DB,
	repository payroll.Repository,
	workEntryRepo workentry.Repository,
	employeeRepository employee.EmployeeRepository,
	zenegyClient *zenegy.Client,
	notifier *notificationsvc.Service,
	logger *slog.Logger,
) *Service {
	return &Service{
		db:                 db,
		Repository:         repository,
		workEntryRepo:      workEntryRepo,
		EmployeeRepository: employeeRepository,
		zenegy:             zenegyClient,
		notifier:           notifier,
		logger:             logger,
	}
}

// PeriodFor returns the bi-weekly payroll period containing d. Periods are
// anchored on ISO weeks: each starts on the Monday of an odd ISO week and
// spans 14 days.
func PeriodFor(d time.Time) payroll.Period {
	year, week := d.ISOWeek()
	if week%2 == 0 {
		week--
	}

	// Monday of ISO week 1 is the Monday of the week containing January 4th.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, d.Location())
	offset := int(jan4.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	week1Monday := jan4.AddDate(0, 0, -offset)

	start := week1Monday.AddDate(0, 0, (week-1)*7)
	return payroll.Period{
		Year:      year,
		Number:    (week + 1) / 2,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 13),
	}
}

// CurrentPeriod returns the period containing today.
func (s *Service) CurrentPeriod() payroll.Period {
	return PeriodFor(time.Now())
}

// SplitHours buckets one employee's entries into normal, overtime and
// weekend hours. Weekend entries are never overtime; weekday hours beyond
// 37 within one ISO week spill into overtime.
func SplitHours(entries []workentry.WorkEntry) (normal, overtime, weekend decimal.Decimal) {
	weekdayPerWeek := make(map[string]decimal.Decimal)

	for _, e := range entries {
		h := e.Hours()
		if e.IsWeekend() {
			weekend = weekend.Add(h)
			continue
		}
		y, w := e.WorkDate.ISOWeek()
		key := fmt.Sprintf("%d-%02d", y, w)
		weekdayPerWeek[key] = weekdayPerWeek[key].Add(h)
	}

	for _, total := range weekdayPerWeek {
		if total.GreaterThan(NormalWeekHours) {
			normal = normal.Add(NormalWeekHours)
			overtime = overtime.Add(total.Sub(NormalWeekHours))
		} else {
			normal = normal.Add(total)
		}
	}
	return normal, overtime, weekend
}

// Ready groups confirmed, unsent entries per employee with hour splits and
// wage amounts.
func (s *Service) Ready(ctx context.Context) ([]payroll.EmployeeHours, error) {
	entries, err := s.workEntryRepo.ListReadyForPayroll(ctx)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string][]workentry.WorkEntry)
	var order []string
	for _, e := range entries {
		if _, seen := byEmployee[e.EmployeeID]; !seen {
			order = append(order, e.EmployeeID)
		}
		byEmployee[e.EmployeeID] = append(byEmployee[e.EmployeeID], e)
	}

	result := make([]payroll.EmployeeHours, 0, len(order))
	for _, employeeID := range order {
		emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
		if err != nil {
			return nil, fmt.Errorf("failed to load employee %s: %w", employeeID, err)
		}
		result = append(result, priceHours(emp, byEmployee[employeeID]))
	}
	return result, nil
}

func priceHours(emp employee.Employee, entries []workentry.WorkEntry) payroll.EmployeeHours {
	normal, overtime, weekend := SplitHours(entries)

	amount := normal.Mul(emp.HourlyRateNormal).
		Add(overtime.Mul(emp.HourlyRateOvertime)).
		Add(weekend.Mul(emp.HourlyRateWeekend))

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}

	return payroll.EmployeeHours{
		EmployeeID:    emp.ID,
		EmployeeName:  emp.Name,
		NormalHours:   normal,
		OvertimeHours: overtime,
		WeekendHours:  weekend,
		TotalHours:    normal.Add(overtime).Add(weekend),
		TotalAmount:   amount,
		EntryIDs:      ids,
	}
}

// CreateBatch snapshots everything ready for payroll into a batch, marking
// the entries sent inside one transaction. The push to the provider happens
// after commit; a push failure flags the batch but never unwinds the local
// state.
func (s *Service) CreateBatch(ctx context.Context, createdBy string) (payroll.PayrollBatch, error) {
	hours, err := s.Ready(ctx)
	if err != nil {
		return payroll.PayrollBatch{}, err
	}
	if len(hours) == 0 {
		return payroll.PayrollBatch{}, payroll.ErrNothingToBatch
	}

	period := s.CurrentPeriod()

	totalHours := decimal.Zero
	totalAmount := decimal.Zero
	entryCount := 0
	var allEntryIDs []string
	for _, h := range hours {
		totalHours = totalHours.Add(h.TotalHours)
		totalAmount = totalAmount.Add(h.TotalAmount)
		entryCount += len(h.EntryIDs)
		allEntryIDs = append(allEntryIDs, h.EntryIDs...)
	}

	var batch payroll.PayrollBatch
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var txErr error
		batch, txErr = s.Repository.CreateBatch(txCtx, payroll.PayrollBatch{
			PeriodYear:   period.Year,
			PeriodNumber: period.Number,
			Status:       payroll.BatchStatusCreated,
			EntryCount:   entryCount,
			TotalHours:   totalHours,
			TotalAmount:  totalAmount,
			CreatedBy:    createdBy,
		})
		if txErr != nil {
			return txErr
		}
		return s.workEntryRepo.MarkSentToPayroll(txCtx, allEntryIDs, batch.ID)
	})
	if err != nil {
		return payroll.PayrollBatch{}, err
	}

	s.pushToProvider(ctx, batch, period, hours)
	s.notifyEmployees(ctx, hours, createdBy)

	batch, err = s.Repository.GetBatchByID(ctx, batch.ID)
	if err != nil {
		return payroll.PayrollBatch{}, err
	}
	return batch, nil
}

func (s *Service) pushToProvider(ctx context.Context, batch payroll.PayrollBatch, period payroll.Period, hours []payroll.EmployeeHours) {
	lines := make([]zenegy.BatchLine, 0, len(hours))
	for _, h := range hours {
		emp, err := s.EmployeeRepository.GetByID(ctx, h.EmployeeID)
		if err != nil || emp.ZenegyEmployeeNumber == nil {
			s.logger.Warn("skipping payroll line without provider employee number", "employee_id", h.EmployeeID)
			continue
		}
		lines = append(lines, zenegy.BatchLine{
			EmployeeNumber: *emp.ZenegyEmployeeNumber,
			NormalHours:    h.NormalHours,
			OvertimeHours:  h.OvertimeHours,
			WeekendHours:   h.WeekendHours,
			Amount:         h.TotalAmount,
		})
	}

	resp, err := s.zenegy.PushBatch(ctx, zenegy.PushBatchRequest{
		ExternalBatchID: batch.ID,
		PeriodStart:     period.StartDate.Format("2006-01-02"),
		PeriodEnd:       period.EndDate.Format("2006-01-02"),
		Lines:           lines,
	})
	if err != nil {
		note := err.Error()
		s.logger.Error("payroll provider push failed", "batch_id", batch.ID, "err", err)
		if updErr := s.Repository.UpdateBatchStatus(ctx, batch.ID, payroll.BatchStatusFailed, &note); updErr != nil {
			s.logger.Error("failed to record batch failure", "batch_id", batch.ID, "err", updErr)
		}
		return
	}

	s.logger.Info("payroll batch pushed", "batch_id", batch.ID, "provider_batch_id", resp.ProviderBatchID)
	if err := s.Repository.UpdateBatchStatus(ctx, batch.ID, payroll.BatchStatusSent, nil); err != nil {
		s.logger.Error("failed to record batch sent", "batch_id", batch.ID, "err", err)
	}
}

func (s *Service) notifyEmployees(ctx context.Context, hours []payroll.EmployeeHours, senderID string) {
	reqs := make([]notification.CreateNotificationRequest, 0, len(hours))
	for _, h := range hours {
		reqs = append(reqs, notification.CreateNotificationRequest{
			RecipientID: h.EmployeeID,
			SenderID:    &senderID,
			Type:        notification.TypePayrollSent,
			Title:       "Løn sendt til behandling",
			Message:     fmt.Sprintf("%s timer er sendt til lønbehandling", h.TotalHours.StringFixed(2)),
		})
	}
	s.notifier.QueueMany(ctx, reqs)
}

// Payslip renders a PDF for the employee's confirmed hours in the period.
func (s *Service) Payslip(ctx context.Context, employeeID string, period payroll.Period) ([]byte, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	status := string(workentry.StatusConfirmed)
	entries, _, err := s.workEntryRepo.List(ctx, workentry.WorkEntryFilter{
		EmployeeID: &employeeID,
		Status:     &status,
		FromDate:   &period.StartDate,
		ToDate:     &period.EndDate,
		Limit:      1000,
	})
	if err != nil {
		return nil, err
	}

	return payslip.Render(period, priceHours(emp, entries))
}

func (s *Service) ListBatches(ctx context.Context, limit, offset int) ([]payroll.PayrollBatch, int64, error) {
	return s.Repository.ListBatches(ctx, limit, offset)
}

func (s *Service) GetBatch(ctx context.Context, id string) (payroll.PayrollBatch, error) {
	return s.Repository.GetBatchByID(ctx, id)
}

// TestConnection proxies a connectivity check to the payroll provider.
func (s *Service) TestConnection(ctx context.Context) (*zenegy.ConnectionStatus, error) {
	return s.zenegy.TestConnection(ctx)
}

// PeriodRollover logs how many hours are still waiting for a batch in the
// just-ended period. Runs from the cron scheduler on the first day of a new
// period; on other days it is a no-op.
func (s *Service) PeriodRollover(ctx context.Context) error {
	now := time.Now()
	current := PeriodFor(now)
	if now.Sub(current.StartDate) >= 24*time.Hour {
		return nil
	}

	ready, err := s.Ready(ctx)
	if err != nil {
		return err
	}

	total := decimal.Zero
	for _, h := range ready {
		total = total.Add(h.TotalHours)
	}
	s.logger.Info("payroll period rolled over",
		"period_year", current.Year,
		"period_number", current.Number,
		"employees_ready", len(ready),
		"hours_ready", total.String())
	return nil
}
