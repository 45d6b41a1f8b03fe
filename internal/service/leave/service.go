package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
	"github.com/craneworks/craneops-backend-go/internal/domain/leave"
	"github.com/craneworks/craneops-backend-go/internal/domain/notification"
	"github.com/craneworks/craneops-backend-go/internal/pkg/email"
	notificationsvc "github.com/craneworks/craneops-backend-go/internal/service/notification"
)

// Danish full-time defaults used when an employee has no balance row yet.
const (
	DefaultVacationDays = 25.0
	DefaultPersonalDays = 5.0
)

type Service struct {
	leave.RequestRepository
	leave.BalanceRepository
	employee.EmployeeRepository
	notifier *notificationsvc.Service
	email    email.EmailService
	logger   *slog.Logger
}

func NewService(
	requestRepository leave.RequestRepository,
	balanceRepository leave.BalanceRepository,
	employeeRepository employee.EmployeeRepository,
	notifier *notificationsvc.Service,
	emailService email.EmailService,
	logger *slog.Logger,
) *Service {
	return &Service{
		RequestRepository:  requestRepository,
		BalanceRepository:  balanceRepository,
		EmployeeRepository: employeeRepository,
		notifier:           notifier,
		email:              emailService,
		logger:             logger,
	}
}

// CreateRequest files a leave request. Overlap with a pending or approved
// request is rejected. Emergency leave is approved at creation.
func (s *Service) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if endDate.Before(startDate) {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}

	hasOverlap, err := s.RequestRepository.CheckOverlapping(ctx, emp.ID, startDate, endDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to check overlapping leave requests: %w", err)
	}
	if hasOverlap {
		return leave.LeaveRequest{}, leave.ErrOverlappingLeave
	}

	totalDays := leave.WorkingDaysBetween(startDate, endDate)
	if req.HalfDay && totalDays >= 1 {
		totalDays -= 0.5
	}

	leaveType := leave.Type(req.Type)
	if leaveType == leave.TypeVacation {
		balance, err := s.balanceFor(ctx, emp.ID, startDate.Year())
		if err != nil {
			return leave.LeaveRequest{}, err
		}
		if balance.VacationDaysLeft() < totalDays {
			return leave.LeaveRequest{}, leave.ErrInsufficientBalance
		}
	}

	request := leave.LeaveRequest{
		EmployeeID: emp.ID,
		Type:       leaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		HalfDay:    req.HalfDay,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	if leaveType.SelfApproves() {
		now := time.Now()
		request.Status = leave.StatusApproved
		request.ApprovedBy = &emp.ID
		request.ApprovedAt = &now
	}

	created, err := s.RequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if created.Status == leave.StatusApproved {
		if err := s.RecomputeBalance(ctx, emp.ID, startDate.Year()); err != nil {
			s.logger.Error("failed to recompute leave balance", "employee_id", emp.ID, "err", err)
		}
	}

	return created, nil
}

// Decide resolves a pending request. The decision is approve, reject or
// cancel; anything but pending is already processed.
func (s *Service) Decide(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveRequest, error) {
	request, err := s.RequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	var status leave.Status
	var notifType notification.NotificationType
	switch req.Decision {
	case "approve":
		status = leave.StatusApproved
		notifType = notification.TypeLeaveApproved
	case "reject":
		status = leave.StatusRejected
		notifType = notification.TypeLeaveRejected
	case "cancel":
		status = leave.StatusCancelled
		notifType = notification.TypeLeaveCancelled
	default:
		return leave.LeaveRequest{}, fmt.Errorf("invalid decision %q", req.Decision)
	}

	if err := s.RequestRepository.UpdateStatus(ctx, req.RequestID, status, &req.DeciderID, req.RejectionReason); err != nil {
		return leave.LeaveRequest{}, err
	}

	if status == leave.StatusApproved {
		if err := s.RecomputeBalance(ctx, request.EmployeeID, request.StartDate.Year()); err != nil {
			s.logger.Error("failed to recompute leave balance", "employee_id", request.EmployeeID, "err", err)
		}
	}

	s.notifyDecision(ctx, request, status, notifType, req)

	return s.RequestRepository.GetByID(ctx, req.RequestID)
}

func (s *Service) notifyDecision(ctx context.Context, request leave.LeaveRequest, status leave.Status, notifType notification.NotificationType, req leave.DecideLeaveRequestRequest) {
	decision := map[leave.Status]string{
		leave.StatusApproved:  "godkendt",
		leave.StatusRejected:  "afvist",
		leave.StatusCancelled: "annulleret",
	}[status]

	s.notifier.QueueMany(ctx, []notification.CreateNotificationRequest{{
		RecipientID: request.EmployeeID,
		SenderID:    &req.DeciderID,
		Type:        notifType,
		Title:       "Orlovsanmodning " + decision,
		Message: fmt.Sprintf("Din anmodning om %s fra %s til %s er %s",
			request.Type, request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"), decision),
		Data: map[string]interface{}{"leave_request_id": request.ID},
	}})

	go func() {
		emp, err := s.EmployeeRepository.GetByID(context.Background(), request.EmployeeID)
		if err != nil {
			s.logger.Error("failed to load employee for leave email", "employee_id", request.EmployeeID, "err", err)
			return
		}
		err = s.email.SendLeaveDecision(emp.Email, emp.Name, string(request.Type),
			request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"),
			decision, req.RejectionReason)
		if err != nil {
			s.logger.Error("failed to send leave decision email", "employee_id", request.EmployeeID, "err", err)
		}
	}()
}

func (s *Service) GetRequest(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return s.RequestRepository.GetByID(ctx, id)
}

func (s *Service) ListRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return s.RequestRepository.List(ctx, filter)
}

// balanceFor returns the employee's balance, creating a default row when
// none exists for the year.
func (s *Service) balanceFor(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	balance, err := s.BalanceRepository.GetByEmployeeAndYear(ctx, employeeID, year)
	if err == nil {
		return balance, nil
	}
	if err != leave.ErrBalanceNotFound {
		return leave.LeaveBalance{}, err
	}

	return s.BalanceRepository.Upsert(ctx, leave.LeaveBalance{
		EmployeeID:        employeeID,
		Year:              year,
		VacationDaysTotal: DefaultVacationDays,
		PersonalDaysTotal: DefaultPersonalDays,
	})
}

// GetBalance exposes the (possibly default-initialized) balance for a year.
func (s *Service) GetBalance(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	return s.balanceFor(ctx, employeeID, year)
}

// RecomputeBalance rebuilds the used-day counters from approved requests.
// The totals and carry-over are preserved.
func (s *Service) RecomputeBalance(ctx context.Context, employeeID string, year int) error {
	balance, err := s.balanceFor(ctx, employeeID, year)
	if err != nil {
		return err
	}

	used, err := s.RequestRepository.ApprovedDaysByType(ctx, employeeID, year)
	if err != nil {
		return err
	}

	balance.VacationDaysUsed = used[leave.TypeVacation]
	balance.SickDaysUsed = used[leave.TypeSick] + used[leave.TypeEmergency]
	balance.PersonalDaysUsed = used[leave.TypePersonal]

	_, err = s.BalanceRepository.Upsert(ctx, balance)
	return err
}

// ReconcileBalances repairs drift between stored counters and approved
// requests for every balance row of the year. Run from the cron scheduler.
func (s *Service) ReconcileBalances(ctx context.Context, year int) error {
	balances, err := s.BalanceRepository.ListByYear(ctx, year)
	if err != nil {
		return err
	}
	for _, b := range balances {
		if err := s.RecomputeBalance(ctx, b.EmployeeID, year); err != nil {
			s.logger.Error("failed to reconcile leave balance", "employee_id", b.EmployeeID, "year", year, "err", err)
		}
	}
	return nil
}
