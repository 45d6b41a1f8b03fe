package workentry

import (
	"context"
	"fmt"
	"time"

	"github.com/craneworks/craneops-backend-go/internal/domain/notification"
	"github.com/craneworks/craneops-backend-go/internal/domain/task"
	"github.com/craneworks/craneops-backend-go/internal/domain/workentry"
	notificationsvc "github.com/craneworks/craneops-backend-go/internal/service/notification"
)

type Service struct {
	workentry.Repository
	taskRepo task.TaskRepository
	notifier *notificationsvc.Service
}

func NewService(repository workentry.Repository, taskRepo task.TaskRepository, notifier *notificationsvc.Service) *Service {
	return &Service{
		Repository: repository,
		taskRepo:   taskRepo,
		notifier:   notifier,
	}
}

// Create logs hours for the authenticated worker. The repository's unique
// constraint on (employee, task, work_date) rejects duplicates.
func (s *Service) Create(ctx context.Context, req workentry.CreateWorkEntryRequest) (workentry.WorkEntry, error) {
	if _, err := s.taskRepo.GetByID(ctx, req.TaskID); err != nil {
		return workentry.WorkEntry{}, err
	}

	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return workentry.WorkEntry{}, fmt.Errorf("failed to parse work date: %w", err)
	}

	entry := workentry.WorkEntry{
		EmployeeID:         req.EmployeeID,
		TaskID:             req.TaskID,
		WorkDate:           workDate,
		PauseMinutes:       req.PauseMinutes,
		Km:                 req.Km,
		Status:             workentry.StatusDraft,
		ConfirmationStatus: workentry.ConfirmationPending,
	}
	if req.Status != nil {
		entry.Status = workentry.Status(*req.Status)
	}

	entry.StartTime, err = clockOnDate(req.StartTime, workDate)
	if err != nil {
		return workentry.WorkEntry{}, err
	}
	entry.EndTime, err = clockOnDate(req.EndTime, workDate)
	if err != nil {
		return workentry.WorkEntry{}, err
	}

	return s.Repository.Create(ctx, entry)
}

func clockOnDate(clock *string, date time.Time) (*time.Time, error) {
	if clock == nil {
		return nil, nil
	}
	t, err := time.Parse("15:04", *clock)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", *clock, err)
	}
	combined := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
	return &combined, nil
}

// Update applies the worker's edits. Entries that are submitted or confirmed
// are locked against owner mutation; entries sent to payroll are immutable.
func (s *Service) Update(ctx context.Context, req workentry.UpdateWorkEntryRequest) (workentry.WorkEntry, error) {
	entry, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return workentry.WorkEntry{}, err
	}
	if entry.EmployeeID != req.EmployeeID {
		return workentry.WorkEntry{}, workentry.ErrNotEntryOwner
	}
	if entry.SentToPayroll {
		return workentry.WorkEntry{}, workentry.ErrWorkEntrySentToPayroll
	}
	if entry.Status.LockedForOwner() {
		return workentry.WorkEntry{}, workentry.ErrWorkEntryLocked
	}
	if req.Status != nil && !workentry.Status(*req.Status).Valid() {
		return workentry.WorkEntry{}, fmt.Errorf("invalid status %q", *req.Status)
	}

	if err := s.Repository.Update(ctx, req); err != nil {
		return workentry.WorkEntry{}, err
	}
	return s.Repository.GetByID(ctx, req.ID)
}

// Delete removes a draft or pending entry owned by the worker.
func (s *Service) Delete(ctx context.Context, id, employeeID string) error {
	entry, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.EmployeeID != employeeID {
		return workentry.ErrNotEntryOwner
	}
	if entry.SentToPayroll {
		return workentry.ErrWorkEntrySentToPayroll
	}
	if entry.Status.LockedForOwner() {
		return workentry.ErrWorkEntryLocked
	}
	return s.Repository.Delete(ctx, id)
}

// Submit moves the worker's entry into the supervisor queue.
func (s *Service) Submit(ctx context.Context, id, employeeID string) (workentry.WorkEntry, error) {
	entry, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return workentry.WorkEntry{}, err
	}
	if entry.EmployeeID != employeeID {
		return workentry.WorkEntry{}, workentry.ErrNotEntryOwner
	}
	if entry.Status.LockedForOwner() {
		return workentry.WorkEntry{}, workentry.ErrWorkEntryLocked
	}

	if err := s.Repository.UpdateStatus(ctx, id, workentry.StatusSubmitted, workentry.ConfirmationPending, nil); err != nil {
		return workentry.WorkEntry{}, err
	}
	return s.Repository.GetByID(ctx, id)
}

// Decide confirms or rejects a submitted entry. Rejection reopens the entry
// for the worker and requires a reason.
func (s *Service) Decide(ctx context.Context, req workentry.DecideWorkEntryRequest) (workentry.WorkEntry, error) {
	entry, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return workentry.WorkEntry{}, err
	}
	if entry.SentToPayroll {
		return workentry.WorkEntry{}, workentry.ErrWorkEntrySentToPayroll
	}
	if entry.Status != workentry.StatusSubmitted {
		return workentry.WorkEntry{}, workentry.ErrAlreadyProcessed
	}

	status := workentry.StatusConfirmed
	confirmation := workentry.ConfirmationApproved
	notifType := notification.TypeHoursConfirmed
	title := "Timer godkendt"
	message := fmt.Sprintf("Dine timer for %s er godkendt", entry.WorkDate.Format("2006-01-02"))

	if !req.Approve {
		if req.RejectionReason == nil || *req.RejectionReason == "" {
			return workentry.WorkEntry{}, fmt.Errorf("rejection reason is required")
		}
		status = workentry.StatusRejected
		confirmation = workentry.ConfirmationRejected
		notifType = notification.TypeHoursRejected
		title = "Timer afvist"
		message = fmt.Sprintf("Dine timer for %s er afvist: %s", entry.WorkDate.Format("2006-01-02"), *req.RejectionReason)
	}

	if err := s.Repository.UpdateStatus(ctx, req.ID, status, confirmation, req.RejectionReason); err != nil {
		return workentry.WorkEntry{}, err
	}

	s.notifier.QueueMany(ctx, []notification.CreateNotificationRequest{{
		RecipientID: entry.EmployeeID,
		SenderID:    &req.DeciderID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		Data:        map[string]interface{}{"work_entry_id": entry.ID},
	}})

	return s.Repository.GetByID(ctx, req.ID)
}

func (s *Service) GetByID(ctx context.Context, id string) (workentry.WorkEntry, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter workentry.WorkEntryFilter) ([]workentry.WorkEntry, int64, error) {
	return s.Repository.List(ctx, filter)
}
