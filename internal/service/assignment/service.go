package assignment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
	"github.com/craneworks/craneops-backend-go/internal/domain/hiring"
	"github.com/craneworks/craneops-backend-go/internal/domain/notification"
	"github.com/craneworks/craneops-backend-go/internal/domain/task"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
	"github.com/craneworks/craneops-backend-go/internal/pkg/email"
	"github.com/craneworks/craneops-backend-go/internal/repository/postgresql"
	availabilitysvc "github.com/craneworks/craneops-backend-go/internal/service/availability"
	notificationsvc "github.com/craneworks/craneops-backend-go/internal/service/notification"
)

// CreateResult carries the assignment plus whether it already existed, so
// the handler can answer 200 instead of 201 on the idempotent path.
type CreateResult struct {
	Assignment     task.TaskAssignment
	AlreadyExisted bool
}

type Service struct {
	db *database.DB
	task.TaskRepository
	task.AssignmentRepository
	employee.EmployeeRepository
	hiringRepo   hiring.Repository
	availability *availabilitysvc.Service
	notifier     *notificationsvc.Service
	email        email.EmailService
	logger       *slog.Logger
}

func NewService(
	db *database.DB,
	taskRepository task.TaskRepository,
	assignmentRepository task.AssignmentRepository,
	employeeRepository employee.EmployeeRepository,
	hiringRepo hiring.Repository,
	availability *availabilitysvc.Service,
	notifier *notificationsvc.Service,
	emailService email.EmailService,
	logger *slog.Logger,
) *Service {
	return &Service{
		db:                   db,
		TaskRepository:       taskRepository,
		AssignmentRepository: assignmentRepository,
		EmployeeRepository:   employeeRepository,
		hiringRepo:           hiringRepo,
		availability:         availability,
		notifier:             notifier,
		email:                emailService,
		logger:               logger,
	}
}

// Create assigns an employee to a task. A second call for the same pair
// returns the existing row with AlreadyExisted set instead of failing.
func (s *Service) Create(ctx context.Context, req task.CreateAssignmentRequest) (CreateResult, error) {
	t, err := s.TaskRepository.GetByID(ctx, req.TaskID)
	if err != nil {
		return CreateResult{}, err
	}
	if !t.Status.IsOpen() {
		return CreateResult{}, task.ErrTaskClosed
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return CreateResult{}, err
	}
	if !emp.IsActive {
		return CreateResult{}, employee.ErrEmployeeDeactivated
	}

	if existing, err := s.AssignmentRepository.GetByTaskAndEmployee(ctx, req.TaskID, req.EmployeeID); err == nil {
		return CreateResult{Assignment: existing, AlreadyExisted: true}, nil
	} else if err != task.ErrAssignmentNotFound {
		return CreateResult{}, err
	}

	if reasons, err := s.qualificationReasons(ctx, t, emp, req.SkipCertificateValidation, req.SkipCraneTypeValidation); err != nil {
		return CreateResult{}, err
	} else if len(reasons) > 0 {
		return CreateResult{}, fmt.Errorf("%w: %s", task.ErrWorkerNotEligible, strings.Join(reasons, "; "))
	}

	assignment := task.TaskAssignment{
		TaskID:       req.TaskID,
		EmployeeID:   req.EmployeeID,
		CraneModelID: req.CraneModelID,
		Status:       task.AssignmentStatusAssigned,
		Notes:        req.Notes,
	}
	if req.WorkDate != nil {
		workDate, err := time.Parse("2006-01-02", *req.WorkDate)
		if err != nil {
			return CreateResult{}, fmt.Errorf("invalid work date: %w", err)
		}
		assignment.WorkDate = &workDate
	}

	var created task.TaskAssignment
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.AssignmentRepository.Create(txCtx, assignment)
		if txErr != nil {
			return txErr
		}
		if req.HiringRequestID != nil {
			return s.hiringRepo.SetAssignment(txCtx, *req.HiringRequestID, req.TaskID, req.EmployeeID, t.ProjectID)
		}
		return nil
	})
	if err != nil {
		if err == task.ErrAssignmentExists {
			existing, getErr := s.AssignmentRepository.GetByTaskAndEmployee(ctx, req.TaskID, req.EmployeeID)
			if getErr == nil {
				return CreateResult{Assignment: existing, AlreadyExisted: true}, nil
			}
		}
		return CreateResult{}, err
	}

	created.TaskTitle = &t.Title
	created.TaskDeadline = t.Deadline
	created.EmployeeName = &emp.Name

	s.notifyAssigned(ctx, t, emp)

	return CreateResult{Assignment: created}, nil
}

func (s *Service) qualificationReasons(ctx context.Context, t task.Task, emp employee.Employee, skipCerts, skipCraneTypes bool) ([]string, error) {
	if skipCerts && skipCraneTypes {
		return nil, nil
	}
	result, err := s.availability.EvaluateWorker(ctx, t, emp, availabilitysvc.EligibilityOptions{
		SkipCertificateValidation: skipCerts,
		SkipCraneTypeValidation:   skipCraneTypes,
	})
	if err != nil {
		return nil, err
	}
	return result.IneligibilityReasons, nil
}

func (s *Service) notifyAssigned(ctx context.Context, t task.Task, emp employee.Employee) {
	projectName := ""
	if t.ProjectName != nil {
		projectName = *t.ProjectName
	}

	s.notifier.QueueMany(ctx, []notification.CreateNotificationRequest{{
		RecipientID: emp.ID,
		Type:        notification.TypeTaskAssigned,
		Title:       "Ny opgave",
		Message:     fmt.Sprintf("Du er blevet tildelt opgaven %q", t.Title),
		Data:        map[string]interface{}{"task_id": t.ID},
	}})

	go func() {
		var deadline *string
		if t.Deadline != nil {
			d := t.Deadline.Format("2006-01-02")
			deadline = &d
		}
		if err := s.email.SendAssignmentNotice(emp.Email, emp.Name, t.Title, projectName, deadline); err != nil {
			s.logger.Error("failed to send assignment notice", "employee_id", emp.ID, "err", err)
		}
	}()
}

// BulkCreate assigns several employees to one task in a single transaction.
// Item failures are collected as error strings; successful items commit
// regardless of how many siblings failed.
func (s *Service) BulkCreate(ctx context.Context, req task.BulkCreateAssignmentRequest) (task.BulkAssignmentResult, error) {
	t, err := s.TaskRepository.GetByID(ctx, req.TaskID)
	if err != nil {
		return task.BulkAssignmentResult{}, err
	}
	if !t.Status.IsOpen() {
		return task.BulkAssignmentResult{}, task.ErrTaskClosed
	}

	result := task.BulkAssignmentResult{
		Created: []task.TaskAssignment{},
		Errors:  []string{},
	}
	var assigned []employee.Employee

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, item := range req.Assignments {
			emp, err := s.EmployeeRepository.GetByID(txCtx, item.EmployeeID)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", item.EmployeeID, err))
				continue
			}
			if !emp.IsActive {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", item.EmployeeID, employee.ErrEmployeeDeactivated))
				continue
			}

			reasons, err := s.qualificationReasons(txCtx, t, emp, req.SkipCertificateValidation, req.SkipCraneTypeValidation)
			if err != nil {
				return err
			}
			if len(reasons) > 0 {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", item.EmployeeID, strings.Join(reasons, "; ")))
				continue
			}

			created, err := s.AssignmentRepository.Create(txCtx, task.TaskAssignment{
				TaskID:       req.TaskID,
				EmployeeID:   item.EmployeeID,
				CraneModelID: item.CraneModelID,
				Status:       task.AssignmentStatusAssigned,
			})
			if err != nil {
				if err == task.ErrAssignmentExists {
					result.Errors = append(result.Errors, fmt.Sprintf("%s: already assigned", item.EmployeeID))
					continue
				}
				return err
			}
			created.TaskTitle = &t.Title
			created.TaskDeadline = t.Deadline
			created.EmployeeName = &emp.Name
			result.Created = append(result.Created, created)
			assigned = append(assigned, emp)
		}
		return nil
	})
	if err != nil {
		return task.BulkAssignmentResult{}, err
	}

	for _, emp := range assigned {
		s.notifyAssigned(ctx, t, emp)
	}
	return result, nil
}

// Delete removes the assignment and clears hiring-request back-references in
// the same transaction.
func (s *Service) Delete(ctx context.Context, id string) error {
	assignment, err := s.AssignmentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.AssignmentRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return s.hiringRepo.ClearAssignment(txCtx, assignment.TaskID, assignment.EmployeeID)
	})
	if err != nil {
		return err
	}

	title := ""
	if assignment.TaskTitle != nil {
		title = *assignment.TaskTitle
	}
	s.notifier.QueueMany(ctx, []notification.CreateNotificationRequest{{
		RecipientID: assignment.EmployeeID,
		Type:        notification.TypeTaskUnassigned,
		Title:       "Opgave fjernet",
		Message:     fmt.Sprintf("Din tildeling til opgaven %q er fjernet", title),
		Data:        map[string]interface{}{"task_id": assignment.TaskID},
	}})

	return nil
}

func (s *Service) ListByTask(ctx context.Context, taskID string) ([]task.TaskAssignment, error) {
	return s.AssignmentRepository.ListByTask(ctx, taskID)
}

func (s *Service) GetByID(ctx context.Context, id string) (task.TaskAssignment, error) {
	return s.AssignmentRepository.GetByID(ctx, id)
}
