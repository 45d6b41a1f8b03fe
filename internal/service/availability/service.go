package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/craneworks/craneops-backend-go/internal/domain/availability"
	"github.com/craneworks/craneops-backend-go/internal/domain/crane"
	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
	"github.com/craneworks/craneops-backend-go/internal/domain/task"
)

// DefaultWindowDays is the conflict look-ahead when no target date is given.
const DefaultWindowDays = 7

type Service struct {
	employee.EmployeeRepository
	employee.SkillRepository
	craneRepo      crane.Repository
	taskRepo       task.TaskRepository
	assignmentRepo task.AssignmentRepository
	calendarRepo   task.CalendarRepository
}

func NewService(
	employeeRepository employee.EmployeeRepository,
	skillRepository employee.SkillRepository,
	craneRepo crane.Repository,
	taskRepo task.TaskRepository,
	assignmentRepo task.AssignmentRepository,
	calendarRepo task.CalendarRepository,
) *Service {
	return &Service{
		EmployeeRepository: employeeRepository,
		SkillRepository:    skillRepository,
		craneRepo:          craneRepo,
		taskRepo:           taskRepo,
		assignmentRepo:     assignmentRepo,
		calendarRepo:       calendarRepo,
	}
}

// IsAvailable evaluates the employee's schedule against the conflict window
// [now, targetDate or now+7d] and the weekly hour cap.
func (s *Service) IsAvailable(ctx context.Context, employeeID string, targetDate *time.Time, excludeTaskID *string) (availability.Verdict, error) {
	assignments, err := s.assignmentRepo.ListOpenByEmployee(ctx, employeeID)
	if err != nil {
		return availability.Verdict{}, fmt.Errorf("failed to list open assignments: %w", err)
	}

	now := time.Now()
	hours, err := s.calendarRepo.WeekHours(ctx, employeeID, WeekStart(now))
	if err != nil {
		return availability.Verdict{}, fmt.Errorf("failed to sum week hours: %w", err)
	}

	return BuildVerdict(employeeID, assignments, hours, now, targetDate, excludeTaskID), nil
}

// WeekStart returns the Monday 00:00 of t's week in t's location.
func WeekStart(t time.Time) time.Time {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// BuildVerdict is the pure conflict evaluation. An assignment conflicts when
// its task deadline falls inside [now, windowEnd]; a nil deadline conflicts
// regardless of the window. next_available_date is the latest conflicting
// deadline, nil when a conflict is unbounded or there is none.
func BuildVerdict(employeeID string, assignments []task.TaskAssignment, weekHours float64, now time.Time, targetDate *time.Time, excludeTaskID *string) availability.Verdict {
	windowEnd := now.AddDate(0, 0, DefaultWindowDays)
	if targetDate != nil {
		windowEnd = *targetDate
	}

	var conflicts []availability.ConflictingTask
	var nextAvailable *time.Time
	unbounded := false

	for _, a := range assignments {
		if excludeTaskID != nil && a.TaskID == *excludeTaskID {
			continue
		}

		if a.TaskDeadline == nil {
			unbounded = true
			conflicts = append(conflicts, conflictOf(a))
			continue
		}

		d := *a.TaskDeadline
		if d.Before(now) || d.After(windowEnd) {
			continue
		}

		conflicts = append(conflicts, conflictOf(a))
		if nextAvailable == nil || d.After(*nextAvailable) {
			next := d
			nextAvailable = &next
		}
	}

	if unbounded {
		nextAvailable = nil
	}

	return availability.Verdict{
		EmployeeID:        employeeID,
		IsAvailable:       len(conflicts) == 0 && weekHours < availability.MaxWeeklyHours,
		ConflictingTasks:  conflicts,
		WorkHoursThisWeek: weekHours,
		MaxWeeklyHours:    availability.MaxWeeklyHours,
		NextAvailableDate: nextAvailable,
	}
}

func conflictOf(a task.TaskAssignment) availability.ConflictingTask {
	title := ""
	if a.TaskTitle != nil {
		title = *a.TaskTitle
	}
	return availability.ConflictingTask{
		TaskID:    a.TaskID,
		TaskTitle: title,
		Deadline:  a.TaskDeadline,
	}
}

// EligibilityOptions control which qualification checks run.
type EligibilityOptions struct {
	SkipCertificateValidation bool
	SkipCraneTypeValidation   bool
	IncludeAvailability       bool
	TargetDate                *time.Time
}

// AvailableWorkers returns every active crane operator annotated with
// qualification results for the task, optionally combined with availability.
func (s *Service) AvailableWorkers(ctx context.Context, taskID string, opts EligibilityOptions) ([]availability.EligibleWorker, error) {
	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	requiredCerts, err := s.craneRepo.GetRequiredCertificates(ctx, t.RequiredCraneTypeIDs)
	if err != nil {
		return nil, err
	}

	role := string(employee.RoleArbejder)
	active := true
	workers, _, err := s.EmployeeRepository.List(ctx, employee.EmployeeFilter{
		Role: &role, IsActive: &active, Limit: 1000,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	now := time.Now()
	results := make([]availability.EligibleWorker, 0, len(workers))
	for _, w := range workers {
		skills, err := s.SkillRepository.GetSkillsByEmployee(ctx, w.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load skills for %s: %w", w.ID, err)
		}
		certs, err := s.SkillRepository.GetCertificatesByEmployee(ctx, w.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load certificates for %s: %w", w.ID, err)
		}

		result := EvaluateQualifications(w, t.RequiredCraneTypeIDs, requiredCerts, skills, certs, now, opts)

		if opts.IncludeAvailability {
			verdict, err := s.IsAvailable(ctx, w.ID, opts.TargetDate, &taskID)
			if err != nil {
				return nil, err
			}
			result.Availability = &verdict
		}

		results = append(results, result)
	}
	return results, nil
}

// EvaluateWorker runs the qualification checks for a single worker against
// a task. Used by assignment creation to validate before writing.
func (s *Service) EvaluateWorker(ctx context.Context, t task.Task, w employee.Employee, opts EligibilityOptions) (availability.EligibleWorker, error) {
	requiredCerts, err := s.craneRepo.GetRequiredCertificates(ctx, t.RequiredCraneTypeIDs)
	if err != nil {
		return availability.EligibleWorker{}, err
	}
	skills, err := s.SkillRepository.GetSkillsByEmployee(ctx, w.ID)
	if err != nil {
		return availability.EligibleWorker{}, fmt.Errorf("failed to load skills for %s: %w", w.ID, err)
	}
	certs, err := s.SkillRepository.GetCertificatesByEmployee(ctx, w.ID)
	if err != nil {
		return availability.EligibleWorker{}, fmt.Errorf("failed to load certificates for %s: %w", w.ID, err)
	}
	return EvaluateQualifications(w, t.RequiredCraneTypeIDs, requiredCerts, skills, certs, time.Now(), opts), nil
}

// EvaluateQualifications is the pure eligibility check for one worker.
// Missing or expired qualifications become textual reasons; nothing is
// thrown. The skip flags mark the corresponding check as passed.
func EvaluateQualifications(
	w employee.Employee,
	requiredCraneTypeIDs []string,
	requiredCerts []crane.CertificateType,
	skills []employee.WorkerSkill,
	certs []employee.WorkerCertificate,
	now time.Time,
	opts EligibilityOptions,
) availability.EligibleWorker {
	result := availability.EligibleWorker{
		EmployeeID:              w.ID,
		Name:                    w.Name,
		HasRequiredCertificates: true,
		HasRequiredCraneTypes:   true,
	}

	if !opts.SkipCertificateValidation {
		for _, required := range requiredCerts {
			if !hasValidCertificate(certs, required.ID, now) {
				result.HasRequiredCertificates = false
				result.IneligibilityReasons = append(result.IneligibilityReasons,
					fmt.Sprintf("missing or expired certificate: %s", required.Name))
			}
		}
	}

	if !opts.SkipCraneTypeValidation {
		for _, craneTypeID := range requiredCraneTypeIDs {
			if !hasValidSkill(skills, craneTypeID, now) {
				result.HasRequiredCraneTypes = false
				result.IneligibilityReasons = append(result.IneligibilityReasons,
					fmt.Sprintf("not qualified for crane type %s", craneTypeID))
			}
		}
	}

	return result
}

func hasValidCertificate(certs []employee.WorkerCertificate, certificateTypeID string, now time.Time) bool {
	for _, c := range certs {
		if c.ValidAt(certificateTypeID, now) {
			return true
		}
	}
	return false
}

func hasValidSkill(skills []employee.WorkerSkill, craneTypeID string, now time.Time) bool {
	for _, s := range skills {
		if s.ValidAt(craneTypeID, now) {
			return true
		}
	}
	return false
}
