package response

import (
	"errors"
	"net/http"

	"github.com/craneworks/craneops-backend-go/internal/domain/auth"
	"github.com/craneworks/craneops-backend-go/internal/domain/crane"
	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
	"github.com/craneworks/craneops-backend-go/internal/domain/hiring"
	"github.com/craneworks/craneops-backend-go/internal/domain/leave"
	"github.com/craneworks/craneops-backend-go/internal/domain/notification"
	"github.com/craneworks/craneops-backend-go/internal/domain/payroll"
	"github.com/craneworks/craneops-backend-go/internal/domain/project"
	"github.com/craneworks/craneops-backend-go/internal/domain/task"
	"github.com/craneworks/craneops-backend-go/internal/domain/workentry"
	"github.com/craneworks/craneops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountDeactivated),
		errors.Is(err, employee.ErrEmployeeDeactivated):
		Forbidden(w, "Account is deactivated")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, "Invalid employee role", nil)

	// Crane taxonomy
	case errors.Is(err, crane.ErrCraneTypeNotFound):
		NotFound(w, "Crane type not found")
	case errors.Is(err, crane.ErrCraneModelNotFound):
		NotFound(w, "Crane model not found")
	case errors.Is(err, crane.ErrCertificateTypeNotFound):
		NotFound(w, "Certificate type not found")

	// Projects and tasks
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectDeleted):
		Conflict(w, "Project has been deleted")
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrTaskClosed):
		Conflict(w, "Task is not open for assignment")
	case errors.Is(err, task.ErrAssignmentNotFound):
		NotFound(w, "Task assignment not found")
	case errors.Is(err, task.ErrAssignmentExists):
		Conflict(w, "Employee is already assigned to this task")
	case errors.Is(err, task.ErrWorkerNotEligible):
		UnprocessableEntity(w, err.Error())

	// Hiring requests
	case errors.Is(err, hiring.ErrHiringRequestNotFound):
		NotFound(w, "Hiring request not found")

	// Work entries
	case errors.Is(err, workentry.ErrWorkEntryNotFound):
		NotFound(w, "Work entry not found")
	case errors.Is(err, workentry.ErrWorkEntryExists):
		Conflict(w, "Work entry already exists for this task and date")
	case errors.Is(err, workentry.ErrWorkEntryLocked):
		Conflict(w, "Work entry can no longer be edited")
	case errors.Is(err, workentry.ErrWorkEntrySentToPayroll):
		Conflict(w, "Work entry has been sent to payroll")
	case errors.Is(err, workentry.ErrAlreadyProcessed):
		Conflict(w, "Work entry already processed")
	case errors.Is(err, workentry.ErrNotEntryOwner):
		Forbidden(w, "Work entry belongs to another employee")

	// Leave
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Leave request overlaps an existing request")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Leave end date precedes start date", nil)

	// Payroll
	case errors.Is(err, payroll.ErrBatchNotFound):
		NotFound(w, "Payroll batch not found")
	case errors.Is(err, payroll.ErrNothingToBatch):
		BadRequest(w, "No confirmed hours ready for payroll", nil)

	// Notifications
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
