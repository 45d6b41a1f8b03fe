package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeTaskAssigned   NotificationType = "task_assigned"
	TypeTaskUnassigned NotificationType = "task_unassigned"
	TypeLeaveApproved  NotificationType = "leave_approved"
	TypeLeaveRejected  NotificationType = "leave_rejected"
	TypeLeaveCancelled NotificationType = "leave_cancelled"
	TypeHoursConfirmed NotificationType = "hours_confirmed"
	TypeHoursRejected  NotificationType = "hours_rejected"
	TypePayrollSent    NotificationType = "payroll_sent"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
