package workentry

import (
	"time"

	"github.com/craneworks/craneops-backend-go/internal/pkg/validator"
)

type CreateWorkEntryRequest struct {
	EmployeeID   string   // from JWT, never the body
	TaskID       string   `json:"task_id"`
	WorkDate     string   `json:"work_date"`
	StartTime    *string  `json:"start_time,omitempty"` // "15:04"
	EndTime      *string  `json:"end_time,omitempty"`
	PauseMinutes int      `json:"pause_minutes"`
	Km           *float64 `json:"km,omitempty"`
	Status       *string  `json:"status,omitempty"` // draft or pending
}

func (r CreateWorkEntryRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.TaskID) {
		errs = append(errs, validator.ValidationError{Field: "task_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "must be YYYY-MM-DD"})
	}
	for field, v := range map[string]*string{"start_time": r.StartTime, "end_time": r.EndTime} {
		if v != nil {
			if _, ok := validator.IsValidClockTime(*v); !ok {
				errs = append(errs, validator.ValidationError{Field: field, Message: "must be HH:MM"})
			}
		}
	}
	if r.PauseMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "pause_minutes", Message: "must not be negative"})
	}
	if r.Status != nil && *r.Status != string(StatusDraft) && *r.Status != string(StatusPending) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be draft or pending on creation"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkEntryRequest struct {
	ID           string
	EmployeeID   string   // from JWT
	StartTime    *string  `json:"start_time,omitempty"`
	EndTime      *string  `json:"end_time,omitempty"`
	PauseMinutes *int     `json:"pause_minutes,omitempty"`
	Km           *float64 `json:"km,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

type DecideWorkEntryRequest struct {
	ID              string
	DeciderID       string
	Approve         bool
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type WorkEntryFilter struct {
	EmployeeID    *string
	TaskID        *string
	Status        *string
	FromDate      *time.Time
	ToDate        *time.Time
	SentToPayroll *bool
	Page          int
	Limit         int
}

type WorkEntryResponse struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	EmployeeName  *string    `json:"employee_name,omitempty"`
	TaskID        string     `json:"task_id"`
	TaskTitle     *string    `json:"task_title,omitempty"`
	WorkDate      string     `json:"work_date"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	PauseMinutes  int        `json:"pause_minutes"`
	Km            *float64   `json:"km,omitempty"`
	Hours         string     `json:"hours"`
	Status        Status     `json:"status"`
	SentToPayroll bool       `json:"sent_to_payroll"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToResponse(w WorkEntry) WorkEntryResponse {
	return WorkEntryResponse{
		ID:            w.ID,
		EmployeeID:    w.EmployeeID,
		EmployeeName:  w.EmployeeName,
		TaskID:        w.TaskID,
		TaskTitle:     w.TaskTitle,
		WorkDate:      w.WorkDate.Format("2006-01-02"),
		StartTime:     w.StartTime,
		EndTime:       w.EndTime,
		PauseMinutes:  w.PauseMinutes,
		Km:            w.Km,
		Hours:         w.Hours().StringFixed(2),
		Status:        w.Status,
		SentToPayroll: w.SentToPayroll,
		CreatedAt:     w.CreatedAt,
	}
}
