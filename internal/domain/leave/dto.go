package leave

import (
	"github.com/craneworks/craneops-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID string  // from JWT, never the body
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	HalfDay    bool    `json:"half_day,omitempty"`
	Reason     *string `json:"reason,omitempty"`
}

func (r CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors
	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be a valid leave type"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not precede start_date"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequestRequest struct {
	RequestID       string
	DeciderID       string
	Decision        string  `json:"decision"` // approve, reject, cancel
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func (r DecideLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsInSlice(r.Decision, []string{"approve", "reject", "cancel"}) {
		errs = append(errs, validator.ValidationError{Field: "decision", Message: "must be approve, reject or cancel"})
	}
	if r.Decision == "reject" && (r.RejectionReason == nil || validator.IsEmpty(*r.RejectionReason)) {
		errs = append(errs, validator.ValidationError{Field: "rejection_reason", Message: "is required when rejecting"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestFilter struct {
	EmployeeID *string
	Type       *string
	Status     *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}
