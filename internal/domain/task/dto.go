package task

import (
	"github.com/craneworks/craneops-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	ProjectID             string   `json:"project_id"`
	Title                 string   `json:"title"`
	Description           *string  `json:"description,omitempty"`
	Deadline              *string  `json:"deadline,omitempty"`
	RequiredCraneTypeIDs  []string `json:"required_crane_type_ids,omitempty"`
	PreferredCraneModelID *string  `json:"preferred_crane_model_id,omitempty"`
	EquipmentCategoryID   *string  `json:"equipment_category_id,omitempty"`
	EquipmentBrand        *string  `json:"equipment_brand,omitempty"`
	RequiredOperators     int      `json:"required_operators"`
	Priority              *string  `json:"priority,omitempty"`
}

func (r CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.Deadline != nil {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{Field: "deadline", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.RequiredOperators < 1 {
		errs = append(errs, validator.ValidationError{Field: "required_operators", Message: "must be at least 1"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	ID                    string
	Title                 *string `json:"title,omitempty"`
	Description           *string `json:"description,omitempty"`
	Deadline              *string `json:"deadline,omitempty"`
	Status                *string `json:"status,omitempty"`
	Priority              *string `json:"priority,omitempty"`
	PreferredCraneModelID *string `json:"preferred_crane_model_id,omitempty"`
	RequiredOperators     *int    `json:"required_operators,omitempty"`
}

type TaskFilter struct {
	ProjectID *string
	Status    *string
	Page      int
	Limit     int
}

// CreateAssignmentRequest creates a single task assignment. HiringRequestID
// links the assignment back to an operator hiring request in the same
// transaction.
type CreateAssignmentRequest struct {
	TaskID                    string  `json:"task_id"`
	EmployeeID                string  `json:"employee_id"`
	CraneModelID              *string `json:"crane_model_id,omitempty"`
	WorkDate                  *string `json:"work_date,omitempty"`
	Notes                     *string `json:"notes,omitempty"`
	HiringRequestID           *string `json:"hiring_request_id,omitempty"`
	SkipCertificateValidation bool    `json:"skip_certificate_validation,omitempty"`
	SkipCraneTypeValidation   bool    `json:"skip_crane_type_validation,omitempty"`
}

func (r CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.TaskID) {
		errs = append(errs, validator.ValidationError{Field: "task_id", Message: "is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.WorkDate != nil {
		if _, ok := validator.IsValidDate(*r.WorkDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "work_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkAssignmentItem is one employee in a bulk assignment call.
type BulkAssignmentItem struct {
	EmployeeID   string  `json:"employee_id"`
	CraneModelID *string `json:"crane_model_id,omitempty"`
}

type BulkCreateAssignmentRequest struct {
	TaskID                    string               `json:"task_id"`
	Assignments               []BulkAssignmentItem `json:"assignments"`
	SkipCertificateValidation bool                 `json:"skip_certificate_validation,omitempty"`
	SkipCraneTypeValidation   bool                 `json:"skip_crane_type_validation,omitempty"`
}

func (r BulkCreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.TaskID) {
		errs = append(errs, validator.ValidationError{Field: "task_id", Message: "is required"})
	}
	if len(r.Assignments) == 0 {
		errs = append(errs, validator.ValidationError{Field: "assignments", Message: "must not be empty"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkAssignmentResult reports per-item outcomes: successes are committed
// even when other items fail, failures become error strings.
type BulkAssignmentResult struct {
	Created []TaskAssignment `json:"created"`
	Errors  []string         `json:"errors"`
}
