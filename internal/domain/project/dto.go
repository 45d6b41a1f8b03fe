package project

import (
	"github.com/craneworks/craneops-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name         string  `json:"name"`
	CustomerName string  `json:"customer_name"`
	SiteAddress  *string `json:"site_address,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
}

func (r CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.CustomerName) {
		errs = append(errs, validator.ValidationError{Field: "customer_name", Message: "is required"})
	}
	for field, v := range map[string]*string{"start_date": r.StartDate, "end_date": r.EndDate} {
		if v != nil {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{Field: field, Message: "must be YYYY-MM-DD"})
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectFilter struct {
	Status *string
	Search *string
	Page   int
	Limit  int
}
