package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/craneworks/craneops-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	Password              string  `json:"password"`
	Phone                 *string `json:"phone,omitempty"`
	Role                  string  `json:"role"`
	HourlyRateNormal      string  `json:"hourly_rate_normal"`
	HourlyRateOvertime    string  `json:"hourly_rate_overtime"`
	HourlyRateWeekend     string  `json:"hourly_rate_weekend"`
	DrivingLicenseClass   *string `json:"driving_license_class,omitempty"`
	DrivingLicenseExpires *string `json:"driving_license_expires,omitempty"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if !Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of arbejder, byggeleder, chef"})
	}
	for field, raw := range map[string]string{
		"hourly_rate_normal":   r.HourlyRateNormal,
		"hourly_rate_overtime": r.HourlyRateOvertime,
		"hourly_rate_weekend":  r.HourlyRateWeekend,
	} {
		if _, err := decimal.NewFromString(raw); err != nil {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be a decimal amount"})
		}
	}
	if r.DrivingLicenseExpires != nil {
		if _, ok := validator.IsValidDate(*r.DrivingLicenseExpires); !ok {
			errs = append(errs, validator.ValidationError{Field: "driving_license_expires", Message: "must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                    string
	Name                  *string `json:"name,omitempty"`
	Phone                 *string `json:"phone,omitempty"`
	Role                  *string `json:"role,omitempty"`
	IsActive              *bool   `json:"is_active,omitempty"`
	HourlyRateNormal      *string `json:"hourly_rate_normal,omitempty"`
	HourlyRateOvertime    *string `json:"hourly_rate_overtime,omitempty"`
	HourlyRateWeekend     *string `json:"hourly_rate_weekend,omitempty"`
	DrivingLicenseClass   *string `json:"driving_license_class,omitempty"`
	DrivingLicenseExpires *string `json:"driving_license_expires,omitempty"`
}

type EmployeeResponse struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email"`
	Phone                 *string    `json:"phone,omitempty"`
	Role                  Role       `json:"role"`
	IsActive              bool       `json:"is_active"`
	HourlyRateNormal      string     `json:"hourly_rate_normal"`
	HourlyRateOvertime    string     `json:"hourly_rate_overtime"`
	HourlyRateWeekend     string     `json:"hourly_rate_weekend"`
	DrivingLicenseClass   *string    `json:"driving_license_class,omitempty"`
	DrivingLicenseExpires *time.Time `json:"driving_license_expires,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                    e.ID,
		Name:                  e.Name,
		Email:                 e.Email,
		Phone:                 e.Phone,
		Role:                  e.Role,
		IsActive:              e.IsActive,
		HourlyRateNormal:      e.HourlyRateNormal.StringFixed(2),
		HourlyRateOvertime:    e.HourlyRateOvertime.StringFixed(2),
		HourlyRateWeekend:     e.HourlyRateWeekend.StringFixed(2),
		DrivingLicenseClass:   e.DrivingLicenseClass,
		DrivingLicenseExpires: e.DrivingLicenseExpires,
		CreatedAt:             e.CreatedAt,
	}
}

type EmployeeFilter struct {
	Role     *string
	IsActive *bool
	Search   *string
	Page     int
	Limit    int
}
