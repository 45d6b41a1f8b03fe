package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("Employee not found")
	ErrEmailExists         = errors.New("Email already registered")
	ErrEmployeeDeactivated = errors.New("Employee is deactivated")
	ErrInvalidRole         = errors.New("Invalid employee role")
)
