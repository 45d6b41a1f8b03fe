package payroll

import "errors"

var (
	ErrBatchNotFound  = errors.New("Payroll batch not found")
	ErrNothingToBatch = errors.New("No confirmed hours ready for payroll")
)
