package workentry

import "errors"

var (
	ErrWorkEntryNotFound      = errors.New("Work entry not found")
	ErrWorkEntryLocked        = errors.New("Work entry can no longer be edited")
	ErrWorkEntryExists        = errors.New("Work entry already exists for this task and date")
	ErrWorkEntrySentToPayroll = errors.New("Work entry has been sent to payroll")
	ErrNotEntryOwner          = errors.New("Work entry belongs to another employee")
	ErrAlreadyProcessed       = errors.New("Work entry already processed")
)
