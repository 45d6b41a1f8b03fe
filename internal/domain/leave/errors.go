package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("Leave request not found")
	ErrOverlappingLeave             = errors.New("Leave request overlaps an existing request")
	ErrLeaveRequestAlreadyProcessed = errors.New("Leave request already processed")
	ErrInsufficientBalance          = errors.New("Insufficient leave balance")
	ErrBalanceNotFound              = errors.New("Leave balance not found")
	ErrInvalidDateRange             = errors.New("Leave end date precedes start date")
)
