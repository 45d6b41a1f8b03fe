package hiring

import "errors"

var (
	ErrHiringRequestNotFound = errors.New("Hiring request not found")
)
