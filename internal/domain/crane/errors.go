package crane

import "errors"

var (
	ErrCraneTypeNotFound       = errors.New("Crane type not found")
	ErrCraneModelNotFound      = errors.New("Crane model not found")
	ErrCertificateTypeNotFound = errors.New("Certificate type not found")
)
