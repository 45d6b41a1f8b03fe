package crane

import "time"

// CraneCategory groups crane types that share certificate requirements,
// e.g. mobile cranes, tower cranes.
type CraneCategory struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
}

type CraneType struct {
	ID         string
	CategoryID string
	Name       string
	Code       *string
	IsActive   bool
	CreatedAt  time.Time

	CategoryName *string
}

type CraneModel struct {
	ID             string
	CraneTypeID    string
	Brand          string
	Name           string
	MaxLoadTonnes  *float64
	MaxHeightMeter *float64
	IsActive       bool
	CreatedAt      time.Time
}

// CertificateType is a certification a worker can hold, e.g. a mobile crane
// certificate class.
type CertificateType struct {
	ID          string
	Name        string
	Code        *string
	Description *string
	CreatedAt   time.Time
}

// CategoryCertificate links a crane category to a certificate type every
// operator of that category must hold. Replaces the old JSON text column.
type CategoryCertificate struct {
	CategoryID        string
	CertificateTypeID string
}
