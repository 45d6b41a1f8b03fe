package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role maps to employee_role_enum in DB
type Role string

const (
	RoleArbejder   Role = "arbejder"   // crane operator
	RoleByggeleder Role = "byggeleder" // on-site supervisor
	RoleChef       Role = "chef"       // top-level administrator
)

func (r Role) Valid() bool {
	switch r {
	case RoleArbejder, RoleByggeleder, RoleChef:
		return true
	}
	return false
}

// CanApprove reports whether the role may decide leave and confirm hours.
func (r Role) CanApprove() bool {
	return r == RoleByggeleder || r == RoleChef
}

// Employee entity
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Role         Role
	IsActive     bool

	HourlyRateNormal   decimal.Decimal
	HourlyRateOvertime decimal.Decimal
	HourlyRateWeekend  decimal.Decimal

	DrivingLicenseClass   *string
	DrivingLicenseExpires *time.Time

	ZenegyEmployeeNumber *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkerSkill links a worker to a crane type they are certified to operate.
// A nil CertificationExpires means the certification never lapses.
type WorkerSkill struct {
	ID                   string
	EmployeeID           string
	CraneTypeID          string
	CertificationExpires *time.Time
	CreatedAt            time.Time
}

// WorkerCertificate links a worker to a held certificate type.
type WorkerCertificate struct {
	ID                string
	EmployeeID        string
	CertificateTypeID string
	CertificateNumber *string
	Expires           *time.Time
	CreatedAt         time.Time
}

// ValidAt reports whether the skill covers craneTypeID at the given time.
func (s WorkerSkill) ValidAt(craneTypeID string, at time.Time) bool {
	if s.CraneTypeID != craneTypeID {
		return false
	}
	return s.CertificationExpires == nil || s.CertificationExpires.After(at)
}

// ValidAt reports whether the certificate covers certificateTypeID at the given time.
func (c WorkerCertificate) ValidAt(certificateTypeID string, at time.Time) bool {
	if c.CertificateTypeID != certificateTypeID {
		return false
	}
	return c.Expires == nil || c.Expires.After(at)
}
