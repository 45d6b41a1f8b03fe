package employee

import "context"

// EmployeeRepository - interface for employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Deactivate(ctx context.Context, id string, namespacedEmail string) error
	HardDelete(ctx context.Context, id string) error
	HasWorkHistory(ctx context.Context, id string) (bool, error)
}

// SkillRepository - interface for worker_skills and worker_certificates tables
type SkillRepository interface {
	GetSkillsByEmployee(ctx context.Context, employeeID string) ([]WorkerSkill, error)
	GetCertificatesByEmployee(ctx context.Context, employeeID string) ([]WorkerCertificate, error)
	AddSkill(ctx context.Context, skill WorkerSkill) (WorkerSkill, error)
	RemoveSkill(ctx context.Context, id string) error
	AddCertificate(ctx context.Context, cert WorkerCertificate) (WorkerCertificate, error)
	RemoveCertificate(ctx context.Context, id string) error
}
