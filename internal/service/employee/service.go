package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
)

type Service struct {
	employee.EmployeeRepository
	employee.SkillRepository
}

func NewService(employeeRepository employee.EmployeeRepository, skillRepository employee.SkillRepository) *Service {
	return &Service{
		EmployeeRepository: employeeRepository,
		SkillRepository:    skillRepository,
	}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	emp := employee.Employee{
		Name:                req.Name,
		Email:               req.Email,
		PasswordHash:        string(hash),
		Phone:               req.Phone,
		Role:                employee.Role(req.Role),
		DrivingLicenseClass: req.DrivingLicenseClass,
	}

	emp.HourlyRateNormal, err = decimal.NewFromString(req.HourlyRateNormal)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid normal rate: %w", err)
	}
	emp.HourlyRateOvertime, err = decimal.NewFromString(req.HourlyRateOvertime)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid overtime rate: %w", err)
	}
	emp.HourlyRateWeekend, err = decimal.NewFromString(req.HourlyRateWeekend)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid weekend rate: %w", err)
	}

	if req.DrivingLicenseExpires != nil {
		expires, err := time.Parse("2006-01-02", *req.DrivingLicenseExpires)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid driving license expiry: %w", err)
		}
		emp.DrivingLicenseExpires = &expires
	}

	return s.EmployeeRepository.Create(ctx, emp)
}

func (s *Service) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return s.EmployeeRepository.List(ctx, filter)
}

func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if req.Role != nil && !employee.Role(*req.Role).Valid() {
		return employee.Employee{}, employee.ErrInvalidRole
	}
	if err := s.EmployeeRepository.Update(ctx, req); err != nil {
		return employee.Employee{}, err
	}
	return s.EmployeeRepository.GetByID(ctx, req.ID)
}

// Delete removes an employee. Employees with logged work or assignments are
// deactivated and their email namespaced so the address can be reused;
// employees with no history are removed outright.
func (s *Service) Delete(ctx context.Context, id string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	hasHistory, err := s.EmployeeRepository.HasWorkHistory(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check work history: %w", err)
	}

	if hasHistory {
		namespaced := fmt.Sprintf("deleted+%s+%s", emp.ID, emp.Email)
		return s.EmployeeRepository.Deactivate(ctx, id, namespaced)
	}
	return s.EmployeeRepository.HardDelete(ctx, id)
}

// Skills and certificates.

func (s *Service) GetSkills(ctx context.Context, employeeID string) ([]employee.WorkerSkill, []employee.WorkerCertificate, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, nil, err
	}
	skills, err := s.SkillRepository.GetSkillsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, nil, err
	}
	certs, err := s.SkillRepository.GetCertificatesByEmployee(ctx, employeeID)
	if err != nil {
		return nil, nil, err
	}
	return skills, certs, nil
}

func (s *Service) AddSkill(ctx context.Context, skill employee.WorkerSkill) (employee.WorkerSkill, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, skill.EmployeeID); err != nil {
		return employee.WorkerSkill{}, err
	}
	return s.SkillRepository.AddSkill(ctx, skill)
}

func (s *Service) RemoveSkill(ctx context.Context, id string) error {
	return s.SkillRepository.RemoveSkill(ctx, id)
}

func (s *Service) AddCertificate(ctx context.Context, cert employee.WorkerCertificate) (employee.WorkerCertificate, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, cert.EmployeeID); err != nil {
		return employee.WorkerCertificate{}, err
	}
	return s.SkillRepository.AddCertificate(ctx, cert)
}

func (s *Service) RemoveCertificate(ctx context.Context, id string) error {
	return s.SkillRepository.RemoveCertificate(ctx, id)
}
