package postgresql

import (
	"context"
	"fmt"

	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
)

type skillRepositoryImpl struct {
	db *database.DB
}

func NewSkillRepository(db *database.DB) employee.SkillRepository {
	return &skillRepositoryImpl{db: db}
}

func (r *skillRepositoryImpl) GetSkillsByEmployee(ctx context.Context, employeeID string) ([]employee.WorkerSkill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, crane_type_id, certification_expires, created_at
		FROM worker_skills
		WHERE employee_id = $1
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []employee.WorkerSkill
	for rows.Next() {
		var s employee.WorkerSkill
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.CraneTypeID, &s.CertificationExpires, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepositoryImpl) GetCertificatesByEmployee(ctx context.Context, employeeID string) ([]employee.WorkerCertificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, certificate_type_id, certificate_number, expires, created_at
		FROM worker_certificates
		WHERE employee_id = $1
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []employee.WorkerCertificate
	for rows.Next() {
		var c employee.WorkerCertificate
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.CertificateTypeID, &c.CertificateNumber, &c.Expires, &c.CreatedAt); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

func (r *skillRepositoryImpl) AddSkill(ctx context.Context, skill employee.WorkerSkill) (employee.WorkerSkill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_skills (id, employee_id, crane_type_id, certification_expires, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		ON CONFLICT (employee_id, crane_type_id)
		DO UPDATE SET certification_expires = EXCLUDED.certification_expires
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query, skill.EmployeeID, skill.CraneTypeID, skill.CertificationExpires).
		Scan(&skill.ID, &skill.CreatedAt)
	if err != nil {
		return employee.WorkerSkill{}, fmt.Errorf("failed to add worker skill: %w", err)
	}
	return skill, nil
}

func (r *skillRepositoryImpl) RemoveSkill(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM worker_skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("worker skill with id %s not found", id)
	}
	return nil
}

func (r *skillRepositoryImpl) AddCertificate(ctx context.Context, cert employee.WorkerCertificate) (employee.WorkerCertificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_certificates (id, employee_id, certificate_type_id, certificate_number, expires, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		ON CONFLICT (employee_id, certificate_type_id)
		DO UPDATE SET certificate_number = EXCLUDED.certificate_number, expires = EXCLUDED.expires
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query, cert.EmployeeID, cert.CertificateTypeID, cert.CertificateNumber, cert.Expires).
		Scan(&cert.ID, &cert.CreatedAt)
	if err != nil {
		return employee.WorkerCertificate{}, fmt.Errorf("failed to add worker certificate: %w", err)
	}
	return cert, nil
}

func (r *skillRepositoryImpl) RemoveCertificate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM worker_certificates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("worker certificate with id %s not found", id)
	}
	return nil
}
