package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/crane"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
)

type craneRepositoryImpl struct {
	db *database.DB
}

func NewCraneRepository(db *database.DB) crane.Repository {
	return &craneRepositoryImpl{db: db}
}

func (r *craneRepositoryImpl) ListCategories(ctx context.Context) ([]crane.CraneCategory, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description, created_at FROM crane_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []crane.CraneCategory
	for rows.Next() {
		var c crane.CraneCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *craneRepositoryImpl) ListTypes(ctx context.Context) ([]crane.CraneType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ct.id, ct.category_id, ct.name, ct.code, ct.is_active, ct.created_at,
		       cc.name as category_name
		FROM crane_types ct
		JOIN crane_categories cc ON ct.category_id = cc.id
		WHERE ct.is_active
		ORDER BY ct.name
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []crane.CraneType
	for rows.Next() {
		var t crane.CraneType
		var categoryName string
		if err := rows.Scan(&t.ID, &t.CategoryID, &t.Name, &t.Code, &t.IsActive, &t.CreatedAt, &categoryName); err != nil {
			return nil, err
		}
		t.CategoryName = &categoryName
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *craneRepositoryImpl) GetTypeByID(ctx context.Context, id string) (crane.CraneType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, category_id, name, code, is_active, created_at
		FROM crane_types WHERE id = $1
	`
	var t crane.CraneType
	err := q.QueryRow(ctx, query, id).Scan(&t.ID, &t.CategoryID, &t.Name, &t.Code, &t.IsActive, &t.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return crane.CraneType{}, crane.ErrCraneTypeNotFound
		}
		return crane.CraneType{}, err
	}
	return t, nil
}

func (r *craneRepositoryImpl) ListModelsByType(ctx context.Context, craneTypeID string) ([]crane.CraneModel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, crane_type_id, brand, name, max_load_tonnes, max_height_meter, is_active, created_at
		FROM crane_models
		WHERE crane_type_id = $1 AND is_active
		ORDER BY brand, name
	`
	rows, err := q.Query(ctx, query, craneTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var models []crane.CraneModel
	for rows.Next() {
		var m crane.CraneModel
		if err := rows.Scan(&m.ID, &m.CraneTypeID, &m.Brand, &m.Name, &m.MaxLoadTonnes, &m.MaxHeightMeter, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

func (r *craneRepositoryImpl) GetModelByID(ctx context.Context, id string) (crane.CraneModel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, crane_type_id, brand, name, max_load_tonnes, max_height_meter, is_active, created_at
		FROM crane_models WHERE id = $1
	`
	var m crane.CraneModel
	err := q.QueryRow(ctx, query, id).Scan(&m.ID, &m.CraneTypeID, &m.Brand, &m.Name, &m.MaxLoadTonnes, &m.MaxHeightMeter, &m.IsActive, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return crane.CraneModel{}, crane.ErrCraneModelNotFound
		}
		return crane.CraneModel{}, err
	}
	return m, nil
}

func (r *craneRepositoryImpl) GetRequiredCertificates(ctx context.Context, craneTypeIDs []string) ([]crane.CertificateType, error) {
	if len(craneTypeIDs) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT cert.id, cert.name, cert.code, cert.description, cert.created_at
		FROM certificate_types cert
		JOIN crane_category_certificates ccc ON ccc.certificate_type_id = cert.id
		JOIN crane_types ct ON ct.category_id = ccc.category_id
		WHERE ct.id = ANY($1)
	`
	rows, err := q.Query(ctx, query, craneTypeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve required certificates: %w", err)
	}
	defer rows.Close()

	var certs []crane.CertificateType
	for rows.Next() {
		var c crane.CertificateType
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}
