package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/project"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.Repository {
	return &projectRepositoryImpl{db: db}
}

func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, name, customer_name, site_address, start_date, end_date, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, p.Name, p.CustomerName, p.SiteAddress, p.StartDate, p.EndDate, p.Status).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.customer_name, p.site_address, p.start_date, p.end_date, p.status,
		       p.created_at, p.updated_at,
		       (SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id) as task_count
		FROM projects p
		WHERE p.id = $1
	`
	var p project.Project
	var taskCount int64
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.CustomerName, &p.SiteAddress, &p.StartDate, &p.EndDate, &p.Status,
		&p.CreatedAt, &p.UpdatedAt, &taskCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}
	p.TaskCount = &taskCount
	return p, nil
}

func (r *projectRepositoryImpl) List(ctx context.Context, filter project.ProjectFilter) ([]project.Project, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"status <> 'deleted'"}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(name ILIKE $%d OR customer_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	whereClause := "WHERE " + strings.Join(whereClauses, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM projects "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT id, name, customer_name, site_address, start_date, end_date, status, created_at, updated_at
		FROM projects
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CustomerName, &p.SiteAddress, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		projects = append(projects, p)
	}
	return projects, total, rows.Err()
}

func (r *projectRepositoryImpl) UpdateStatus(ctx context.Context, id string, status project.ProjectStatus) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx,
		`UPDATE projects SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING id`,
		status, id,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.ErrProjectNotFound
		}
		return fmt.Errorf("failed to update project status: %w", err)
	}
	return nil
}

// SoftDelete marks the project deleted. Task deactivation happens through
// the task repository inside the same transaction.
func (r *projectRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	return r.UpdateStatus(ctx, id, project.ProjectStatusDeleted)
}
