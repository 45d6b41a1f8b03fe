package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/hiring"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
)

type hiringRepositoryImpl struct {
	db *database.DB
}

func NewHiringRepository(db *database.DB) hiring.Repository {
	return &hiringRepositoryImpl{db: db}
}

const hiringColumns = `
	id, customer_name, contact_email, description, requested_date, status,
	assigned_task_id, assigned_operator_id, assigned_project_id,
	created_at, updated_at
`

func scanHiringRequest(row pgx.Row) (hiring.OperatorHiringRequest, error) {
	var h hiring.OperatorHiringRequest
	err := row.Scan(
		&h.ID, &h.CustomerName, &h.ContactEmail, &h.Description, &h.RequestedDate, &h.Status,
		&h.AssignedTaskID, &h.AssignedOperatorID, &h.AssignedProjectID,
		&h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

func (r *hiringRepositoryImpl) GetByID(ctx context.Context, id string) (hiring.OperatorHiringRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + hiringColumns + ` FROM operator_hiring_requests WHERE id = $1`

	h, err := scanHiringRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return hiring.OperatorHiringRequest{}, hiring.ErrHiringRequestNotFound
		}
		return hiring.OperatorHiringRequest{}, err
	}
	return h, nil
}

func (r *hiringRepositoryImpl) List(ctx context.Context, status *string) ([]hiring.OperatorHiringRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + hiringColumns + ` FROM operator_hiring_requests`
	args := []interface{}{}
	if status != nil && *status != "" {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query hiring requests: %w", err)
	}
	defer rows.Close()

	var requests []hiring.OperatorHiringRequest
	for rows.Next() {
		h, err := scanHiringRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, h)
	}
	return requests, rows.Err()
}

func (r *hiringRepositoryImpl) Create(ctx context.Context, req hiring.OperatorHiringRequest) (hiring.OperatorHiringRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO operator_hiring_requests (id, customer_name, contact_email, description, requested_date, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		req.CustomerName, req.ContactEmail, req.Description, req.RequestedDate, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return hiring.OperatorHiringRequest{}, fmt.Errorf("failed to create hiring request: %w", err)
	}
	return req, nil
}

func (r *hiringRepositoryImpl) SetAssignment(ctx context.Context, id, taskID, employeeID, projectID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE operator_hiring_requests
		SET assigned_task_id = $1, assigned_operator_id = $2, assigned_project_id = $3,
		    status = 'assigned', updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`
	var updatedID string
	if err := q.QueryRow(ctx, query, taskID, employeeID, projectID, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return hiring.ErrHiringRequestNotFound
		}
		return fmt.Errorf("failed to set assignment on hiring request %s: %w", id, err)
	}
	return nil
}

// ClearAssignment resets every hiring request referencing the pair back to
// open. Callers run it in the same transaction as the assignment delete.
func (r *hiringRepositoryImpl) ClearAssignment(ctx context.Context, taskID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE operator_hiring_requests
		SET assigned_task_id = NULL, assigned_operator_id = NULL, assigned_project_id = NULL,
		    status = 'open', updated_at = NOW()
		WHERE assigned_task_id = $1 AND assigned_operator_id = $2
	`, taskID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to clear hiring request assignment: %w", err)
	}
	return nil
}
