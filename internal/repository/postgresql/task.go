package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/task"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (
			id, project_id, title, description, deadline,
			preferred_crane_model_id, equipment_category_id, equipment_brand,
			required_operators, status, priority, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		t.ProjectID, t.Title, t.Description, t.Deadline,
		t.PreferredCraneModelID, t.EquipmentCategoryID, t.EquipmentBrand,
		t.RequiredOperators, t.Status, t.Priority,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	for _, craneTypeID := range t.RequiredCraneTypeIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO task_crane_types (task_id, crane_type_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			t.ID, craneTypeID,
		)
		if err != nil {
			return task.Task{}, fmt.Errorf("failed to link crane type %s: %w", craneTypeID, err)
		}
	}

	return t, nil
}

func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.project_id, t.title, t.description, t.deadline,
		       t.preferred_crane_model_id, t.equipment_category_id, t.equipment_brand,
		       t.required_operators, t.status, t.priority, t.created_at, t.updated_at,
		       p.name as project_name
		FROM tasks t
		JOIN projects p ON t.project_id = p.id
		WHERE t.id = $1
	`
	var t task.Task
	var projectName string
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Deadline,
		&t.PreferredCraneModelID, &t.EquipmentCategoryID, &t.EquipmentBrand,
		&t.RequiredOperators, &t.Status, &t.Priority, &t.CreatedAt, &t.UpdatedAt,
		&projectName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, err
	}
	t.ProjectName = &projectName

	craneTypeIDs, err := r.craneTypeIDs(ctx, q, id)
	if err != nil {
		return task.Task{}, err
	}
	t.RequiredCraneTypeIDs = craneTypeIDs

	return t, nil
}

func (r *taskRepositoryImpl) craneTypeIDs(ctx context.Context, q database.Querier, taskID string) ([]string, error) {
	rows, err := q.Query(ctx, `SELECT crane_type_id FROM task_crane_types WHERE task_id = $1`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query task crane types: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *taskRepositoryImpl) List(ctx context.Context, filter task.TaskFilter) ([]task.Task, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.ProjectID != nil && *filter.ProjectID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("t.project_id = $%d", argIdx))
		args = append(args, *filter.ProjectID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("t.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := "WHERE " + strings.Join(whereClauses, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM tasks t "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT t.id, t.project_id, t.title, t.description, t.deadline,
		       t.preferred_crane_model_id, t.equipment_category_id, t.equipment_brand,
		       t.required_operators, t.status, t.priority, t.created_at, t.updated_at,
		       p.name as project_name
		FROM tasks t
		JOIN projects p ON t.project_id = p.id
		%s
		ORDER BY t.deadline ASC NULLS LAST, t.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		var projectName string
		if err := rows.Scan(
			&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Deadline,
			&t.PreferredCraneModelID, &t.EquipmentCategoryID, &t.EquipmentBrand,
			&t.RequiredOperators, &t.Status, &t.Priority, &t.CreatedAt, &t.UpdatedAt,
			&projectName,
		); err != nil {
			return nil, 0, err
		}
		t.ProjectName = &projectName
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range tasks {
		ids, err := r.craneTypeIDs(ctx, q, tasks[i].ID)
		if err != nil {
			return nil, 0, err
		}
		tasks[i].RequiredCraneTypeIDs = ids
	}

	return tasks, total, nil
}

func (r *taskRepositoryImpl) Update(ctx context.Context, req task.UpdateTaskRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	addUpdate := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Title != nil {
		addUpdate("title", *req.Title)
	}
	if req.Description != nil {
		addUpdate("description", *req.Description)
	}
	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return fmt.Errorf("invalid deadline: %w", err)
		}
		addUpdate("deadline", deadline)
	}
	if req.Status != nil {
		addUpdate("status", *req.Status)
	}
	if req.Priority != nil {
		addUpdate("priority", *req.Priority)
	}
	if req.PreferredCraneModelID != nil {
		addUpdate("preferred_crane_model_id", *req.PreferredCraneModelID)
	}
	if req.RequiredOperators != nil {
		addUpdate("required_operators", *req.RequiredOperators)
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for task update")
	}

	updates = append(updates, "updated_at = NOW()")

	args = append(args, req.ID)
	sql := "UPDATE tasks SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task %s: %w", req.ID, err)
	}
	return nil
}

// DeactivateByProject cancels every open task under the project. Runs inside
// the caller's transaction when the project is soft deleted.
func (r *taskRepositoryImpl) DeactivateByProject(ctx context.Context, projectID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE tasks
		SET status = 'cancelled', updated_at = NOW()
		WHERE project_id = $1 AND status IN ('planned', 'active')
	`, projectID)
	if err != nil {
		return fmt.Errorf("failed to deactivate tasks for project %s: %w", projectID, err)
	}
	return nil
}
