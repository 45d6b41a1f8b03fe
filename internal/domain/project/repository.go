package project

import "context"

// Repository - interface for projects table
type Repository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]Project, int64, error)
	UpdateStatus(ctx context.Context, id string, status ProjectStatus) error

	// SoftDelete marks the project deleted and deactivates its tasks.
	// Must run inside the caller's transaction.
	SoftDelete(ctx context.Context, id string) error
}
