package project

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
	ProjectStatusDeleted   ProjectStatus = "deleted"
)

// Project entity
type Project struct {
	ID           string
	Name         string
	CustomerName string
	SiteAddress  *string
	StartDate    *time.Time
	EndDate      *time.Time
	Status       ProjectStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time

	TaskCount *int64
}
