package project

import (
	"context"
	"fmt"
	"time"

	"github.com/craneworks/craneops-backend-go/internal/domain/crane"
	"github.com/craneworks/craneops-backend-go/internal/domain/project"
	"github.com/craneworks/craneops-backend-go/internal/domain/task"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
	"github.com/craneworks/craneops-backend-go/internal/repository/postgresql"
)

type Service struct {
	db *database.DB
	project.Repository
	taskRepo  task.TaskRepository
	craneRepo crane.Repository
}

func NewService(db *database.DB, repository project.Repository, taskRepo task.TaskRepository, craneRepo crane.Repository) *Service {
	return &Service{
		db:         db,
		Repository: repository,
		taskRepo:   taskRepo,
		craneRepo:  craneRepo,
	}
}

func (s *Service) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	p := project.Project{
		Name:         req.Name,
		CustomerName: req.CustomerName,
		SiteAddress:  req.SiteAddress,
		Status:       project.ProjectStatusActive,
	}

	var err error
	if req.StartDate != nil {
		p.StartDate, err = parseDatePtr(*req.StartDate)
		if err != nil {
			return project.Project{}, err
		}
	}
	if req.EndDate != nil {
		p.EndDate, err = parseDatePtr(*req.EndDate)
		if err != nil {
			return project.Project{}, err
		}
	}

	return s.Repository.Create(ctx, p)
}

func parseDatePtr(v string) (*time.Time, error) {
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", v, err)
	}
	return &d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (project.Project, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter project.ProjectFilter) ([]project.Project, int64, error) {
	return s.Repository.List(ctx, filter)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status project.ProjectStatus) (project.Project, error) {
	if err := s.Repository.UpdateStatus(ctx, id, status); err != nil {
		return project.Project{}, err
	}
	return s.Repository.GetByID(ctx, id)
}

// Delete soft-deletes the project and cancels its open tasks in one
// transaction.
func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Status == project.ProjectStatusDeleted {
		return project.ErrProjectDeleted
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.Repository.SoftDelete(txCtx, id); err != nil {
			return err
		}
		return s.taskRepo.DeactivateByProject(txCtx, id)
	})
}

// Tasks.

func (s *Service) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	p, err := s.Repository.GetByID(ctx, req.ProjectID)
	if err != nil {
		return task.Task{}, err
	}
	if p.Status == project.ProjectStatusDeleted {
		return task.Task{}, project.ErrProjectDeleted
	}

	for _, craneTypeID := range req.RequiredCraneTypeIDs {
		if _, err := s.craneRepo.GetTypeByID(ctx, craneTypeID); err != nil {
			return task.Task{}, err
		}
	}
	if req.PreferredCraneModelID != nil {
		if _, err := s.craneRepo.GetModelByID(ctx, *req.PreferredCraneModelID); err != nil {
			return task.Task{}, err
		}
	}

	t := task.Task{
		ProjectID:             req.ProjectID,
		Title:                 req.Title,
		Description:           req.Description,
		RequiredCraneTypeIDs:  req.RequiredCraneTypeIDs,
		PreferredCraneModelID: req.PreferredCraneModelID,
		EquipmentCategoryID:   req.EquipmentCategoryID,
		EquipmentBrand:        req.EquipmentBrand,
		RequiredOperators:     req.RequiredOperators,
		Status:                task.TaskStatusPlanned,
		Priority:              task.TaskPriorityNormal,
	}
	if req.Priority != nil {
		t.Priority = task.TaskPriority(*req.Priority)
	}
	if req.Deadline != nil {
		t.Deadline, err = parseDatePtr(*req.Deadline)
		if err != nil {
			return task.Task{}, err
		}
	}

	return s.taskRepo.Create(ctx, t)
}

func (s *Service) GetTask(ctx context.Context, id string) (task.Task, error) {
	return s.taskRepo.GetByID(ctx, id)
}

func (s *Service) ListTasks(ctx context.Context, filter task.TaskFilter) ([]task.Task, int64, error) {
	return s.taskRepo.List(ctx, filter)
}

func (s *Service) UpdateTask(ctx context.Context, req task.UpdateTaskRequest) (task.Task, error) {
	if err := s.taskRepo.Update(ctx, req); err != nil {
		return task.Task{}, err
	}
	return s.taskRepo.GetByID(ctx, req.ID)
}
