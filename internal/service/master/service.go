package master

import (
	"context"

	"github.com/craneworks/craneops-backend-go/internal/domain/crane"
)

// Service exposes the crane taxonomy reference data.
type Service struct {
	crane.Repository
}

func NewService(craneRepository crane.Repository) *Service {
	return &Service{Repository: craneRepository}
}

func (s *Service) ListCategories(ctx context.Context) ([]crane.CraneCategory, error) {
	return s.Repository.ListCategories(ctx)
}

func (s *Service) ListTypes(ctx context.Context) ([]crane.CraneType, error) {
	return s.Repository.ListTypes(ctx)
}

func (s *Service) ListModels(ctx context.Context, craneTypeID string) ([]crane.CraneModel, error) {
	if _, err := s.Repository.GetTypeByID(ctx, craneTypeID); err != nil {
		return nil, err
	}
	return s.Repository.ListModelsByType(ctx, craneTypeID)
}
