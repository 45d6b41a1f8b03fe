package hiring

import (
	"context"
	"fmt"
	"time"

	"github.com/craneworks/craneops-backend-go/internal/domain/hiring"
)

type Service struct {
	hiring.Repository
}

func NewService(repository hiring.Repository) *Service {
	return &Service{Repository: repository}
}

type CreateRequest struct {
	CustomerName  string  `json:"customer_name"`
	ContactEmail  *string `json:"contact_email,omitempty"`
	Description   *string `json:"description,omitempty"`
	RequestedDate *string `json:"requested_date,omitempty"`
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (hiring.OperatorHiringRequest, error) {
	if req.CustomerName == "" {
		return hiring.OperatorHiringRequest{}, fmt.Errorf("customer name is required")
	}

	request := hiring.OperatorHiringRequest{
		CustomerName: req.CustomerName,
		ContactEmail: req.ContactEmail,
		Description:  req.Description,
		Status:       hiring.RequestStatusOpen,
	}
	if req.RequestedDate != nil {
		d, err := time.Parse("2006-01-02", *req.RequestedDate)
		if err != nil {
			return hiring.OperatorHiringRequest{}, fmt.Errorf("invalid requested date: %w", err)
		}
		request.RequestedDate = &d
	}

	return s.Repository.Create(ctx, request)
}

func (s *Service) GetByID(ctx context.Context, id string) (hiring.OperatorHiringRequest, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, status *string) ([]hiring.OperatorHiringRequest, error) {
	return s.Repository.List(ctx, status)
}
