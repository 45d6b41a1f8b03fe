package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/craneworks/craneops-backend-go/internal/domain/auth"
	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
	"github.com/craneworks/craneops-backend-go/internal/pkg/jwt"
)

type Service struct {
	employee.EmployeeRepository
	jwtService jwt.Service
}

func NewService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service) *Service {
	return &Service{
		EmployeeRepository: employeeRepository,
		jwtService:         jwtService,
	}
}

// Login verifies the credentials and issues an access/refresh token pair.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenPairResponse, error) {
	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenPairResponse{}, err
	}

	if !emp.IsActive {
		return auth.TokenPairResponse{}, auth.ErrAccountDeactivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
	}

	return s.tokenPair(emp)
}

// Refresh exchanges a valid refresh token for a new pair and revokes the old
// one so it cannot be replayed.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.TokenPairResponse, error) {
	employeeID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}
	if !emp.IsActive {
		return auth.TokenPairResponse{}, auth.ErrAccountDeactivated
	}

	s.jwtService.RevokeToken(refreshToken)

	return s.tokenPair(emp)
}

// Logout revokes the refresh token.
func (s *Service) Logout(_ context.Context, refreshToken string) error {
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

// SSEToken issues a short-lived token for the event stream endpoint.
func (s *Service) SSEToken(_ context.Context, employeeID string) (string, int, error) {
	return s.jwtService.GenerateSSEToken(employeeID)
}

func (s *Service) tokenPair(emp employee.Employee) (auth.TokenPairResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenPairResponse{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
		EmployeeID:       emp.ID,
		Role:             string(emp.Role),
	}, nil
}
