package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	"github.com/maag070208/AXZY-PARK-API/entity"
	userpkg "github.com/maag070208/AXZY-PARK-API/user"
)

// userService implements user.Service.
type userService struct {
	repo userpkg.Repository
}

// NewUserService constructs a Service backed by the provided repository.
func NewUserService(repo userpkg.Repository) userpkg.Service {
	return &userService{repo: repo}
}

func (s *userService) RegisterUser(ctx context.Context, req userpkg.RegisterUserRequest) (*entity.User, error) {
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	phone := strings.TrimSpace(req.Phone)
	if first == "" || last == "" || phone == "" {
		return nil, fmt.Errorf("first name, last name and phone required: %w", apperr.ErrInvalidArgument)
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role != "operator" && role != "client" {
		return nil, fmt.Errorf("role must be operator or client: %w", apperr.ErrInvalidArgument)
	}

	exists, err := s.repo.PhoneExists(ctx, phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("user with phone %s exists: %w", phone, apperr.ErrConflict)
	}

	u := &entity.User{
		FirstName: first,
		LastName:  last,
		Phone:     phone,
		Role:      role,
	}
	return s.repo.StoreUser(ctx, u)
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *userService) ListOperators(ctx context.Context) ([]entity.User, error) {
	return s.repo.ListByRole(ctx, "operator")
}
