package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/maag070208/AXZY-PARK-API/entity"
)

// RegisterUserRequest carries the data required to register an operator or
// vehicle owner.
type RegisterUserRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Role      string // "operator" or "client"
}

// Service exposes user-related business operations.
type Service interface {
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	ListOperators(ctx context.Context) ([]entity.User, error)
}
