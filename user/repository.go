package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/maag070208/AXZY-PARK-API/entity"
)

// Repository specifies user related database operations.
type Repository interface {
	StoreUser(ctx context.Context, u *entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	ListByRole(ctx context.Context, role string) ([]entity.User, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
}
