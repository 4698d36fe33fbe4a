package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	"github.com/maag070208/AXZY-PARK-API/entity"
	userpkg "github.com/maag070208/AXZY-PARK-API/user"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) StoreUser(ctx context.Context, u *entity.User) (*entity.User, error) {
	u.ID = uuid.New()
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, apperr.ErrNotFound)
	}
	return u, nil
}

func (r *fakeUserRepo) ListUsers(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByRole(ctx context.Context, role string) ([]entity.User, error) {
	var out []entity.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) PhoneExists(ctx context.Context, phone string) (bool, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func TestRegisterUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	u, err := svc.RegisterUser(context.Background(), userpkg.RegisterUserRequest{
		FirstName: " Ana ", LastName: "Reyes", Phone: "5512345678", Role: "Operator",
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if u.FirstName != "Ana" || u.Role != "operator" {
		t.Fatalf("input not normalized: %+v", u)
	}
}

func TestRegisterUserDuplicatePhone(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	req := userpkg.RegisterUserRequest{FirstName: "Ana", LastName: "Reyes", Phone: "5512345678", Role: "client"}
	if _, err := svc.RegisterUser(context.Background(), req); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if _, err := svc.RegisterUser(context.Background(), req); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate phone, got %v", err)
	}
}

func TestRegisterUserValidation(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	cases := []struct {
		name string
		req  userpkg.RegisterUserRequest
	}{
		{"missing phone", userpkg.RegisterUserRequest{FirstName: "Ana", LastName: "Reyes", Role: "client"}},
		{"missing name", userpkg.RegisterUserRequest{Phone: "5512345678", Role: "client"}},
		{"bad role", userpkg.RegisterUserRequest{FirstName: "Ana", LastName: "Reyes", Phone: "5512345678", Role: "admin"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.RegisterUser(context.Background(), tc.req); !errors.Is(err, apperr.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestListOperators(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	for _, role := range []string{"operator", "client", "operator"} {
		if _, err := svc.RegisterUser(context.Background(), userpkg.RegisterUserRequest{
			FirstName: "U", LastName: role, Phone: role + uuid.NewString(), Role: role,
		}); err != nil {
			t.Fatalf("RegisterUser: %v", err)
		}
	}

	ops, err := svc.ListOperators(context.Background())
	if err != nil {
		t.Fatalf("ListOperators: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected 2 operators, got %d", len(ops))
	}
}
