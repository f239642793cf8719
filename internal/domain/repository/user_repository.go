package repository

import (
	"context"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
)

// UserUpdate carries the fields of a partial user update. Nil pointers mean
// "leave unchanged".
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Role     *entity.Role
}

// UserRepository defines persistence operations for the users module.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}
