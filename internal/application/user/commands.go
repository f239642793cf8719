package user

import (
	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/internal/domain/repository"
)

// CreateUserData is the payload of a create command. Password must already
// be hashed; this module never sees plaintext credentials.
type CreateUserData struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

type CreateUserCommand struct {
	Data CreateUserData
}

type UpdateUserCommand struct {
	ID   string
	Data repository.UserUpdate
}

type DeleteUserCommand struct {
	ID string
}
