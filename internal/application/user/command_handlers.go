package user

import (
	"context"
	"errors"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/internal/domain/repository"
	"github.com/cashflowhq/cash-flow-api/pkg/apperrors"
)

// CreateUserHandler creates an account after checking email uniqueness.
type CreateUserHandler struct {
	users repository.UserRepository
}

func NewCreateUserHandler(users repository.UserRepository) *CreateUserHandler {
	return &CreateUserHandler{users: users}
}

func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*entity.User, error) {
	existing, err := h.users.FindByEmail(ctx, cmd.Data.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("email already in use")
	}

	role := cmd.Data.Role
	if role == "" {
		role = entity.RoleUser
	}
	u := &entity.User{
		Name:     cmd.Data.Name,
		Email:    cmd.Data.Email,
		Password: cmd.Data.Password,
		Role:     role,
	}
	if err := h.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateUserHandler applies a partial update, re-checking email uniqueness
// when the email changes.
type UpdateUserHandler struct {
	users repository.UserRepository
}

func NewUpdateUserHandler(users repository.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{users: users}
}

func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*entity.User, error) {
	if cmd.Data.Email != nil {
		withEmail, err := h.users.FindByEmail(ctx, *cmd.Data.Email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if withEmail != nil && withEmail.ID != cmd.ID {
			return nil, apperrors.Conflict("email already in use")
		}
	}

	if _, err := h.users.FindByID(ctx, cmd.ID); err != nil {
		return nil, err
	}

	return h.users.Update(ctx, cmd.ID, cmd.Data)
}

// DeleteUserHandler removes an account by id.
type DeleteUserHandler struct {
	users repository.UserRepository
}

func NewDeleteUserHandler(users repository.UserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{users: users}
}

func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) (any, error) {
	if _, err := h.users.FindByID(ctx, cmd.ID); err != nil {
		return nil, err
	}
	return nil, h.users.Delete(ctx, cmd.ID)
}
