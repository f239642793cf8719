package user

import (
	"context"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/internal/domain/repository"
)

type FindByIDUserHandler struct {
	users repository.UserRepository
}

func NewFindByIDUserHandler(users repository.UserRepository) *FindByIDUserHandler {
	return &FindByIDUserHandler{users: users}
}

func (h *FindByIDUserHandler) Handle(ctx context.Context, q FindByIDUserQuery) (*entity.User, error) {
	return h.users.FindByID(ctx, q.ID)
}

type FindByEmailUserHandler struct {
	users repository.UserRepository
}

func NewFindByEmailUserHandler(users repository.UserRepository) *FindByEmailUserHandler {
	return &FindByEmailUserHandler{users: users}
}

func (h *FindByEmailUserHandler) Handle(ctx context.Context, q FindByEmailUserQuery) (*entity.User, error) {
	return h.users.FindByEmail(ctx, q.Email)
}

type ListAllUserHandler struct {
	users repository.UserRepository
}

func NewListAllUserHandler(users repository.UserRepository) *ListAllUserHandler {
	return &ListAllUserHandler{users: users}
}

func (h *ListAllUserHandler) Handle(ctx context.Context, _ ListAllUserQuery) ([]entity.User, error) {
	return h.users.FindAll(ctx)
}
