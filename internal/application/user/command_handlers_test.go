package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/internal/domain/repository"
	"github.com/cashflowhq/cash-flow-api/pkg/apperrors"
)

type fakeUserRepo struct {
	users       map[string]entity.User
	createCalls int
	updateCalls int
	deleteCalls int

	// findErr simulates a persistence fault on lookups when set.
	findErr error
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.createCalls++
	u.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			v := u
			return &v, nil
		}
	}
	return nil, apperrors.NotFound("user")
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id string, upd repository.UserUpdate) (*entity.User, error) {
	r.updateCalls++
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	r.users[id] = u
	return &u, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.deleteCalls++
	if _, ok := r.users[id]; !ok {
		return apperrors.NotFound("user")
	}
	delete(r.users, id)
	return nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func strptr(s string) *string { return &s }

func TestCreateUser_DefaultsRoleAndAssignsID(t *testing.T) {
	repo := newFakeUserRepo()
	h := NewCreateUserHandler(repo)

	u, err := h.Handle(context.Background(), CreateUserCommand{Data: CreateUserData{
		Name:     "Joana",
		Email:    "joana@example.com",
		Password: "$2a$10$hash",
	}})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, entity.RoleUser, u.Role)
}

func TestCreateUser_DuplicateEmailConflicts(t *testing.T) {
	repo := newFakeUserRepo(entity.User{ID: "u1", Email: "joana@example.com"})
	h := NewCreateUserHandler(repo)

	_, err := h.Handle(context.Background(), CreateUserCommand{Data: CreateUserData{
		Name:     "Other",
		Email:    "joana@example.com",
		Password: "$2a$10$hash",
	}})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, 0, repo.createCalls)
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo := newFakeUserRepo()
	h := NewUpdateUserHandler(repo)

	_, err := h.Handle(context.Background(), UpdateUserCommand{
		ID:   "missing",
		Data: repository.UserUpdate{Name: strptr("x")},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestUpdateUser_EmailTakenByOtherUserConflicts(t *testing.T) {
	repo := newFakeUserRepo(
		entity.User{ID: "u1", Email: "a@example.com"},
		entity.User{ID: "u2", Email: "b@example.com"},
	)
	h := NewUpdateUserHandler(repo)

	_, err := h.Handle(context.Background(), UpdateUserCommand{
		ID:   "u1",
		Data: repository.UserUpdate{Email: strptr("b@example.com")},
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUpdateUser_KeepingOwnEmailIsNotAConflict(t *testing.T) {
	repo := newFakeUserRepo(entity.User{ID: "u1", Email: "a@example.com", Name: "Old"})
	h := NewUpdateUserHandler(repo)

	u, err := h.Handle(context.Background(), UpdateUserCommand{
		ID:   "u1",
		Data: repository.UserUpdate{Email: strptr("a@example.com"), Name: strptr("New")},
	})
	require.NoError(t, err)
	assert.Equal(t, "New", u.Name)
	assert.Equal(t, "a@example.com", u.Email)
}

func TestUpdateDeleteUser_LookupFaultPropagatesUnchanged(t *testing.T) {
	repo := newFakeUserRepo(entity.User{ID: "u1", Email: "a@example.com"})
	repo.findErr = errors.New("connection refused")

	_, err := NewUpdateUserHandler(repo).Handle(context.Background(), UpdateUserCommand{
		ID:   "u1",
		Data: repository.UserUpdate{Name: strptr("x")},
	})
	require.ErrorIs(t, err, repo.findErr)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound, "a store fault is not a missing user")
	assert.Equal(t, 0, repo.updateCalls)

	_, err = NewDeleteUserHandler(repo).Handle(context.Background(), DeleteUserCommand{ID: "u1"})
	require.ErrorIs(t, err, repo.findErr)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 0, repo.deleteCalls)
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo := newFakeUserRepo()
	h := NewDeleteUserHandler(repo)

	_, err := h.Handle(context.Background(), DeleteUserCommand{ID: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 0, repo.deleteCalls)
}

func TestQueries(t *testing.T) {
	repo := newFakeUserRepo(
		entity.User{ID: "u1", Email: "a@example.com"},
		entity.User{ID: "u2", Email: "b@example.com"},
	)

	byID := NewFindByIDUserHandler(repo)
	u, err := byID.Handle(context.Background(), FindByIDUserQuery{ID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)

	byEmail := NewFindByEmailUserHandler(repo)
	u, err = byEmail.Handle(context.Background(), FindByEmailUserQuery{Email: "b@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "u2", u.ID)

	list := NewListAllUserHandler(repo)
	all, err := list.Handle(context.Background(), ListAllUserQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
