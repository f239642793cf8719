package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cashflowhq/cash-flow-api/internal/application/mediator"
	"github.com/cashflowhq/cash-flow-api/internal/application/user"
	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/internal/domain/repository"
	"github.com/cashflowhq/cash-flow-api/pkg/apperrors"
	"github.com/cashflowhq/cash-flow-api/pkg/helpers"
	"github.com/cashflowhq/cash-flow-api/pkg/response"
	"github.com/cashflowhq/cash-flow-api/pkg/validation"
)

// UserHandler exposes account CRUD. All writes and reads go through the
// mediator; the handler owns only transport concerns, including hashing the
// plaintext password before it enters the application layer.
type UserHandler struct {
	Mediator *mediator.Dispatcher
	Logger   *logrus.Logger
}

func NewUserHandler(m *mediator.Dispatcher, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Mediator: m, Logger: logger}
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "failed to create user", nil)
		return
	}

	u, err := mediator.Send[*entity.User](c.Request.Context(), h.Mediator, user.CreateUserCommand{
		Data: user.CreateUserData{
			Name:     req.Name,
			Email:    req.Email,
			Password: hash,
			Role:     entity.Role(req.Role),
		},
	})
	if err != nil {
		response.Fail(c, apperrors.StatusOf(err), "failed to create user", err.Error())
		return
	}
	response.OK(c, http.StatusCreated, toUserView(u), "user created", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := mediator.Send[[]entity.User](c.Request.Context(), h.Mediator, user.ListAllUserQuery{})
	if err != nil {
		response.Fail(c, apperrors.StatusOf(err), "failed to list users", err.Error())
		return
	}
	response.OK(c, http.StatusOK, toUserViews(users), "users", map[string]any{"count": len(users)})
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := mediator.Send[*entity.User](c.Request.Context(), h.Mediator, user.FindByIDUserQuery{ID: c.Param("id")})
	if err != nil {
		response.Fail(c, apperrors.StatusOf(err), "user not found", err.Error())
		return
	}
	response.OK(c, http.StatusOK, toUserView(u), "user", nil)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	upd := repository.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Password != nil {
		hash, err := helpers.HashPassword(*req.Password)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, "failed to update user", nil)
			return
		}
		upd.Password = &hash
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		upd.Role = &role
	}

	u, err := mediator.Send[*entity.User](c.Request.Context(), h.Mediator, user.UpdateUserCommand{
		ID:   c.Param("id"),
		Data: upd,
	})
	if err != nil {
		response.Fail(c, apperrors.StatusOf(err), "failed to update user", err.Error())
		return
	}
	response.OK(c, http.StatusOK, toUserView(u), "user updated", nil)
}

func (h *UserHandler) Delete(c *gin.Context) {
	_, err := mediator.Send[any](c.Request.Context(), h.Mediator, user.DeleteUserCommand{ID: c.Param("id")})
	if err != nil {
		response.Fail(c, apperrors.StatusOf(err), "failed to delete user", err.Error())
		return
	}
	response.OK[any](c, http.StatusOK, gin.H{"deleted": true}, "user deleted", nil)
}
