package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cashflowhq/cash-flow-api/internal/container"
	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	handlers "github.com/cashflowhq/cash-flow-api/internal/interface/http"
	"github.com/cashflowhq/cash-flow-api/internal/interface/middleware"
	"github.com/cashflowhq/cash-flow-api/pkg/helpers"
)

// UserModule wires the account CRUD routes. Account management is an
// administrative surface: every route requires a valid access token and the
// ADMIN role.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.Auth(m.JWT))
	users.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))

	users.Use(middleware.RequireRoles(entity.RoleAdmin))

	users.POST("", m.Handler.Create)
	users.GET("", m.Handler.List)
	users.GET("/:id", m.Handler.Get)
	users.PUT("/:id", m.Handler.Update)
	users.DELETE("/:id", m.Handler.Delete)
}
