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

// CashFlowModule wires the ledger routes. Any authenticated role can use
// them; ownership scoping happens through the userId path parameters.
type CashFlowModule struct {
	Handler *handlers.CashFlowHandler
	JWT     *helpers.JWTManager
}

func NewCashFlowModule(h *handlers.CashFlowHandler, jwt *helpers.JWTManager) *CashFlowModule {
	return &CashFlowModule{Handler: h, JWT: jwt}
}

func (m *CashFlowModule) Register(rg *gin.RouterGroup) {
	flows := rg.Group("/cash-flows")
	flows.Use(middleware.Auth(m.JWT))
	flows.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	flows.Use(middleware.RequireRoles(entity.RoleUser, entity.RoleAdmin))

	flows.POST("", m.Handler.Create)
	flows.GET("/user/:userId", m.Handler.ListByUser)
	flows.GET("/balance/:userId", m.Handler.Balance)
	flows.GET("/:id", m.Handler.Get)
	flows.PUT("/:id", m.Handler.Update)
	flows.DELETE("/:id", m.Handler.Delete)
}
