package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/cashflowhq/cash-flow-api/internal/container"
	handlers "github.com/cashflowhq/cash-flow-api/internal/interface/http"
	"github.com/cashflowhq/cash-flow-api/internal/interface/middleware"
)

// AuthModule wires the public auth endpoints.
// POST /api/auth/register, POST /api/auth/login, POST /api/auth/refresh
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()

	// Credential endpoints take the tightest limits, refresh a looser one.
	credLimiter := middleware.RateLimit(container.GetRedis(), cfg.AuthRateMax, cfg.AuthRateWindow, middleware.KeyByIPAndPath(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, cfg.AuthRateWindow, middleware.KeyByIP(), nil)

	rg.POST("/auth/register", credLimiter, m.Handler.Register)
	rg.POST("/auth/login", credLimiter, m.Handler.Login)
	rg.POST("/auth/refresh", refreshLimiter, m.Handler.Refresh)
}
