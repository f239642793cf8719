package router

import "github.com/gin-gonic/gin"

// Module is a feature unit that registers its own routes on the shared /api
// group. Modules declare their middleware (auth, roles, rate limits) at
// registration time so the route table reads declaratively.
type Module interface {
	Register(rg *gin.RouterGroup)
}
