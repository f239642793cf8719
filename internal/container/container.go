package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/cashflowhq/cash-flow-api/config"
	"github.com/cashflowhq/cash-flow-api/internal/application/mediator"
	"github.com/cashflowhq/cash-flow-api/pkg/cache"
	"github.com/cashflowhq/cash-flow-api/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	db          *gorm.DB
	redisClient *redis.Client

	jwtManager *helpers.JWTManager

	cacheService *cache.Service
	dispatcher   *mediator.Dispatcher
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetDB(d *gorm.DB)             { db = d }
func GetDB() *gorm.DB              { return db }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}

func SetCache(c *cache.Service)          { cacheService = c }
func GetCache() *cache.Service           { return cacheService }
func SetMediator(d *mediator.Dispatcher) { dispatcher = d }
func GetMediator() *mediator.Dispatcher  { return dispatcher }
