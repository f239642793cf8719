package router

import (
	"github.com/cashflowhq/cash-flow-api/internal/application/auth"
	"github.com/cashflowhq/cash-flow-api/internal/application/cashflow"
	"github.com/cashflowhq/cash-flow-api/internal/application/mediator"
	"github.com/cashflowhq/cash-flow-api/internal/application/user"
	"github.com/cashflowhq/cash-flow-api/internal/container"
	"github.com/cashflowhq/cash-flow-api/internal/infrastructure/postgres"
	handlers "github.com/cashflowhq/cash-flow-api/internal/interface/http"
	"github.com/cashflowhq/cash-flow-api/internal/router/modules"
)

// buildMediator registers every command and query handler. Duplicate
// registrations panic here, at startup, never at dispatch time.
func buildMediator() *mediator.Dispatcher {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	cacheSvc := container.GetCache()
	db := container.GetDB()

	userRepo := postgres.NewUserRepository(db)
	cashFlowRepo := postgres.NewCashFlowRepository(db)

	m := mediator.New()

	mediator.MustRegister(m, cashflow.NewCreateCashFlowHandler(cashFlowRepo, userRepo, cacheSvc, logger).Handle)
	mediator.MustRegister(m, cashflow.NewUpdateCashFlowHandler(cashFlowRepo, cacheSvc, logger).Handle)
	mediator.MustRegister(m, cashflow.NewDeleteCashFlowHandler(cashFlowRepo, cacheSvc, logger).Handle)
	mediator.MustRegister(m, cashflow.NewFindByIDCashFlowHandler(cashFlowRepo).Handle)
	mediator.MustRegister(m, cashflow.NewFindAllByUserIDCashFlowHandler(cashFlowRepo, cacheSvc, cfg.CashFlowListTTL).Handle)
	mediator.MustRegister(m, cashflow.NewGetBalanceByUserIDCashFlowHandler(cashFlowRepo, cacheSvc, cfg.CashFlowBalanceTTL).Handle)

	mediator.MustRegister(m, user.NewCreateUserHandler(userRepo).Handle)
	mediator.MustRegister(m, user.NewUpdateUserHandler(userRepo).Handle)
	mediator.MustRegister(m, user.NewDeleteUserHandler(userRepo).Handle)
	mediator.MustRegister(m, user.NewFindByIDUserHandler(userRepo).Handle)
	mediator.MustRegister(m, user.NewFindByEmailUserHandler(userRepo).Handle)
	mediator.MustRegister(m, user.NewListAllUserHandler(userRepo).Handle)

	return m
}

// InitModules builds the dispatcher and registers all feature modules with
// the router registry. Called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	m := buildMediator()
	container.SetMediator(m)

	authSvc := auth.NewService(postgres.NewUserRepository(container.GetDB()), jwt, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(m, logger), jwt))
	r.Add(modules.NewCashFlowModule(handlers.NewCashFlowHandler(m, logger), jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
