package cashflow

import (
	"context"
	"time"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/internal/domain/repository"
	"github.com/cashflowhq/cash-flow-api/pkg/cache"
)

const (
	defaultLimit = 10
	defaultPage  = 1
)

// FindByIDCashFlowHandler fetches a single entry. Single-entity reads are
// cheap and stay uncached.
type FindByIDCashFlowHandler struct {
	cashFlows repository.CashFlowRepository
}

func NewFindByIDCashFlowHandler(cashFlows repository.CashFlowRepository) *FindByIDCashFlowHandler {
	return &FindByIDCashFlowHandler{cashFlows: cashFlows}
}

func (h *FindByIDCashFlowHandler) Handle(ctx context.Context, q FindByIDCashFlowQuery) (*entity.CashFlow, error) {
	return h.cashFlows.FindByID(ctx, q.ID)
}

// FindAllByUserIDCashFlowHandler lists a user's entries through the cache.
// Date-ranged requests bypass the cache entirely: memoizing per range would
// explode the key space and serve stale slices of arbitrary windows.
type FindAllByUserIDCashFlowHandler struct {
	cashFlows repository.CashFlowRepository
	cache     *cache.Service
	ttl       time.Duration
}

func NewFindAllByUserIDCashFlowHandler(cashFlows repository.CashFlowRepository, c *cache.Service, ttl time.Duration) *FindAllByUserIDCashFlowHandler {
	if ttl <= 0 {
		ttl = cache.ListTTL
	}
	return &FindAllByUserIDCashFlowHandler{cashFlows: cashFlows, cache: c, ttl: ttl}
}

func (h *FindAllByUserIDCashFlowHandler) Handle(ctx context.Context, q FindAllByUserIDCashFlowQuery) ([]entity.CashFlow, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	page := q.Page
	if page <= 0 {
		page = defaultPage
	}

	return cache.GetOrSet(ctx, h.cache, cache.ListKey(q.UserID, page, limit), h.ttl, q.DateRange != nil,
		func(ctx context.Context) ([]entity.CashFlow, error) {
			return h.cashFlows.FindAllByUserID(ctx, q.UserID, limit, page, q.DateRange)
		})
}

// GetBalanceByUserIDCashFlowHandler computes the user's aggregate balance
// through the cache, with the same skip-when-ranged policy as the list.
type GetBalanceByUserIDCashFlowHandler struct {
	cashFlows repository.CashFlowRepository
	cache     *cache.Service
	ttl       time.Duration
}

func NewGetBalanceByUserIDCashFlowHandler(cashFlows repository.CashFlowRepository, c *cache.Service, ttl time.Duration) *GetBalanceByUserIDCashFlowHandler {
	if ttl <= 0 {
		ttl = cache.BalanceTTL
	}
	return &GetBalanceByUserIDCashFlowHandler{cashFlows: cashFlows, cache: c, ttl: ttl}
}

func (h *GetBalanceByUserIDCashFlowHandler) Handle(ctx context.Context, q GetBalanceByUserIDCashFlowQuery) (entity.CashFlowBalance, error) {
	return cache.GetOrSet(ctx, h.cache, cache.BalanceKey(q.UserID), h.ttl, q.DateRange != nil,
		func(ctx context.Context) (entity.CashFlowBalance, error) {
			return h.cashFlows.GetBalanceByUserID(ctx, q.UserID, q.DateRange)
		})
}
