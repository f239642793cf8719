package cashflow

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/internal/domain/repository"
	"github.com/cashflowhq/cash-flow-api/pkg/cache"
)

// invalidateUserCaches drops the aggregate entries a write may have staled:
// the user's balance and every cached list page. The next read repopulates
// them (lazy cache-aside, writers never populate). Failures are logged and
// swallowed; the write already committed and reads are best-effort fresh
// within the TTL window anyway.
func invalidateUserCaches(ctx context.Context, c *cache.Service, logger *logrus.Logger, userID string) {
	if err := c.InvalidateMany(ctx, []string{cache.BalanceKey(userID)}); err != nil {
		logger.WithError(err).WithField("user_id", userID).Warn("balance cache invalidation failed")
	}
	if err := c.InvalidatePattern(ctx, cache.ListPattern(userID)); err != nil {
		logger.WithError(err).WithField("user_id", userID).Warn("list cache invalidation failed")
	}
}

// CreateCashFlowHandler creates a ledger entry after checking that the owner
// exists. The existence invariant is enforced here, not by a database
// constraint.
type CreateCashFlowHandler struct {
	cashFlows repository.CashFlowRepository
	users     repository.UserRepository
	cache     *cache.Service
	logger    *logrus.Logger
}

func NewCreateCashFlowHandler(cashFlows repository.CashFlowRepository, users repository.UserRepository, c *cache.Service, logger *logrus.Logger) *CreateCashFlowHandler {
	return &CreateCashFlowHandler{cashFlows: cashFlows, users: users, cache: c, logger: logger}
}

func (h *CreateCashFlowHandler) Handle(ctx context.Context, cmd CreateCashFlowCommand) (*entity.CashFlow, error) {
	if _, err := h.users.FindByID(ctx, cmd.Data.UserID); err != nil {
		// A missing owner is already apperrors.ErrNotFound; anything else is
		// a persistence fault and must propagate unchanged.
		return nil, err
	}

	cf := &entity.CashFlow{
		UserID:      cmd.Data.UserID,
		Amount:      cmd.Data.Amount,
		Type:        cmd.Data.Type,
		Description: cmd.Data.Description,
		Date:        cmd.Data.Date,
	}
	if err := h.cashFlows.Create(ctx, cf); err != nil {
		return nil, err
	}

	invalidateUserCaches(ctx, h.cache, h.logger, cf.UserID)
	return cf, nil
}

// UpdateCashFlowHandler applies a partial update to an existing entry.
type UpdateCashFlowHandler struct {
	cashFlows repository.CashFlowRepository
	cache     *cache.Service
	logger    *logrus.Logger
}

func NewUpdateCashFlowHandler(cashFlows repository.CashFlowRepository, c *cache.Service, logger *logrus.Logger) *UpdateCashFlowHandler {
	return &UpdateCashFlowHandler{cashFlows: cashFlows, cache: c, logger: logger}
}

func (h *UpdateCashFlowHandler) Handle(ctx context.Context, cmd UpdateCashFlowCommand) (*entity.CashFlow, error) {
	existing, err := h.cashFlows.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	updated, err := h.cashFlows.Update(ctx, cmd.ID, cmd.Data)
	if err != nil {
		return nil, err
	}

	invalidateUserCaches(ctx, h.cache, h.logger, existing.UserID)
	return updated, nil
}

// DeleteCashFlowHandler removes an existing entry.
type DeleteCashFlowHandler struct {
	cashFlows repository.CashFlowRepository
	cache     *cache.Service
	logger    *logrus.Logger
}

func NewDeleteCashFlowHandler(cashFlows repository.CashFlowRepository, c *cache.Service, logger *logrus.Logger) *DeleteCashFlowHandler {
	return &DeleteCashFlowHandler{cashFlows: cashFlows, cache: c, logger: logger}
}

func (h *DeleteCashFlowHandler) Handle(ctx context.Context, cmd DeleteCashFlowCommand) (any, error) {
	existing, err := h.cashFlows.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := h.cashFlows.Delete(ctx, cmd.ID); err != nil {
		return nil, err
	}

	invalidateUserCaches(ctx, h.cache, h.logger, existing.UserID)
	return nil, nil
}
