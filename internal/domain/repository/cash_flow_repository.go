package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
)

// CashFlowUpdate carries the fields of a partial cash-flow update.
// Nil pointers mean "leave unchanged"; Description uses Optional so that
// clearing the text (set to null) is distinguishable from omitting it.
type CashFlowUpdate struct {
	Amount      *decimal.Decimal
	Type        *entity.CashFlowType
	Description Optional[*string]
	Date        *time.Time
}

// CashFlowRepository defines persistence operations for the ledger.
// List and balance reads accept an optional inclusive date range on the
// economic date.
type CashFlowRepository interface {
	Create(ctx context.Context, cf *entity.CashFlow) error
	FindByID(ctx context.Context, id string) (*entity.CashFlow, error)
	FindAllByUserID(ctx context.Context, userID string, limit, page int, dateRange *entity.DateRange) ([]entity.CashFlow, error)
	Update(ctx context.Context, id string, upd CashFlowUpdate) (*entity.CashFlow, error)
	Delete(ctx context.Context, id string) error
	GetBalanceByUserID(ctx context.Context, userID string, dateRange *entity.DateRange) (entity.CashFlowBalance, error)
}
