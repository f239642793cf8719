package cashflow

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/internal/domain/repository"
)

// CreateCashFlowData is the payload of a create command.
type CreateCashFlowData struct {
	UserID      string
	Amount      decimal.Decimal
	Type        entity.CashFlowType
	Description *string
	Date        time.Time
}

type CreateCashFlowCommand struct {
	Data CreateCashFlowData
}

type UpdateCashFlowCommand struct {
	ID   string
	Data repository.CashFlowUpdate
}

type DeleteCashFlowCommand struct {
	ID string
}
