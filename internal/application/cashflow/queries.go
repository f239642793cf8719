package cashflow

import (
	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
)

type FindByIDCashFlowQuery struct {
	ID string
}

// FindAllByUserIDCashFlowQuery lists a user's cash flows. Limit and Page fall
// back to 10 and 1 when non-positive. A DateRange bypasses the cache.
type FindAllByUserIDCashFlowQuery struct {
	UserID    string
	Limit     int
	Page      int
	DateRange *entity.DateRange
}

type GetBalanceByUserIDCashFlowQuery struct {
	UserID    string
	DateRange *entity.DateRange
}
