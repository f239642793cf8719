package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowType discriminates ledger entries between money in and money out.
type CashFlowType string

const (
	CashFlowIncome  CashFlowType = "INCOME"
	CashFlowExpense CashFlowType = "EXPENSE"
)

// Valid reports whether the type is one of the known discriminators.
func (t CashFlowType) Valid() bool {
	return t == CashFlowIncome || t == CashFlowExpense
}

// CashFlow is a single ledger entry owned by exactly one user.
// Date is the economic date of the transaction, distinct from the
// CreatedAt audit timestamp owned by the persistence layer.
type CashFlow struct {
	ID          string
	UserID      string
	Amount      decimal.Decimal
	Type        CashFlowType
	Description *string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CashFlowBalance is a derived value object, never persisted.
// Balance is always TotalIncome - TotalExpense.
type CashFlowBalance struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// NewCashFlowBalance derives the balance from its two components.
func NewCashFlowBalance(totalIncome, totalExpense decimal.Decimal) CashFlowBalance {
	return CashFlowBalance{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}
}

// DateRange is an inclusive [From, To] bound on the economic date.
type DateRange struct {
	From time.Time
	To   time.Time
}
