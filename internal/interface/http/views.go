package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
)

// userView is the wire shape of a user. The password hash never leaves the
// server.
type userView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserView(u *entity.User) userView {
	return userView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserViews(users []entity.User) []userView {
	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, toUserView(&users[i]))
	}
	return views
}

type cashFlowView struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description *string         `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toCashFlowView(cf *entity.CashFlow) cashFlowView {
	return cashFlowView{
		ID:          cf.ID,
		UserID:      cf.UserID,
		Amount:      cf.Amount,
		Type:        string(cf.Type),
		Description: cf.Description,
		Date:        cf.Date,
		CreatedAt:   cf.CreatedAt,
		UpdatedAt:   cf.UpdatedAt,
	}
}

func toCashFlowViews(flows []entity.CashFlow) []cashFlowView {
	views := make([]cashFlowView, 0, len(flows))
	for i := range flows {
		views = append(views, toCashFlowView(&flows[i]))
	}
	return views
}
