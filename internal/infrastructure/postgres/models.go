package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
)

// UserModel is the persistence shape of a user account.
type UserModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"`
	Role      string    `gorm:"not null;default:USER"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *UserModel) ToDomain() *entity.User {
	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		Role:      entity.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func userModelFromDomain(u *entity.User) *UserModel {
	return &UserModel{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CashFlowModel is the persistence shape of a cash-flow record. Amounts are
// stored as numeric and surfaced as decimals, never floats.
type CashFlowModel struct {
	ID          string          `gorm:"type:uuid;primaryKey"`
	UserID      string          `gorm:"type:uuid;index;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Type        string          `gorm:"not null"`
	Description *string
	Date        time.Time `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CashFlowModel) TableName() string { return "cash_flows" }

func (m *CashFlowModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *CashFlowModel) ToDomain() *entity.CashFlow {
	return &entity.CashFlow{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Type:        entity.CashFlowType(m.Type),
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func cashFlowModelFromDomain(cf *entity.CashFlow) *CashFlowModel {
	return &CashFlowModel{
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
