package postgres

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/internal/domain/repository"
	"github.com/cashflowhq/cash-flow-api/pkg/apperrors"
)

type CashFlowRepository struct {
	db *gorm.DB
}

func NewCashFlowRepository(db *gorm.DB) *CashFlowRepository {
	return &CashFlowRepository{db: db}
}

func (r *CashFlowRepository) Create(ctx context.Context, cf *entity.CashFlow) error {
	m := cashFlowModelFromDomain(cf)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*cf = *m.ToDomain()
	return nil
}

func (r *CashFlowRepository) FindByID(ctx context.Context, id string) (*entity.CashFlow, error) {
	var m CashFlowModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("cash flow")
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *CashFlowRepository) FindAllByUserID(ctx context.Context, userID string, limit, page int, dr *entity.DateRange) ([]entity.CashFlow, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	q = applyDateRange(q, dr)
	q = q.Order("date DESC").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
		if page > 1 {
			q = q.Offset((page - 1) * limit)
		}
	}

	var models []CashFlowModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}
	flows := make([]entity.CashFlow, 0, len(models))
	for i := range models {
		flows = append(flows, *models[i].ToDomain())
	}
	return flows, nil
}

func (r *CashFlowRepository) Update(ctx context.Context, id string, upd repository.CashFlowUpdate) (*entity.CashFlow, error) {
	fields := map[string]any{}
	if upd.Amount != nil {
		fields["amount"] = *upd.Amount
	}
	if upd.Type != nil {
		fields["type"] = string(*upd.Type)
	}
	if upd.Description.Set {
		fields["description"] = upd.Description.Value
	}
	if upd.Date != nil {
		fields["date"] = *upd.Date
	}

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&CashFlowModel{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, apperrors.NotFound("cash flow")
		}
	}
	return r.FindByID(ctx, id)
}

func (r *CashFlowRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&CashFlowModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("cash flow")
	}
	return nil
}

// GetBalanceByUserID sums income and expense separately so a user with no
// records still yields explicit zeroes.
func (r *CashFlowRepository) GetBalanceByUserID(ctx context.Context, userID string, dr *entity.DateRange) (entity.CashFlowBalance, error) {
	income, err := r.sumByType(ctx, userID, entity.CashFlowIncome, dr)
	if err != nil {
		return entity.CashFlowBalance{}, err
	}
	expense, err := r.sumByType(ctx, userID, entity.CashFlowExpense, dr)
	if err != nil {
		return entity.CashFlowBalance{}, err
	}
	return entity.NewCashFlowBalance(income, expense), nil
}

func (r *CashFlowRepository) sumByType(ctx context.Context, userID string, t entity.CashFlowType, dr *entity.DateRange) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&CashFlowModel{}).
		Where("user_id = ? AND type = ?", userID, string(t))
	q = applyDateRange(q, dr)

	var total decimal.Decimal
	err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func applyDateRange(q *gorm.DB, dr *entity.DateRange) *gorm.DB {
	if dr == nil {
		return q
	}
	return q.Where("date >= ? AND date <= ?", dr.From, dr.To)
}

var _ repository.CashFlowRepository = (*CashFlowRepository)(nil)
