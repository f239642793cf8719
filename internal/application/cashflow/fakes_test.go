package cashflow

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/internal/domain/repository"
	"github.com/cashflowhq/cash-flow-api/pkg/apperrors"
)

type fakeUserRepo struct {
	users map[string]entity.User

	// findErr simulates a persistence fault on lookups when set.
	findErr error
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if u.ID == "" {
		u.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			v := u
			return &v, nil
		}
	}
	return nil, apperrors.NotFound("user")
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id string, upd repository.UserUpdate) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	r.users[id] = u
	return &u, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.NotFound("user")
	}
	delete(r.users, id)
	return nil
}

// fakeCashFlowRepo mirrors the SQL repository's semantics in memory:
// inclusive date filtering, date-descending order, offset pagination and
// per-type sums. Call counters let tests assert on write/read behavior.
type fakeCashFlowRepo struct {
	flows map[string]entity.CashFlow
	seq   int

	// findErr simulates a persistence fault on lookups when set.
	findErr error

	createCalls, updateCalls, deleteCalls, listCalls, balanceCalls int
}

func newFakeCashFlowRepo() *fakeCashFlowRepo {
	return &fakeCashFlowRepo{flows: map[string]entity.CashFlow{}}
}

func (r *fakeCashFlowRepo) Create(_ context.Context, cf *entity.CashFlow) error {
	r.createCalls++
	r.seq++
	cf.ID = fmt.Sprintf("cf-%d", r.seq)
	now := time.Now()
	cf.CreatedAt = now
	cf.UpdatedAt = now
	r.flows[cf.ID] = *cf
	return nil
}

func (r *fakeCashFlowRepo) FindByID(_ context.Context, id string) (*entity.CashFlow, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	cf, ok := r.flows[id]
	if !ok {
		return nil, apperrors.NotFound("cash flow")
	}
	return &cf, nil
}

func inRange(t time.Time, dr *entity.DateRange) bool {
	if dr == nil {
		return true
	}
	return !t.Before(dr.From) && !t.After(dr.To)
}

func (r *fakeCashFlowRepo) FindAllByUserID(_ context.Context, userID string, limit, page int, dr *entity.DateRange) ([]entity.CashFlow, error) {
	r.listCalls++
	var matching []entity.CashFlow
	for _, cf := range r.flows {
		if cf.UserID == userID && inRange(cf.Date, dr) {
			matching = append(matching, cf)
		}
	}
	sort.Slice(matching, func(i, j int) bool {
		if !matching[i].Date.Equal(matching[j].Date) {
			return matching[i].Date.After(matching[j].Date)
		}
		return matching[i].CreatedAt.After(matching[j].CreatedAt)
	})

	offset := (page - 1) * limit
	if offset >= len(matching) {
		return []entity.CashFlow{}, nil
	}
	end := offset + limit
	if end > len(matching) {
		end = len(matching)
	}
	return matching[offset:end], nil
}

func (r *fakeCashFlowRepo) Update(_ context.Context, id string, upd repository.CashFlowUpdate) (*entity.CashFlow, error) {
	r.updateCalls++
	cf, ok := r.flows[id]
	if !ok {
		return nil, apperrors.NotFound("cash flow")
	}
	if upd.Amount != nil {
		cf.Amount = *upd.Amount
	}
	if upd.Type != nil {
		cf.Type = *upd.Type
	}
	if upd.Description.Set {
		cf.Description = upd.Description.Value
	}
	if upd.Date != nil {
		cf.Date = *upd.Date
	}
	cf.UpdatedAt = time.Now()
	r.flows[id] = cf
	return &cf, nil
}

func (r *fakeCashFlowRepo) Delete(_ context.Context, id string) error {
	r.deleteCalls++
	if _, ok := r.flows[id]; !ok {
		return apperrors.NotFound("cash flow")
	}
	delete(r.flows, id)
	return nil
}

func (r *fakeCashFlowRepo) GetBalanceByUserID(_ context.Context, userID string, dr *entity.DateRange) (entity.CashFlowBalance, error) {
	r.balanceCalls++
	income := decimal.Zero
	expense := decimal.Zero
	for _, cf := range r.flows {
		if cf.UserID != userID || !inRange(cf.Date, dr) {
			continue
		}
		switch cf.Type {
		case entity.CashFlowIncome:
			income = income.Add(cf.Amount)
		case entity.CashFlowExpense:
			expense = expense.Add(cf.Amount)
		}
	}
	return entity.NewCashFlowBalance(income, expense), nil
}

var (
	_ repository.UserRepository     = (*fakeUserRepo)(nil)
	_ repository.CashFlowRepository = (*fakeCashFlowRepo)(nil)
)
