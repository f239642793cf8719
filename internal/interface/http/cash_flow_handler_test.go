package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashflowhq/cash-flow-api/internal/application/cashflow"
	"github.com/cashflowhq/cash-flow-api/internal/application/mediator"
	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/pkg/validation"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func newCashFlowRouter(t *testing.T, m *mediator.Dispatcher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()
	r := gin.New()
	h := NewCashFlowHandler(m, testLogger())
	r.POST("/cash-flows", h.Create)
	r.GET("/cash-flows/user/:userId", h.ListByUser)
	r.GET("/cash-flows/balance/:userId", h.Balance)
	r.PUT("/cash-flows/:id", h.Update)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListByUser_LoneDateBoundRejected(t *testing.T) {
	m := mediator.New()
	mediator.MustRegister(m, func(_ context.Context, q cashflow.FindAllByUserIDCashFlowQuery) ([]entity.CashFlow, error) {
		t.Fatal("query must not be dispatched for an invalid range")
		return nil, nil
	})
	r := newCashFlowRouter(t, m)

	w := do(r, http.MethodGet, "/cash-flows/user/u1?startDate=2026-01-01", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListByUser_PassesRangeAndPagination(t *testing.T) {
	var got cashflow.FindAllByUserIDCashFlowQuery
	m := mediator.New()
	mediator.MustRegister(m, func(_ context.Context, q cashflow.FindAllByUserIDCashFlowQuery) ([]entity.CashFlow, error) {
		got = q
		return []entity.CashFlow{}, nil
	})
	r := newCashFlowRouter(t, m)

	w := do(r, http.MethodGet, "/cash-flows/user/u1?limit=5&page=2&startDate=2026-01-01&endDate=2026-01-31", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, 5, got.Limit)
	assert.Equal(t, 2, got.Page)
	require.NotNil(t, got.DateRange)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), got.DateRange.From)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), got.DateRange.To)
}

func TestBalance_NoRangeDispatchesNilRange(t *testing.T) {
	var got cashflow.GetBalanceByUserIDCashFlowQuery
	m := mediator.New()
	mediator.MustRegister(m, func(_ context.Context, q cashflow.GetBalanceByUserIDCashFlowQuery) (entity.CashFlowBalance, error) {
		got = q
		return entity.NewCashFlowBalance(decimal.Zero, decimal.Zero), nil
	})
	r := newCashFlowRouter(t, m)

	w := do(r, http.MethodGet, "/cash-flows/balance/u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", got.UserID)
	assert.Nil(t, got.DateRange)
	assert.Contains(t, w.Body.String(), `"balance":"0"`)
}

func TestCreate_RejectsBadDate(t *testing.T) {
	m := mediator.New()
	mediator.MustRegister(m, func(_ context.Context, cmd cashflow.CreateCashFlowCommand) (*entity.CashFlow, error) {
		t.Fatal("command must not be dispatched for an invalid payload")
		return nil, nil
	})
	r := newCashFlowRouter(t, m)

	uid := "2f0c9a3e-9f6e-4ad5-9d3f-0a4b5c6d7e8f"
	w := do(r, http.MethodPost, "/cash-flows", `{"userId":"`+uid+`","amount":"5","type":"INCOME","date":"next tuesday"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreate_NegativeAmountIsAccepted(t *testing.T) {
	var got cashflow.CreateCashFlowCommand
	m := mediator.New()
	mediator.MustRegister(m, func(_ context.Context, cmd cashflow.CreateCashFlowCommand) (*entity.CashFlow, error) {
		got = cmd
		return &entity.CashFlow{ID: "cf1", UserID: cmd.Data.UserID, Amount: cmd.Data.Amount, Type: cmd.Data.Type, Date: cmd.Data.Date}, nil
	})
	r := newCashFlowRouter(t, m)

	uid := "2f0c9a3e-9f6e-4ad5-9d3f-0a4b5c6d7e8f"
	w := do(r, http.MethodPost, "/cash-flows", `{"userId":"`+uid+`","amount":"-5","type":"EXPENSE","date":"2026-01-10"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, got.Data.Amount.Equal(decimal.NewFromInt(-5)), "amounts are signed; correcting entries stay negative")
}

func TestListByUser_MalformedPaginationRejected(t *testing.T) {
	m := mediator.New()
	mediator.MustRegister(m, func(_ context.Context, q cashflow.FindAllByUserIDCashFlowQuery) ([]entity.CashFlow, error) {
		t.Fatal("query must not be dispatched for malformed pagination")
		return nil, nil
	})
	r := newCashFlowRouter(t, m)

	w := do(r, http.MethodGet, "/cash-flows/user/u1?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/cash-flows/user/u1?page=two", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdate_NullDescriptionClearsOmittedLeaves(t *testing.T) {
	var got cashflow.UpdateCashFlowCommand
	m := mediator.New()
	mediator.MustRegister(m, func(_ context.Context, cmd cashflow.UpdateCashFlowCommand) (*entity.CashFlow, error) {
		got = cmd
		return &entity.CashFlow{ID: cmd.ID}, nil
	})
	r := newCashFlowRouter(t, m)

	w := do(r, http.MethodPut, "/cash-flows/cf1", `{"description":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, got.Data.Description.Set, "explicit null must mark the field as set")
	assert.Nil(t, got.Data.Description.Value)

	w = do(r, http.MethodPut, "/cash-flows/cf1", `{"amount":"12.50"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, got.Data.Description.Set, "omitted field must stay unset")
	require.NotNil(t, got.Data.Amount)
	assert.True(t, got.Data.Amount.Equal(decimal.RequireFromString("12.50")))
}
