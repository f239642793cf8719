package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cashflowhq/cash-flow-api/internal/application/cashflow"
	"github.com/cashflowhq/cash-flow-api/internal/application/mediator"
	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/internal/domain/repository"
	"github.com/cashflowhq/cash-flow-api/pkg/apperrors"
	"github.com/cashflowhq/cash-flow-api/pkg/response"
	"github.com/cashflowhq/cash-flow-api/pkg/validation"
)

// CashFlowHandler exposes the ledger CRUD plus the list and balance reads.
type CashFlowHandler struct {
	Mediator *mediator.Dispatcher
	Logger   *logrus.Logger
}

func NewCashFlowHandler(m *mediator.Dispatcher, logger *logrus.Logger) *CashFlowHandler {
	return &CashFlowHandler{Mediator: m, Logger: logger}
}

type createCashFlowRequest struct {
	UserID      string          `json:"userId" binding:"required,uuid4"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Description *string         `json:"description"`
	Date        string          `json:"date" binding:"required"`
}

// updateCashFlowRequest keeps description as raw JSON so an explicit null
// (clear the text) is distinguishable from an omitted field (leave as is).
type updateCashFlowRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Type        *string          `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Description json.RawMessage  `json:"description"`
	Date        *string          `json:"date"`
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// dateRangeFromQuery reads startDate/endDate. Both must be present to form a
// range; a lone bound is rejected rather than silently widened.
func dateRangeFromQuery(c *gin.Context) (*entity.DateRange, bool) {
	start := c.Query("startDate")
	end := c.Query("endDate")
	if start == "" && end == "" {
		return nil, true
	}
	if start == "" || end == "" {
		return nil, false
	}
	from, err := parseDate(start)
	if err != nil {
		return nil, false
	}
	to, err := parseDate(end)
	if err != nil {
		return nil, false
	}
	return &entity.DateRange{From: from, To: to}, true
}

func (h *CashFlowHandler) Create(c *gin.Context) {
	var req createCashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", "date must be YYYY-MM-DD or RFC 3339")
		return
	}

	cf, err := mediator.Send[*entity.CashFlow](c.Request.Context(), h.Mediator, cashflow.CreateCashFlowCommand{
		Data: cashflow.CreateCashFlowData{
			UserID:      req.UserID,
			Amount:      req.Amount,
			Type:        entity.CashFlowType(req.Type),
			Description: req.Description,
			Date:        date,
		},
	})
	if err != nil {
		response.Fail(c, apperrors.StatusOf(err), "failed to create cash flow", err.Error())
		return
	}
	response.OK(c, http.StatusCreated, toCashFlowView(cf), "cash flow created", nil)
}

func (h *CashFlowHandler) Get(c *gin.Context) {
	cf, err := mediator.Send[*entity.CashFlow](c.Request.Context(), h.Mediator, cashflow.FindByIDCashFlowQuery{ID: c.Param("id")})
	if err != nil {
		response.Fail(c, apperrors.StatusOf(err), "cash flow not found", err.Error())
		return
	}
	response.OK(c, http.StatusOK, toCashFlowView(cf), "cash flow", nil)
}

func (h *CashFlowHandler) ListByUser(c *gin.Context) {
	dr, ok := dateRangeFromQuery(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, "invalid date range", "startDate and endDate must both be valid dates")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid pagination", "limit must be an integer")
		return
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid pagination", "page must be an integer")
		return
	}

	flows, err := mediator.Send[[]entity.CashFlow](c.Request.Context(), h.Mediator, cashflow.FindAllByUserIDCashFlowQuery{
		UserID:    c.Param("userId"),
		Limit:     limit,
		Page:      page,
		DateRange: dr,
	})
	if err != nil {
		response.Fail(c, apperrors.StatusOf(err), "failed to list cash flows", err.Error())
		return
	}
	response.OK(c, http.StatusOK, toCashFlowViews(flows), "cash flows", map[string]any{
		"page":  page,
		"limit": limit,
		"count": len(flows),
	})
}

func (h *CashFlowHandler) Balance(c *gin.Context) {
	dr, ok := dateRangeFromQuery(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, "invalid date range", "startDate and endDate must both be valid dates")
		return
	}

	balance, err := mediator.Send[entity.CashFlowBalance](c.Request.Context(), h.Mediator, cashflow.GetBalanceByUserIDCashFlowQuery{
		UserID:    c.Param("userId"),
		DateRange: dr,
	})
	if err != nil {
		response.Fail(c, apperrors.StatusOf(err), "failed to get balance", err.Error())
		return
	}
	response.OK(c, http.StatusOK, balance, "balance", nil)
}

func (h *CashFlowHandler) Update(c *gin.Context) {
	var req updateCashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	upd := repository.CashFlowUpdate{Amount: req.Amount}
	if req.Type != nil {
		t := entity.CashFlowType(*req.Type)
		upd.Type = &t
	}
	if len(req.Description) > 0 {
		var desc *string
		if err := json.Unmarshal(req.Description, &desc); err != nil {
			response.Fail(c, http.StatusBadRequest, "invalid payload", "description must be a string or null")
			return
		}
		upd.Description = repository.Some(desc)
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "invalid payload", "date must be YYYY-MM-DD or RFC 3339")
			return
		}
		upd.Date = &date
	}

	cf, err := mediator.Send[*entity.CashFlow](c.Request.Context(), h.Mediator, cashflow.UpdateCashFlowCommand{
		ID:   c.Param("id"),
		Data: upd,
	})
	if err != nil {
		response.Fail(c, apperrors.StatusOf(err), "failed to update cash flow", err.Error())
		return
	}
	response.OK(c, http.StatusOK, toCashFlowView(cf), "cash flow updated", nil)
}

func (h *CashFlowHandler) Delete(c *gin.Context) {
	_, err := mediator.Send[any](c.Request.Context(), h.Mediator, cashflow.DeleteCashFlowCommand{ID: c.Param("id")})
	if err != nil {
		response.Fail(c, apperrors.StatusOf(err), "failed to delete cash flow", err.Error())
		return
	}
	response.OK[any](c, http.StatusOK, gin.H{"deleted": true}, "cash flow deleted", nil)
}
