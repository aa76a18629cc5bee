package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

// BudgetHandler handles HTTP requests for the per-account budget.
type BudgetHandler struct {
	service ports.BudgetService
	creds   ports.CredentialRepository
}

func NewBudgetHandler(service ports.BudgetService, creds ports.CredentialRepository) *BudgetHandler {
	return &BudgetHandler{service: service, creds: creds}
}

type putBudgetRequest struct {
	MonthlyBudget string            `json:"monthly_budget" validate:"required"`
	Categories    map[string]string `json:"categories"`
}

type budgetResponse struct {
	AccountID     string            `json:"account_id"`
	MonthlyBudget string            `json:"monthly_budget"`
	Categories    map[string]string `json:"categories"`
}

func toBudgetResponse(b domain.Budget) budgetResponse {
	categories := make(map[string]string, len(b.Categories))
	for name, limit := range b.Categories {
		categories[string(name)] = limit.String()
	}
	return budgetResponse{
		AccountID:     b.AccountID,
		MonthlyBudget: b.MonthlyBudget.String(),
		Categories:    categories,
	}
}

// Get handles GET /v1/accounts/:account_id/budget.
//
// @Summary      Budget for an account
// @Tags         budget
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  path      string  true  "Account id"
// @Success      200         {object}  budgetResponse
// @Failure      403         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /v1/accounts/{account_id}/budget [get]
func (h *BudgetHandler) Get(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	accountID, err := resolveAccount(c.Request().Context(), c, h.creds, session)
	if err != nil {
		return err
	}

	budget, err := h.service.Get(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// Put handles PUT /v1/accounts/:account_id/budget.
//
// @Summary      Replace the budget for an account
// @Tags         budget
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  path      string            true  "Account id"
// @Param        body        body      putBudgetRequest  true  "Budget"
// @Success      200         {object}  budgetResponse
// @Failure      400         {object}  map[string]string
// @Failure      403         {object}  map[string]string
// @Router       /v1/accounts/{account_id}/budget [put]
func (h *BudgetHandler) Put(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	accountID, err := resolveAccount(c.Request().Context(), c, h.creds, session)
	if err != nil {
		return err
	}

	var req putBudgetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	monthly, err := decimal.NewFromString(req.MonthlyBudget)
	if err != nil {
		return fmt.Errorf("%w: monthly_budget", domain.ErrMalformedField)
	}
	categories := make(map[domain.Category]decimal.Decimal, len(req.Categories))
	for name, raw := range req.Categories {
		limit, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("%w: categories[%s]", domain.ErrMalformedField, name)
		}
		categories[domain.Category(name)] = limit
	}

	budget := domain.Budget{
		AccountID:     accountID,
		MonthlyBudget: monthly,
		Categories:    categories,
	}
	if err := h.service.Put(c.Request().Context(), session, budget); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}
