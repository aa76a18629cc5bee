package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/seerahverse/account-dashboard/internal/api/metrics"
	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

// LedgerHandler handles HTTP requests for balances and transactions.
type LedgerHandler struct {
	service ports.LedgerService
	creds   ports.CredentialRepository
}

func NewLedgerHandler(service ports.LedgerService, creds ports.CredentialRepository) *LedgerHandler {
	return &LedgerHandler{service: service, creds: creds}
}

// --- Request / Response types ---

type documentRequest struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	Data        string `json:"data" validate:"required,base64"`
}

type recordTransactionRequest struct {
	Type     string           `json:"type" validate:"required"`
	Amount   string           `json:"amount" validate:"required"`
	Category string           `json:"category" validate:"required"`
	Reason   string           `json:"reason"`
	Date     string           `json:"date"`
	Document *documentRequest `json:"document,omitempty"`
}

type balanceResponse struct {
	AccountID   string `json:"account_id"`
	Current     string `json:"current_balance"`
	LastUpdated string `json:"last_updated"`
}

type transactionResponse struct {
	ID         string           `json:"id"`
	Type       string           `json:"type"`
	Amount     string           `json:"amount"`
	Category   string           `json:"category"`
	Reason     string           `json:"reason"`
	Date       string           `json:"date"`
	Document   *domain.Document `json:"document,omitempty"`
	RecordedAt string           `json:"recorded_at"`
}

type summaryResponse struct {
	Balance          balanceResponse `json:"balance"`
	TotalIncome      string          `json:"total_income"`
	TotalExpense     string          `json:"total_expense"`
	TransactionCount int             `json:"transaction_count"`
}

func toBalanceResponse(b domain.Balance) balanceResponse {
	return balanceResponse{
		AccountID:   b.AccountID,
		Current:     b.Current.String(),
		LastUpdated: b.LastUpdated.UTC().Format(time.RFC3339),
	}
}

func toTransactionResponse(tx domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:         tx.ID,
		Type:       string(tx.Type),
		Amount:     tx.Amount.String(),
		Category:   string(tx.Category),
		Reason:     tx.Reason,
		Date:       tx.Date.UTC().Format(time.RFC3339),
		Document:   tx.Document,
		RecordedAt: tx.RecordedAt.UTC().Format(time.RFC3339),
	}
}

// GetBalance handles GET /v1/accounts/:account_id/balance.
//
// @Summary      Current balance for an account
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  path      string  true  "Account id (HBL, Jazzcash, EasyPaisa)"
// @Success      200         {object}  balanceResponse
// @Failure      403         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /v1/accounts/{account_id}/balance [get]
func (h *LedgerHandler) GetBalance(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	accountID, err := resolveAccount(c.Request().Context(), c, h.creds, session)
	if err != nil {
		return err
	}

	balance, err := h.service.GetBalance(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBalanceResponse(balance))
}

// ListTransactions handles GET /v1/accounts/:account_id/transactions.
//
// @Summary      Transactions for an account, in recording order
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  path      string  true  "Account id"
// @Success      200         {array}   transactionResponse
// @Failure      403         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /v1/accounts/{account_id}/transactions [get]
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	accountID, err := resolveAccount(c.Request().Context(), c, h.creds, session)
	if err != nil {
		return err
	}

	txs, err := h.service.ListTransactions(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	resp := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, toTransactionResponse(tx))
	}
	return c.JSON(http.StatusOK, resp)
}

// Record handles POST /v1/accounts/:account_id/transactions.
//
// @Summary      Record a cash-in or cash-out transaction
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  path      string                    true  "Account id"
// @Param        body        body      recordTransactionRequest  true  "Transaction draft"
// @Success      201         {object}  balanceResponse
// @Failure      400         {object}  map[string]string
// @Failure      403         {object}  map[string]string
// @Failure      422         {object}  map[string]string
// @Router       /v1/accounts/{account_id}/transactions [post]
func (h *LedgerHandler) Record(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	accountID, err := resolveAccount(c.Request().Context(), c, h.creds, session)
	if err != nil {
		return err
	}

	var req recordTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	draft, err := toDraft(req)
	if err != nil {
		metrics.TransactionsRejectedTotal.WithLabelValues("malformed_field").Inc()
		return err
	}

	balance, err := h.service.RecordTransaction(c.Request().Context(), session, accountID, draft)
	if err != nil {
		metrics.TransactionsRejectedTotal.WithLabelValues(rejectionReason(err)).Inc()
		return err
	}

	metrics.TransactionsRecordedTotal.WithLabelValues(string(draft.Type), string(draft.Category)).Inc()
	return c.JSON(http.StatusCreated, toBalanceResponse(balance))
}

// Summary handles GET /v1/accounts/:account_id/summary.
//
// @Summary      Dashboard summary for an account
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  path      string  true  "Account id"
// @Success      200         {object}  summaryResponse
// @Failure      403         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /v1/accounts/{account_id}/summary [get]
func (h *LedgerHandler) Summary(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	accountID, err := resolveAccount(c.Request().Context(), c, h.creds, session)
	if err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summaryResponse{
		Balance:          toBalanceResponse(summary.Balance),
		TotalIncome:      summary.TotalIncome.String(),
		TotalExpense:     summary.TotalExpense.String(),
		TransactionCount: summary.TransactionCount,
	})
}

// Reconcile handles POST /v1/accounts/:account_id/reconcile.
//
// @Summary      Recompute the balance from the transaction log
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  path      string  true  "Account id"
// @Success      200         {object}  balanceResponse
// @Failure      403         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /v1/accounts/{account_id}/reconcile [post]
func (h *LedgerHandler) Reconcile(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	accountID, err := resolveAccount(c.Request().Context(), c, h.creds, session)
	if err != nil {
		return err
	}

	balance, err := h.service.Reconcile(c.Request().Context(), session, accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBalanceResponse(balance))
}

func toDraft(req recordTransactionRequest) (ports.TransactionDraft, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return ports.TransactionDraft{}, fmt.Errorf("%w: amount", domain.ErrMalformedField)
	}

	var date time.Time
	if req.Date != "" {
		date, err = parseDate(req.Date)
		if err != nil {
			return ports.TransactionDraft{}, fmt.Errorf("%w: date", domain.ErrMalformedField)
		}
	}

	draft := ports.TransactionDraft{
		Type:     domain.TransactionType(req.Type),
		Amount:   amount,
		Category: domain.Category(req.Category),
		Reason:   req.Reason,
		Date:     date,
	}
	if req.Document != nil {
		draft.Document = &domain.Document{
			Filename:    req.Document.Filename,
			ContentType: req.Document.ContentType,
			Data:        req.Document.Data,
		}
	}
	return draft, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNegativeAmount):
		return "negative_amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrMalformedField):
		return "malformed_field"
	case errors.Is(err, domain.ErrMissingCapability):
		return "forbidden"
	default:
		return "error"
	}
}
