package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

// ReminderHandler handles HTTP requests for payment reminders.
type ReminderHandler struct {
	service ports.ReminderService
	creds   ports.CredentialRepository
}

func NewReminderHandler(service ports.ReminderService, creds ports.CredentialRepository) *ReminderHandler {
	return &ReminderHandler{service: service, creds: creds}
}

type addReminderRequest struct {
	Title     string `json:"title" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
	DueDate   string `json:"due_date" validate:"required"`
	Frequency string `json:"frequency" validate:"required,oneof=One-time Monthly Quarterly Yearly"`
}

type reminderResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Amount    string `json:"amount"`
	DueDate   string `json:"due_date"`
	Frequency string `json:"frequency"`
	CreatedAt string `json:"created_at"`
}

func toReminderResponse(r domain.Reminder) reminderResponse {
	return reminderResponse{
		ID:        r.ID,
		Title:     r.Title,
		Amount:    r.Amount.String(),
		DueDate:   r.DueDate.UTC().Format("2006-01-02"),
		Frequency: string(r.Frequency),
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// List handles GET /v1/accounts/:account_id/reminders.
//
// @Summary      Payment reminders for an account, in insertion order
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  path      string  true  "Account id"
// @Success      200         {array}   reminderResponse
// @Failure      403         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /v1/accounts/{account_id}/reminders [get]
func (h *ReminderHandler) List(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	accountID, err := resolveAccount(c.Request().Context(), c, h.creds, session)
	if err != nil {
		return err
	}

	reminders, err := h.service.List(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	resp := make([]reminderResponse, 0, len(reminders))
	for _, r := range reminders {
		resp = append(resp, toReminderResponse(r))
	}
	return c.JSON(http.StatusOK, resp)
}

// Add handles POST /v1/accounts/:account_id/reminders.
//
// @Summary      Add a payment reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  path      string              true  "Account id"
// @Param        body        body      addReminderRequest  true  "Reminder draft"
// @Success      201         {object}  reminderResponse
// @Failure      400         {object}  map[string]string
// @Failure      403         {object}  map[string]string
// @Router       /v1/accounts/{account_id}/reminders [post]
func (h *ReminderHandler) Add(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	accountID, err := resolveAccount(c.Request().Context(), c, h.creds, session)
	if err != nil {
		return err
	}

	var req addReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return fmt.Errorf("%w: amount", domain.ErrMalformedField)
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return fmt.Errorf("%w: due_date", domain.ErrMalformedField)
	}

	reminder, err := h.service.Add(c.Request().Context(), session, accountID, ports.ReminderDraft{
		Title:     req.Title,
		Amount:    amount,
		DueDate:   dueDate,
		Frequency: domain.Frequency(req.Frequency),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toReminderResponse(*reminder))
}
