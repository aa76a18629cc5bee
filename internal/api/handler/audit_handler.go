package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

// AuditHandler exposes the global audit trail.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

type auditEntryResponse struct {
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Role      string `json:"role"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}

// List handles GET /v1/audit.
//
// @Summary      Global audit trail, in insertion order
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   auditEntryResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), session)
	if err != nil {
		return err
	}

	resp := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, auditEntryResponse{
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
			User:      e.AccountID,
			Role:      string(e.Role),
			Action:    e.Action,
			Details:   e.Details,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
