package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seerahverse/account-dashboard/internal/api/metrics"
	"github.com/seerahverse/account-dashboard/internal/api/middleware"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

type AuthHandler struct {
	guard ports.SessionGuard
}

func NewAuthHandler(guard ports.SessionGuard) *AuthHandler {
	return &AuthHandler{guard: guard}
}

type loginRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token       string `json:"token"`
	AccountID   string `json:"account_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// Login authenticates an account and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Account credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.guard.Login(c.Request().Context(), req.AccountID, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token:       result.Token,
		AccountID:   result.Session.AccountID,
		DisplayName: result.DisplayName,
		Role:        string(result.Session.Role),
	})
}

// Logout closes the current session.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204  "session destroyed"
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	if err := h.guard.Logout(c.Request().Context(), session.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
