package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seerahverse/account-dashboard/internal/api/middleware"
	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

// requireSession extracts the session injected by the Auth middleware. Its
// absence means the route was registered without the middleware; fail closed.
func requireSession(c echo.Context) (domain.Session, error) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return session, nil
}

// resolveAccount validates the :account_id path parameter against the
// provisioned set and scopes access: a non-admin session only reaches its own
// account's collections.
func resolveAccount(ctx context.Context, c echo.Context, creds ports.CredentialRepository, session domain.Session) (string, error) {
	accountID := c.Param("account_id")
	if _, err := creds.FindByID(ctx, accountID); err != nil {
		return "", err
	}
	if accountID != session.AccountID && session.Role != domain.RoleAdmin {
		return "", fmt.Errorf("%w: access to account %s", domain.ErrMissingCapability, accountID)
	}
	return accountID, nil
}
