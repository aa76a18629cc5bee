package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

func invokeCapability(t *testing.T, session *domain.Session, capability domain.Capability) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/accounts/HBL/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if session != nil {
		c.Set(SessionContextKey, *session)
	}

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	}
	err := RequireCapability(capability)(next)(c)
	return rec, nextCalled, err
}

func TestRequireCapability_NoSession(t *testing.T) {
	_, nextCalled, err := invokeCapability(t, nil, domain.CapAdd)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if nextCalled {
		t.Fatalf("next must not run without a session")
	}
}

func TestRequireCapability_Forbidden(t *testing.T) {
	session := &domain.Session{ID: "sess-1", AccountID: "EasyPaisa", Role: domain.RoleViewer}

	rec, nextCalled, err := invokeCapability(t, session, domain.CapAdd)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if nextCalled {
		t.Fatalf("next must not run for a missing capability")
	}
}

func TestRequireCapability_Allowed(t *testing.T) {
	session := &domain.Session{ID: "sess-1", AccountID: "Jazzcash", Role: domain.RoleAccountant}

	rec, nextCalled, err := invokeCapability(t, session, domain.CapAdd)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !nextCalled {
		t.Fatalf("next did not run")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
