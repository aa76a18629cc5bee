package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

const testSecret = "test-secret"

type stubGuard struct {
	session  *domain.Session
	touchErr error
}

func (g *stubGuard) Login(context.Context, string, string) (*ports.LoginResult, error) {
	return nil, errors.New("not implemented")
}

func (g *stubGuard) Logout(context.Context, string) error { return nil }

func (g *stubGuard) Touch(_ context.Context, sessionID string) (*domain.Session, error) {
	if g.touchErr != nil {
		return nil, g.touchErr
	}
	if g.session == nil || g.session.ID != sessionID {
		return nil, domain.ErrSessionNotFound
	}
	return g.session, nil
}

func (g *stubGuard) Authorize(session domain.Session, capability domain.Capability) error {
	if !session.Role.HasCapability(capability) {
		return domain.ErrMissingCapability
	}
	return nil
}

func signToken(t *testing.T, sessionID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func invokeAuth(t *testing.T, guard ports.SessionGuard, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/HBL/balance", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, Auth(testSecret, guard)(next)(c)
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invokeAuth(t, &stubGuard{}, "")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_BadScheme(t *testing.T) {
	_, err := invokeAuth(t, &stubGuard{}, "Basic abc")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	_, err := invokeAuth(t, &stubGuard{}, "Bearer not-a-token")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_WrongSigningKey(t *testing.T) {
	claims := jwt.MapClaims{"sid": "sess-1", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, err = invokeAuth(t, &stubGuard{}, "Bearer "+token)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	session := &domain.Session{
		ID:           "sess-1",
		AccountID:    "HBL",
		Role:         domain.RoleAdmin,
		LastActivity: time.Now(),
	}
	guard := &stubGuard{session: session}

	c, err := invokeAuth(t, guard, "Bearer "+signToken(t, "sess-1"))
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	got, ok := SessionFromContext(c)
	if !ok {
		t.Fatalf("session missing from context")
	}
	if got.AccountID != "HBL" || got.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session in context: %+v", got)
	}
}

func TestAuth_ExpiredSession(t *testing.T) {
	guard := &stubGuard{touchErr: domain.ErrSessionExpired}

	_, err := invokeAuth(t, guard, "Bearer "+signToken(t, "sess-1"))
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}
