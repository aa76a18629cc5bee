package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

const defaultIdleTimeout = 30 * time.Minute

// SessionGuard implements the session state machine between anonymous and authenticated. It
// creates a session on login, destroys it on logout or idle timeout, and
// checks capabilities in front of every operation.
type SessionGuard struct {
	auth        ports.AuthService
	sessions    ports.SessionStore
	audit       ports.AuditService
	jwtSecret   string
	tokenTTL    time.Duration
	idleTimeout time.Duration
	now         func() time.Time
	log         zerolog.Logger
}

func NewSessionGuard(
	auth ports.AuthService,
	sessions ports.SessionStore,
	audit ports.AuditService,
	jwtSecret string,
	idleTimeout time.Duration,
	log zerolog.Logger,
) *SessionGuard {
	if idleTimeout <= 0 {
		idleTimeout = defaultIdleTimeout
	}
	return &SessionGuard{
		auth:        auth,
		sessions:    sessions,
		audit:       audit,
		jwtSecret:   jwtSecret,
		tokenTTL:    24 * time.Hour,
		idleTimeout: idleTimeout,
		now:         time.Now,
		log:         log,
	}
}

// WithClock overrides the guard's clock. Intended for tests.
func (g *SessionGuard) WithClock(now func() time.Time) *SessionGuard {
	g.now = now
	return g
}

func (g *SessionGuard) Login(ctx context.Context, accountID, password string) (*ports.LoginResult, error) {
	account, err := g.auth.Authenticate(ctx, accountID, password)
	if err != nil {
		return nil, err
	}

	session := domain.Session{
		ID:           uuid.NewString(),
		AccountID:    account.ID,
		Role:         account.Role,
		LastActivity: g.now().UTC(),
	}
	if err := g.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	token, err := g.generateToken(session)
	if err != nil {
		return nil, err
	}

	g.audit.Record(ctx, session, domain.AuditLogin, "User logged in: "+account.ID)
	g.log.Info().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("login")

	return &ports.LoginResult{
		Token:       token,
		Session:     session,
		DisplayName: account.DisplayName,
	}, nil
}

func (g *SessionGuard) Logout(ctx context.Context, sessionID string) error {
	session, err := g.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := g.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	g.audit.Record(ctx, *session, domain.AuditLogout, "User logged out: "+session.AccountID)
	g.log.Info().Str("account_id", session.AccountID).Msg("logout")
	return nil
}

// Touch enforces the idle timeout and refreshes the timer. It must run
// before any other work on an authenticated interaction.
func (g *SessionGuard) Touch(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := g.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := g.now().UTC()
	if session.IdleSince(now, g.idleTimeout) {
		_ = g.sessions.Delete(ctx, sessionID)
		g.audit.Record(ctx, *session, domain.AuditSessionTimeout, "Session timed out: "+session.AccountID)
		g.log.Info().Str("account_id", session.AccountID).Msg("session expired after idle timeout")
		return nil, domain.ErrSessionExpired
	}

	session.LastActivity = now
	if err := g.sessions.Put(ctx, *session); err != nil {
		return nil, fmt.Errorf("refresh session: %w", err)
	}
	return session, nil
}

func (g *SessionGuard) Authorize(session domain.Session, capability domain.Capability) error {
	if !session.Role.HasCapability(capability) {
		return fmt.Errorf("%w: %s", domain.ErrMissingCapability, capability)
	}
	return nil
}

func (g *SessionGuard) generateToken(session domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":        session.ID,
		"account_id": session.AccountID,
		"role":       string(session.Role),
		"exp":        g.now().Add(g.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(g.jwtSecret))
}
