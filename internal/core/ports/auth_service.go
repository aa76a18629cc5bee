package ports

import (
	"context"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// AuthService verifies credentials against the credential store.
type AuthService interface {
	// Authenticate returns the account on success. Unknown account and wrong
	// password both fail with domain.ErrInvalidCredentials; the caller can
	// never distinguish the two.
	Authenticate(ctx context.Context, accountID, password string) (*domain.Account, error)
}

// LoginResult is returned by SessionGuard.Login.
type LoginResult struct {
	Token       string
	Session     domain.Session
	DisplayName string
}

// SessionGuard owns the session state machine between anonymous and authenticated
// and the capability checks in front of every operation.
type SessionGuard interface {
	// Login authenticates and creates a fresh session with the idle timer
	// reset. Emits a login audit event.
	Login(ctx context.Context, accountID, password string) (*LoginResult, error)

	// Logout destroys the session and emits a logout audit event. Unknown
	// sessions fail with domain.ErrSessionNotFound.
	Logout(ctx context.Context, sessionID string) error

	// Touch loads the session, forces expiry when the idle timeout has been
	// exceeded (domain.ErrSessionExpired, session destroyed, session_timeout
	// audit event), and otherwise refreshes the idle timer. Every
	// authenticated interaction must call this first.
	Touch(ctx context.Context, sessionID string) (*domain.Session, error)

	// Authorize fails with domain.ErrMissingCapability when the session's
	// role does not grant the capability.
	Authorize(session domain.Session, capability domain.Capability) error
}
