package domain

import (
	"errors"
	"time"
)

var ErrSessionExpired = errors.New("session expired")
var ErrSessionNotFound = errors.New("session not found")

// Session is the explicit authenticated-session object. Created by login,
// destroyed by logout or idle timeout; there is no ambient global state.
type Session struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	Role         Role      `json:"role"`
	LastActivity time.Time `json:"last_activity"`
}

// IdleSince reports whether the session has been idle longer than timeout at
// instant now.
func (s Session) IdleSince(now time.Time, timeout time.Duration) bool {
	return now.Sub(s.LastActivity) > timeout
}
