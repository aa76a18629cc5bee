// Package credentials provides the fixed-account credential store. Exactly
// three named accounts are provisioned at startup; passwords are hashed with
// bcrypt at construction and plaintexts are never retained.
package credentials

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// Seed describes one account to provision.
type Seed struct {
	ID          string
	DisplayName string
	Role        domain.Role
	Password    string
}

// StaticStore is an immutable in-memory credential store seeded at startup.
type StaticStore struct {
	accounts map[string]domain.Account
}

func NewStaticStore(seeds []Seed) (*StaticStore, error) {
	accounts := make(map[string]domain.Account, len(seeds))
	for _, seed := range seeds {
		if seed.ID == "" || seed.Password == "" {
			return nil, fmt.Errorf("credentials: incomplete seed %q", seed.ID)
		}
		if !seed.Role.Valid() {
			return nil, fmt.Errorf("credentials: unknown role %q for account %q", seed.Role, seed.ID)
		}
		if _, exists := accounts[seed.ID]; exists {
			return nil, fmt.Errorf("credentials: duplicate account %q", seed.ID)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("credentials: hash password for %q: %w", seed.ID, err)
		}
		accounts[seed.ID] = domain.Account{
			ID:           seed.ID,
			DisplayName:  seed.DisplayName,
			Role:         seed.Role,
			PasswordHash: string(hash),
		}
	}
	return &StaticStore{accounts: accounts}, nil
}

func (s *StaticStore) FindByID(_ context.Context, accountID string) (*domain.Account, error) {
	account, ok := s.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountUnknown
	}
	return &account, nil
}
