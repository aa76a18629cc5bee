package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

// dummyHash is compared against when the account lookup misses, so unknown
// accounts and wrong passwords cost the same and stay indistinguishable.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// AuthService verifies passwords against the provisioned credential store.
type AuthService struct {
	repo ports.CredentialRepository
}

func NewAuthService(repo ports.CredentialRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Authenticate returns the account when the password matches its stored
// bcrypt hash. Every failure surfaces as domain.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, accountID, password string) (*domain.Account, error) {
	if accountID == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return account, nil
}
