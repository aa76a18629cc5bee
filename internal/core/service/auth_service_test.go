package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

type stubCredentialRepo struct {
	accounts map[string]*domain.Account
}

func newStubCredentialRepo(t *testing.T, seeds map[string]struct {
	role     domain.Role
	password string
}) *stubCredentialRepo {
	t.Helper()
	accounts := make(map[string]*domain.Account, len(seeds))
	for id, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		accounts[id] = &domain.Account{
			ID:           id,
			DisplayName:  id,
			Role:         seed.role,
			PasswordHash: string(hash),
		}
	}
	return &stubCredentialRepo{accounts: accounts}
}

func (r *stubCredentialRepo) FindByID(_ context.Context, accountID string) (*domain.Account, error) {
	account, ok := r.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountUnknown
	}
	clone := *account
	return &clone, nil
}

func testCredentialRepo(t *testing.T) *stubCredentialRepo {
	return newStubCredentialRepo(t, map[string]struct {
		role     domain.Role
		password string
	}{
		"HBL":       {domain.RoleAdmin, "085211"},
		"Jazzcash":  {domain.RoleAccountant, "085211"},
		"EasyPaisa": {domain.RoleViewer, "085211"},
	})
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	svc := NewAuthService(testCredentialRepo(t))

	account, err := svc.Authenticate(context.Background(), "HBL", "085211")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if account.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", account.Role)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	svc := NewAuthService(testCredentialRepo(t))

	if _, err := svc.Authenticate(context.Background(), "HBL", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownAccount(t *testing.T) {
	svc := NewAuthService(testCredentialRepo(t))

	// Unknown account must be indistinguishable from a wrong password.
	if _, err := svc.Authenticate(context.Background(), "Ghost", "085211"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_EmptyInput(t *testing.T) {
	svc := NewAuthService(testCredentialRepo(t))

	if _, err := svc.Authenticate(context.Background(), "", "085211"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty account, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "HBL", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}
