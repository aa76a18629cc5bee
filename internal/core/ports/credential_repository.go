package ports

import (
	"context"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// CredentialRepository looks up provisioned account identities. Accounts are
// fixed at provisioning time; there is no create or update operation.
type CredentialRepository interface {
	FindByID(ctx context.Context, accountID string) (*domain.Account, error)
}
