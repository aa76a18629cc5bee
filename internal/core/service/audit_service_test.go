package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

type failingAuditRepo struct{}

func (failingAuditRepo) Append(context.Context, domain.AuditEntry) error {
	return errors.New("disk full")
}

func (failingAuditRepo) List(context.Context) ([]domain.AuditEntry, error) {
	return nil, nil
}

type recordingAuditRepo struct {
	entries []domain.AuditEntry
}

func (r *recordingAuditRepo) Append(_ context.Context, entry domain.AuditEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *recordingAuditRepo) List(context.Context) ([]domain.AuditEntry, error) {
	return r.entries, nil
}

func TestAuditService_Record_AbsorbsAppendFailure(t *testing.T) {
	var hookCalls int
	svc := NewAuditService(failingAuditRepo{}, zerolog.Nop()).
		WithAppendErrorHook(func() { hookCalls++ })

	// Record has no error return; a failing backend must not panic and must
	// fire the hook.
	svc.Record(context.Background(), adminSession(), domain.AuditLogin, "User logged in: HBL")
	if hookCalls != 1 {
		t.Fatalf("hook calls = %d, want 1", hookCalls)
	}
}

func TestAuditService_List_RequiresViewAudit(t *testing.T) {
	repo := &recordingAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())
	ctx := context.Background()

	svc.Record(ctx, adminSession(), domain.AuditLogin, "User logged in: HBL")

	entries, err := svc.List(ctx, adminSession())
	if err != nil {
		t.Fatalf("List as admin: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	if _, err := svc.List(ctx, viewerSession()); !errors.Is(err, domain.ErrMissingCapability) {
		t.Fatalf("expected ErrMissingCapability, got %v", err)
	}

	accountant := domain.Session{ID: "sess-acc", AccountID: "Jazzcash", Role: domain.RoleAccountant}
	if _, err := svc.List(ctx, accountant); !errors.Is(err, domain.ErrMissingCapability) {
		t.Fatalf("expected ErrMissingCapability for accountant, got %v", err)
	}
}
