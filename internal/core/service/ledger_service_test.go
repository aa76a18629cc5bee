package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

type stubLedgerRepo struct {
	txs      map[string][]domain.Transaction
	balances map[string]domain.Balance
}

func newStubLedgerRepo() *stubLedgerRepo {
	return &stubLedgerRepo{
		txs:      make(map[string][]domain.Transaction),
		balances: make(map[string]domain.Balance),
	}
}

func (r *stubLedgerRepo) AppendTransaction(_ context.Context, tx *domain.Transaction) error {
	r.txs[tx.AccountID] = append(r.txs[tx.AccountID], *tx)
	return nil
}

func (r *stubLedgerRepo) ListTransactions(_ context.Context, accountID string) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, len(r.txs[accountID]))
	copy(out, r.txs[accountID])
	return out, nil
}

func (r *stubLedgerRepo) GetBalance(_ context.Context, accountID string) (*domain.Balance, error) {
	balance, ok := r.balances[accountID]
	if !ok {
		return nil, domain.ErrBalanceNotFound
	}
	return &balance, nil
}

func (r *stubLedgerRepo) PutBalance(_ context.Context, balance domain.Balance) error {
	r.balances[balance.AccountID] = balance
	return nil
}

type stubAudit struct {
	entries []domain.AuditEntry
}

func (a *stubAudit) Record(_ context.Context, actor domain.Session, action, details string) {
	a.entries = append(a.entries, domain.AuditEntry{
		AccountID: actor.AccountID,
		Role:      actor.Role,
		Action:    action,
		Details:   details,
	})
}

func (a *stubAudit) List(_ context.Context, actor domain.Session) ([]domain.AuditEntry, error) {
	if !actor.Role.HasCapability(domain.CapViewAudit) {
		return nil, domain.ErrMissingCapability
	}
	return a.entries, nil
}

func adminSession() domain.Session {
	return domain.Session{ID: "sess-admin", AccountID: "HBL", Role: domain.RoleAdmin, LastActivity: time.Now()}
}

func viewerSession() domain.Session {
	return domain.Session{ID: "sess-viewer", AccountID: "EasyPaisa", Role: domain.RoleViewer, LastActivity: time.Now()}
}

func cashIn(amount int64) ports.TransactionDraft {
	return ports.TransactionDraft{
		Type:     domain.CashIn,
		Amount:   decimal.NewFromInt(amount),
		Category: domain.CategoryTuition,
		Reason:   "test",
	}
}

func cashOut(amount int64) ports.TransactionDraft {
	return ports.TransactionDraft{
		Type:     domain.CashOut,
		Amount:   decimal.NewFromInt(amount),
		Category: domain.CategorySupplies,
		Reason:   "test",
	}
}

func newTestLedger() (*LedgerService, *stubLedgerRepo, *stubAudit) {
	repo := newStubLedgerRepo()
	audit := &stubAudit{}
	svc := NewLedgerService(repo, audit, zerolog.Nop())
	return svc, repo, audit
}

// checkInvariant verifies balance == Σ(signed amounts) for the account.
func checkInvariant(t *testing.T, svc *LedgerService, accountID string) {
	t.Helper()
	ctx := context.Background()

	balance, err := svc.GetBalance(ctx, accountID)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	txs, err := svc.ListTransactions(ctx, accountID)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}

	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Signed())
	}
	if !balance.Current.Equal(sum) {
		t.Fatalf("invariant violated: balance %s != signed sum %s", balance.Current, sum)
	}
}

func TestLedgerService_GetBalance_Default(t *testing.T) {
	svc, _, _ := newTestLedger()

	balance, err := svc.GetBalance(context.Background(), "HBL")
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if !balance.Current.IsZero() {
		t.Fatalf("expected zero default balance, got %s", balance.Current)
	}
	if balance.LastUpdated.IsZero() {
		t.Fatalf("expected last_updated to be set")
	}
}

func TestLedgerService_RecordTransaction_Scenario(t *testing.T) {
	svc, _, _ := newTestLedger()
	ctx := context.Background()
	actor := adminSession()

	// HBL starts at 0; Cash In 5000 → 5000.
	balance, err := svc.RecordTransaction(ctx, actor, "HBL", cashIn(5000))
	if err != nil {
		t.Fatalf("record cash in: %v", err)
	}
	if !balance.Current.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("balance = %s, want 5000", balance.Current)
	}
	checkInvariant(t, svc, "HBL")

	// Cash Out 2000 → 3000.
	balance, err = svc.RecordTransaction(ctx, actor, "HBL", cashOut(2000))
	if err != nil {
		t.Fatalf("record cash out: %v", err)
	}
	if !balance.Current.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("balance = %s, want 3000", balance.Current)
	}
	checkInvariant(t, svc, "HBL")

	// Cash Out 5000 → rejected, balance stays 3000.
	if _, err := svc.RecordTransaction(ctx, actor, "HBL", cashOut(5000)); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	balance, err = svc.GetBalance(ctx, "HBL")
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if !balance.Current.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("balance after rejection = %s, want 3000", balance.Current)
	}

	// Exactly the two successful entries, in order.
	txs, err := svc.ListTransactions(ctx, "HBL")
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[0].Type != domain.CashIn || txs[1].Type != domain.CashOut {
		t.Fatalf("unexpected transaction order: %s, %s", txs[0].Type, txs[1].Type)
	}
	checkInvariant(t, svc, "HBL")
}

func TestLedgerService_RecordTransaction_NegativeAmount(t *testing.T) {
	svc, repo, _ := newTestLedger()

	draft := cashIn(0)
	draft.Amount = decimal.NewFromInt(-10)
	if _, err := svc.RecordTransaction(context.Background(), adminSession(), "HBL", draft); !errors.Is(err, domain.ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
	if len(repo.txs["HBL"]) != 0 {
		t.Fatalf("rejected draft must not reach the log")
	}
	if _, ok := repo.balances["HBL"]; ok {
		t.Fatalf("rejected draft must not create a balance record")
	}
}

func TestLedgerService_RecordTransaction_MalformedDraft(t *testing.T) {
	svc, _, _ := newTestLedger()
	ctx := context.Background()

	draft := cashIn(100)
	draft.Type = domain.TransactionType("Wire")
	if _, err := svc.RecordTransaction(ctx, adminSession(), "HBL", draft); !errors.Is(err, domain.ErrMalformedField) {
		t.Fatalf("expected ErrMalformedField for type, got %v", err)
	}

	draft = cashIn(100)
	draft.Category = domain.Category("Travel")
	if _, err := svc.RecordTransaction(ctx, adminSession(), "HBL", draft); !errors.Is(err, domain.ErrMalformedField) {
		t.Fatalf("expected ErrMalformedField for category, got %v", err)
	}
}

func TestLedgerService_RecordTransaction_ViewerForbidden(t *testing.T) {
	svc, repo, _ := newTestLedger()

	if _, err := svc.RecordTransaction(context.Background(), viewerSession(), "EasyPaisa", cashIn(100)); !errors.Is(err, domain.ErrMissingCapability) {
		t.Fatalf("expected ErrMissingCapability, got %v", err)
	}
	if len(repo.txs["EasyPaisa"]) != 0 {
		t.Fatalf("forbidden draft must not reach the log")
	}
}

func TestLedgerService_RecordTransaction_EmitsAudit(t *testing.T) {
	svc, _, audit := newTestLedger()

	if _, err := svc.RecordTransaction(context.Background(), adminSession(), "HBL", cashIn(500)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(audit.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
	}
	if audit.entries[0].Action != domain.AuditAddTransaction {
		t.Fatalf("unexpected audit action: %s", audit.entries[0].Action)
	}
}

func TestLedgerService_Summary(t *testing.T) {
	svc, _, _ := newTestLedger()
	ctx := context.Background()
	actor := adminSession()

	mustRecord := func(draft ports.TransactionDraft) {
		t.Helper()
		if _, err := svc.RecordTransaction(ctx, actor, "HBL", draft); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	mustRecord(cashIn(5000))
	mustRecord(cashOut(1500))
	mustRecord(cashIn(300))

	summary, err := svc.Summary(ctx, "HBL")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !summary.TotalIncome.Equal(decimal.NewFromInt(5300)) {
		t.Fatalf("total income = %s, want 5300", summary.TotalIncome)
	}
	if !summary.TotalExpense.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("total expense = %s, want 1500", summary.TotalExpense)
	}
	if summary.TransactionCount != 3 {
		t.Fatalf("transaction count = %d, want 3", summary.TransactionCount)
	}
	if !summary.Balance.Current.Equal(decimal.NewFromInt(3800)) {
		t.Fatalf("balance = %s, want 3800", summary.Balance.Current)
	}
}

func TestLedgerService_Reconcile_RepairsDivergence(t *testing.T) {
	svc, repo, audit := newTestLedger()
	ctx := context.Background()
	actor := adminSession()

	if _, err := svc.RecordTransaction(ctx, actor, "HBL", cashIn(5000)); err != nil {
		t.Fatalf("record: %v", err)
	}

	// Simulate a crash that left the balance stale after a log append.
	repo.balances["HBL"] = domain.Balance{AccountID: "HBL", Current: decimal.NewFromInt(1), LastUpdated: time.Now()}

	balance, err := svc.Reconcile(ctx, actor, "HBL")
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if !balance.Current.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("reconciled balance = %s, want 5000", balance.Current)
	}
	checkInvariant(t, svc, "HBL")

	last := audit.entries[len(audit.entries)-1]
	if last.Action != domain.AuditReconcileBalance {
		t.Fatalf("unexpected audit action: %s", last.Action)
	}
}

func TestLedgerService_Reconcile_RequiresEdit(t *testing.T) {
	svc, _, _ := newTestLedger()

	if _, err := svc.Reconcile(context.Background(), viewerSession(), "EasyPaisa"); !errors.Is(err, domain.ErrMissingCapability) {
		t.Fatalf("expected ErrMissingCapability, got %v", err)
	}
}
