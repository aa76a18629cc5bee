package file

import (
	"context"
	"fmt"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

const auditFile = "audit_log.json"

// AuditRepository persists the global audit trail as audit_log.json.
type AuditRepository struct {
	store *Store
}

func NewAuditRepository(store *Store) *AuditRepository {
	return &AuditRepository{store: store}
}

type fileAuditEntry struct {
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Role      string `json:"role"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}

func (r *AuditRepository) Append(_ context.Context, entry domain.AuditEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var records []fileAuditEntry
	if _, err := r.store.readJSON(auditFile, &records); err != nil {
		return err
	}

	records = append(records, fileAuditEntry{
		Timestamp: formatTime(entry.Timestamp),
		User:      entry.AccountID,
		Role:      string(entry.Role),
		Action:    entry.Action,
		Details:   entry.Details,
	})
	return r.store.writeJSON(auditFile, records)
}

func (r *AuditRepository) List(_ context.Context) ([]domain.AuditEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var records []fileAuditEntry
	if _, err := r.store.readJSON(auditFile, &records); err != nil {
		return nil, err
	}

	entries := make([]domain.AuditEntry, 0, len(records))
	for i, rec := range records {
		ts, err := parseTime(rec.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("audit entry %d: %w", i, err)
		}
		entries = append(entries, domain.AuditEntry{
			Timestamp: ts,
			AccountID: rec.User,
			Role:      domain.Role(rec.Role),
			Action:    rec.Action,
			Details:   rec.Details,
		})
	}
	return entries, nil
}
