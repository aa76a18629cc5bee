package domain

import "time"

// Audit action names.
const (
	AuditLogin            = "login"
	AuditLogout           = "logout"
	AuditSessionTimeout   = "session_timeout"
	AuditAddTransaction   = "add_transaction"
	AuditReconcileBalance = "reconcile_balance"
	AuditAddReminder      = "add_reminder"
	AuditUpdateBudget     = "update_budget"
)

// AuditEntry is one record in the global append-only audit trail.
type AuditEntry struct {
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	AccountID string    `json:"user" bson:"user"`
	Role      Role      `json:"role" bson:"role"`
	Action    string    `json:"action" bson:"action"`
	Details   string    `json:"details" bson:"details"`
}
