// Package metrics defines and registers all custom Prometheus metrics for the
// account dashboard. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsExpiredTotal counts sessions forced back to anonymous by the idle
// timeout.
var SessionsExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_expired_total",
		Help:      "Total number of sessions expired by the idle timeout.",
	},
)

// TransactionsRecordedTotal counts successfully recorded transactions.
// Labels:
//   - type: "Cash In" or "Cash Out"
//   - category: transaction category
var TransactionsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_recorded_total",
		Help:      "Total number of transactions recorded, by type and category.",
	},
	[]string{"type", "category"},
)

// TransactionsRejectedTotal counts rejected transaction drafts.
// Label:
//   - reason: "negative_amount", "insufficient_funds", "malformed_field" or "forbidden"
var TransactionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_rejected_total",
		Help:      "Total number of rejected transaction drafts, by reason.",
	},
	[]string{"reason"},
)

// AuditAppendErrorsTotal counts audit-trail writes that failed. Audit is
// best-effort, so these never fail the triggering operation.
var AuditAppendErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_append_errors_total",
		Help:      "Total number of failed audit log appends.",
	},
)
