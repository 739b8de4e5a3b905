// Package metrics defines and registers all custom Prometheus metrics for the
// gym admin console. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gymadmin"

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreOperationsTotal counts resource-store operations by outcome.
// Labels:
//   - resource: "users", "memberships", "schedules", "exercises"
//   - operation: "fetch_all", "fetch_one", "create", "update", "delete"
//   - outcome: "success", "failure", "superseded"
var StoreOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_operations_total",
		Help:      "Total number of resource store operations, by outcome.",
	},
	[]string{"resource", "operation", "outcome"},
)

// StoreOperationDuration measures one store operation end-to-end, including
// the follow-up refetch inside update.
var StoreOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_operation_duration_seconds",
		Help:      "Duration of resource store operations, network round trips included.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource", "operation"},
)

// ── Guard metrics ─────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts admission decisions on protected routes.
// Label:
//   - decision: "granted", "login_redirect", "unauthorized_redirect"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard admission decisions.",
	},
	[]string{"decision"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts console sign-in attempts.
// Label:
//   - outcome: "success", "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of console login attempts, by outcome.",
	},
	[]string{"outcome"},
)
