// Package metrics defines and registers all custom Prometheus metrics for
// the kanban board API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kanban"

// ── Policy metrics ────────────────────────────────────────────────────────────

// PolicyDecisionsTotal counts access-control decisions.
// Labels:
//   - action: the policy action evaluated (e.g. "board.delete")
//   - verdict: "allow" or "deny"
var PolicyDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policy_decisions_total",
		Help:      "Total number of policy decisions, by action and verdict.",
	},
	[]string{"action", "verdict"},
)

// PolicyDenialsTotal counts denied decisions by reason.
// Label:
//   - reason: the deny reason (e.g. "not_board_member", "not_owner")
var PolicyDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policy_denials_total",
		Help:      "Total number of denied policy decisions, by reason.",
	},
	[]string{"reason"},
)

// ── Board stats refresher metrics ─────────────────────────────────────────────

// StatsRefreshTotal counts board-stats refresh attempts.
// Label:
//   - result: "ok" or "error"
var StatsRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_refresh_total",
		Help:      "Total number of board stats refresh runs, by result.",
	},
	[]string{"result"},
)

// StatsQueueDepth tracks the number of refreshes waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var StatsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stats_queue_depth",
		Help:      "Current number of board stats refreshes pending per worker channel.",
	},
	[]string{"worker_id"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// BoardsCreatedTotal counts newly created boards.
var BoardsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "boards_created_total",
		Help:      "Total number of boards created.",
	},
)

// TasksCreatedTotal counts newly created tasks.
// Label:
//   - priority: "low", "medium", or "high"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by priority.",
	},
	[]string{"priority"},
)
