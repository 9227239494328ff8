package service

import (
	"github.com/kanbanhq/board-api/internal/api/metrics"
	"github.com/kanbanhq/board-api/internal/core/policy"
)

// authorize runs a single policy decision against a fresh snapshot, records
// the decision metrics, and converts a denial into the error taxonomy. The
// engine itself stays pure; observation happens here, on the enforcement
// side.
func authorize(req policy.Request, snap policy.Snapshot) error {
	v := policy.Decide(req, snap)

	verdict := "allow"
	if !v.Allowed {
		verdict = "deny"
		metrics.PolicyDenialsTotal.WithLabelValues(string(v.Reason)).Inc()
	}
	metrics.PolicyDecisionsTotal.WithLabelValues(string(req.Action), verdict).Inc()

	return v.Err()
}
