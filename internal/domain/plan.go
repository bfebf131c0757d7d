package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownPlan marks a plan id outside the fixed catalog. Callers must
// never fall back to a default quota.
var ErrUnknownPlan = errors.New("unknown plan id")

// Plan maps a platform plan id to its storage quota.
type Plan struct {
	ID         string `json:"id"`
	QuotaBytes int64  `json:"quota_bytes"`
}

// PlanCatalog is the enumerated plan set, loaded once at process start
// and immutable afterwards.
type PlanCatalog struct {
	plans map[string]Plan
}

func NewPlanCatalog(plans []Plan) *PlanCatalog {
	byID := make(map[string]Plan, len(plans))
	for _, p := range plans {
		byID[p.ID] = p
	}
	return &PlanCatalog{plans: byID}
}

// QuotaFor returns the quota in bytes for an exact plan id match.
func (c *PlanCatalog) QuotaFor(planID string) (int64, error) {
	plan, ok := c.plans[planID]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlan, planID)
	}
	return plan.QuotaBytes, nil
}

// Contains reports whether the plan id is part of the catalog.
func (c *PlanCatalog) Contains(planID string) bool {
	_, ok := c.plans[planID]
	return ok
}
