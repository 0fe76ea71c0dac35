package engine

import "github.com/blade-dss/blade/internal/store"

// Outcome is the terminal state of a solve. Every way a solve can end is an
// explicit variant; nothing is inferred from absent fields.
type Outcome string

const (
	// OutcomeNoCompatible: every alternative failed a hard constraint.
	OutcomeNoCompatible Outcome = "no_compatible"
	// OutcomeSingle: exactly one survivor; ranking one candidate is not
	// meaningful, so none runs.
	OutcomeSingle Outcome = "single"
	// OutcomeUnranked: two or more survivors but the weight vector has zero
	// magnitude, so only the filter result is reported.
	OutcomeUnranked Outcome = "unranked"
	// OutcomeRanked: the full filter-then-rank pipeline completed.
	OutcomeRanked Outcome = "ranked"
	// OutcomeFaulted: an unexpected computation error; no partial ranking is
	// carried.
	OutcomeFaulted Outcome = "faulted"
)

// SessionResult is the finalized output of one solve. Scores and
// OptimumIndex are set only for OutcomeRanked; OptimumIndex indexes into
// Considered.
type SessionResult struct {
	Outcome      Outcome              `json:"outcome"`
	Considered   []*store.Alternative `json:"considered"`
	Disqualified []*store.Alternative `json:"disqualified"`
	Scores       []float64            `json:"scores,omitempty"`
	OptimumIndex *int                 `json:"optimum_index,omitempty"`
	Err          error                `json:"-"`
}

// Optimum returns the best-ranked alternative, or nil when no ranking ran.
func (r *SessionResult) Optimum() *store.Alternative {
	if r.OptimumIndex == nil || *r.OptimumIndex >= len(r.Considered) {
		return nil
	}
	return r.Considered[*r.OptimumIndex]
}

// Record assembles the persisted form of the result: user inputs, effective
// directions, and outcome, with alternatives reduced to their names.
func (r *SessionResult) Record(sess *Session) *store.DecisionRecord {
	rec := &store.DecisionRecord{
		Weights:      sess.Weights(),
		Requirements: make([]store.Requirement, len(sess.Criteria)),
		Directions:   sess.Directions(),
		Outcome:      store.DecisionOutcome(r.Outcome),
		Considered:   alternativeNames(r.Considered),
		Disqualified: alternativeNames(r.Disqualified),
		Scores:       r.Scores,
	}
	for i, c := range sess.Criteria {
		rec.Requirements[i] = c.Requirement
	}
	if best := r.Optimum(); best != nil {
		rec.OptimumName = best.Name
	}
	return rec
}

func alternativeNames(alts []*store.Alternative) []string {
	names := make([]string, len(alts))
	for i, a := range alts {
		names[i] = a.Name
	}
	return names
}
