package engine

import (
	"fmt"
	"log/slog"
)

// Solver runs the two-stage decision process: eliminate alternatives that
// fail hard constraints, then rank the survivors with TOPSIS when ranking is
// meaningful. A Solver holds no per-solve state; each Solve is a pure
// function of its session.
type Solver struct {
	logger *slog.Logger
}

func NewSolver(logger *slog.Logger) *Solver {
	return &Solver{logger: logger}
}

// Solve executes filter → rank to completion, synchronously. Any panic
// inside the pipeline is recovered here and surfaced as a faulted result so
// a mid-ranking failure can never leak a corrupted partial result.
func (s *Solver) Solve(sess *Session) (res *SessionResult) {
	defer func() {
		if p := recover(); p != nil {
			// The panic may come from any pipeline stage, not just ranking.
			fault := &ComputationFault{Stage: "solve", Cause: fmt.Errorf("panic: %v", p)}
			s.logger.Error("solve faulted", "error", fault)
			res = &SessionResult{Outcome: OutcomeFaulted, Err: fault}
		}
	}()

	considered, disqualified, err := Filter(sess.Alternatives, sess.Criteria, sess.Lookup)
	if err != nil {
		s.logger.Error("filter faulted", "error", err)
		return &SessionResult{Outcome: OutcomeFaulted, Err: err}
	}

	res = &SessionResult{
		Considered:   considered,
		Disqualified: disqualified,
	}

	switch {
	case len(considered) == 0:
		res.Outcome = OutcomeNoCompatible

	case len(considered) == 1:
		res.Outcome = OutcomeSingle

	case sess.WeightMagnitude() == 0:
		// Ranking is undefined with a zero-magnitude weight vector; report
		// the filter result only.
		res.Outcome = OutcomeUnranked

	default:
		matrix, err := BuildValueMatrix(considered, sess.Criteria, sess.Lookup)
		if err != nil {
			s.logger.Error("matrix build faulted", "error", err)
			return &SessionResult{Outcome: OutcomeFaulted, Err: err}
		}

		scores, optimum, err := Rank(matrix, sess.Weights(), sess.Directions())
		if err != nil {
			fault := &ComputationFault{Stage: "rank", Cause: err}
			s.logger.Error("rank faulted", "error", fault)
			return &SessionResult{Outcome: OutcomeFaulted, Err: fault}
		}

		res.Scores = scores
		res.OptimumIndex = &optimum
		res.Outcome = OutcomeRanked
	}

	s.logger.Info("solve finished",
		"outcome", res.Outcome,
		"considered", len(considered),
		"disqualified", len(disqualified),
	)
	return res
}
