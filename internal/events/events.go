package events

// DecisionCompletedEvent is published after a non-faulted solve finishes and
// its record is stored.
type DecisionCompletedEvent struct {
	DecisionID   string    `json:"decision_id"`
	Outcome      string    `json:"outcome"`
	Considered   int       `json:"considered"`
	Disqualified int       `json:"disqualified"`
	OptimumName  string    `json:"optimum_name,omitempty"`
	Scores       []float64 `json:"scores,omitempty"`
}

// DecisionFaultedEvent carries the failure reason for a faulted solve.
type DecisionFaultedEvent struct {
	DecisionID string `json:"decision_id"`
	Error      string `json:"error"`
}

// CatalogUpdatedEvent notifies consumers that an attribute, lookup entry, or
// alternative changed.
type CatalogUpdatedEvent struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}
