package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Direction says which way an attribute is preferred.
type Direction string

const (
	DirectionBenefit Direction = "benefit" // higher raw value is better
	DirectionCost    Direction = "cost"    // lower raw value is better
)

// Datatype classifies an attribute's raw values.
type Datatype string

const (
	DatatypeNumeric     Datatype = "numeric"
	DatatypeBoolean     Datatype = "boolean"
	DatatypeCategorical Datatype = "categorical"
)

// AttributeDefinition describes one decision criterion. Definitions are
// loaded once per session in position order; that order fixes the criterion
// order for the whole session.
type AttributeDefinition struct {
	Name             string    `json:"name"`
	DefaultDirection Direction `json:"default_direction"`
	Datatype         Datatype  `json:"datatype"`
	Position         int       `json:"position"`
}

// CategoricalLookup maps display labels to their numeric equivalents.
// Labels not present in the table are not an error at this layer; the
// engine decides how unmatched values resolve.
type CategoricalLookup map[string]float64

// Requirement is a user hard constraint on one attribute. Active=false means
// no constraint. For boolean-typed attributes the threshold doubles as the
// effective direction for ranking (nonzero=benefit, zero=cost).
type Requirement struct {
	Active    bool    `json:"active"`
	Threshold float64 `json:"threshold"`
}

// Alternative is one candidate under consideration. Attributes holds the raw
// per-criterion values (numeric, boolean, or categorical label); Info holds
// descriptive fields that never enter the computation.
type Alternative struct {
	ID         uuid.UUID              `json:"id"`
	Name       string                 `json:"name"`
	Attributes map[string]interface{} `json:"attributes"`
	Info       map[string]interface{} `json:"info,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// DecisionOutcome is the persisted form of an engine outcome.
type DecisionOutcome string

const (
	OutcomeNoCompatible DecisionOutcome = "no_compatible"
	OutcomeSingle       DecisionOutcome = "single"
	OutcomeUnranked     DecisionOutcome = "unranked"
	OutcomeRanked       DecisionOutcome = "ranked"
	OutcomeFaulted      DecisionOutcome = "faulted"
)

// DecisionRecord stores a finished solve: the inputs the user supplied, the
// effective directions the session derived, and the outcome. Only finalized
// results are stored, never mid-computation state.
type DecisionRecord struct {
	ID           uuid.UUID       `json:"id"`
	Weights      []float64       `json:"weights"`
	Requirements []Requirement   `json:"requirements"`
	Directions   []Direction     `json:"directions"`
	Outcome      DecisionOutcome `json:"outcome"`
	Considered   []string        `json:"considered"`
	Disqualified []string        `json:"disqualified"`
	Scores       []float64       `json:"scores,omitempty"`
	OptimumName  string          `json:"optimum_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type DecisionFilter struct {
	Outcome *DecisionOutcome
	Limit   int
	Offset  int
}

type Store interface {
	// Catalog reads (one snapshot per session)
	GetAttributeDefinitions(ctx context.Context) ([]AttributeDefinition, error)
	GetCategoricalLookup(ctx context.Context) (CategoricalLookup, error)
	GetAlternatives(ctx context.Context) ([]*Alternative, error)

	// Catalog writes (admin / seeding)
	CreateAttributeDefinition(ctx context.Context, def *AttributeDefinition) error
	CreateAlternative(ctx context.Context, alt *Alternative) error
	UpsertLookupEntry(ctx context.Context, label string, value float64) error

	// Decisions
	SaveDecision(ctx context.Context, rec *DecisionRecord) error
	GetDecision(ctx context.Context, id uuid.UUID) (*DecisionRecord, error)
	ListDecisions(ctx context.Context, filter DecisionFilter) ([]*DecisionRecord, error)

	Close() error
}
