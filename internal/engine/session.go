package engine

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/blade-dss/blade/internal/store"
)

// Criterion bundles everything the engine knows about one attribute: its
// definition, the user's requirement and weight, and the effective preference
// direction. Keeping these in a single ordered record makes index
// misalignment between the four impossible.
type Criterion struct {
	Definition  store.AttributeDefinition `json:"definition"`
	Requirement store.Requirement         `json:"requirement"`
	Weight      float64                   `json:"weight"`
	Direction   store.Direction           `json:"direction"`
}

// Catalog supplies the attribute metadata and alternatives a session needs.
type Catalog interface {
	GetAttributeDefinitions(ctx context.Context) ([]store.AttributeDefinition, error)
	GetCategoricalLookup(ctx context.Context) (store.CategoricalLookup, error)
	GetAlternatives(ctx context.Context) ([]*store.Alternative, error)
}

// Session is an independently-owned snapshot of everything one solve needs.
// Sessions never share state; the catalog handle is not retained past load.
type Session struct {
	Criteria     []Criterion
	Alternatives []*store.Alternative
	Lookup       store.CategoricalLookup
}

// LoadSession pulls one catalog snapshot and binds the user's weights and
// requirements to it. Weights and requirements must match the attribute list
// length; the catalog's position order is the criterion order for the
// session's lifetime.
func LoadSession(ctx context.Context, cat Catalog, weights []float64, reqs []store.Requirement) (*Session, error) {
	defs, err := cat.GetAttributeDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load attribute definitions: %w", err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("catalog has no attribute definitions")
	}
	if len(weights) != len(defs) || len(reqs) != len(defs) {
		return nil, fmt.Errorf("expected %d weights and requirements, got %d weights and %d requirements",
			len(defs), len(weights), len(reqs))
	}

	lookup, err := cat.GetCategoricalLookup(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categorical lookup: %w", err)
	}
	alts, err := cat.GetAlternatives(ctx)
	if err != nil {
		return nil, fmt.Errorf("load alternatives: %w", err)
	}

	criteria := make([]Criterion, len(defs))
	for i, def := range defs {
		criteria[i] = Criterion{
			Definition:  def,
			Requirement: reqs[i],
			Weight:      weights[i],
			Direction:   effectiveDirection(def, reqs[i]),
		}
	}

	return &Session{
		Criteria:     criteria,
		Alternatives: alts,
		Lookup:       lookup,
	}, nil
}

// effectiveDirection overlays the requirement onto the catalog default. For
// boolean attributes the requirement threshold doubles as the direction
// (nonzero means the user wants the flag set, so higher is better). This
// applies whether or not the requirement is active, matching how the
// threshold is declared alongside the preference.
func effectiveDirection(def store.AttributeDefinition, req store.Requirement) store.Direction {
	if def.Datatype == store.DatatypeBoolean {
		if req.Threshold != 0 {
			return store.DirectionBenefit
		}
		return store.DirectionCost
	}
	return def.DefaultDirection
}

// WeightMagnitude is the L1 magnitude of the weight vector. Ranking is only
// meaningful when it is nonzero.
func (s *Session) WeightMagnitude() float64 {
	var sum float64
	for _, c := range s.Criteria {
		sum += math.Abs(c.Weight)
	}
	return sum
}

func (s *Session) Weights() []float64 {
	ws := make([]float64, len(s.Criteria))
	for i, c := range s.Criteria {
		ws[i] = c.Weight
	}
	return ws
}

func (s *Session) Directions() []store.Direction {
	ds := make([]store.Direction, len(s.Criteria))
	for i, c := range s.Criteria {
		ds[i] = c.Direction
	}
	return ds
}

// resolveValue coerces a raw attribute value to a number. Numbers and
// booleans pass through; strings go through the categorical lookup, falling
// back to a numeric parse so numeric literals stored as text survive.
func resolveValue(lookup store.CategoricalLookup, altName, attrName string, raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		if n, ok := lookup[v]; ok {
			return n, nil
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, nil
		}
	}
	return 0, &UnresolvableValueError{Alternative: altName, Attribute: attrName, Value: raw}
}
