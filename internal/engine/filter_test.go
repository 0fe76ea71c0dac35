package engine

import (
	"errors"
	"testing"

	"github.com/blade-dss/blade/internal/store"
)

func alt(name string, attrs map[string]interface{}) *store.Alternative {
	return &store.Alternative{Name: name, Attributes: attrs}
}

func numericCriterion(name string, dir store.Direction, req store.Requirement) Criterion {
	return Criterion{
		Definition:  store.AttributeDefinition{Name: name, DefaultDirection: dir, Datatype: store.DatatypeNumeric},
		Requirement: req,
		Direction:   dir,
	}
}

func TestFilterPartitionCompleteness(t *testing.T) {
	alts := []*store.Alternative{
		alt("a", map[string]interface{}{"tps": 10.0}),
		alt("b", map[string]interface{}{"tps": 3.0}),
		alt("c", map[string]interface{}{"tps": 7.0}),
		alt("d", map[string]interface{}{"tps": 1.0}),
	}
	criteria := []Criterion{
		numericCriterion("tps", store.DirectionCost, store.Requirement{Active: true, Threshold: 5}),
	}

	considered, disqualified, err := Filter(alts, criteria, nil)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}

	if len(considered)+len(disqualified) != len(alts) {
		t.Errorf("partition does not cover input: %d + %d != %d",
			len(considered), len(disqualified), len(alts))
	}

	seen := map[string]int{}
	for _, a := range considered {
		seen[a.Name]++
	}
	for _, a := range disqualified {
		seen[a.Name]++
	}
	for _, a := range alts {
		if seen[a.Name] != 1 {
			t.Errorf("alternative %s appears %d times across partitions", a.Name, seen[a.Name])
		}
	}
}

func TestFilterCostDirection(t *testing.T) {
	// Scenario: active requirement with threshold 5 on a cost attribute;
	// the value below the threshold is eliminated.
	alts := []*store.Alternative{
		alt("low", map[string]interface{}{"latency": 3.0}),
		alt("high", map[string]interface{}{"latency": 7.0}),
	}
	criteria := []Criterion{
		numericCriterion("latency", store.DirectionCost, store.Requirement{Active: true, Threshold: 5}),
	}

	considered, disqualified, err := Filter(alts, criteria, nil)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(considered) != 1 || considered[0].Name != "high" {
		t.Errorf("expected only 'high' considered, got %v", alternativeNames(considered))
	}
	if len(disqualified) != 1 || disqualified[0].Name != "low" {
		t.Errorf("expected only 'low' disqualified, got %v", alternativeNames(disqualified))
	}
}

func TestFilterBenefitDirection(t *testing.T) {
	alts := []*store.Alternative{
		alt("a", map[string]interface{}{"fee": 2.0}),
		alt("b", map[string]interface{}{"fee": 9.0}),
	}
	criteria := []Criterion{
		numericCriterion("fee", store.DirectionBenefit, store.Requirement{Active: true, Threshold: 5}),
	}

	considered, disqualified, err := Filter(alts, criteria, nil)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(considered) != 1 || considered[0].Name != "a" {
		t.Errorf("expected 'a' considered, got %v", alternativeNames(considered))
	}
	if len(disqualified) != 1 || disqualified[0].Name != "b" {
		t.Errorf("expected 'b' disqualified, got %v", alternativeNames(disqualified))
	}
}

func TestFilterInactiveRequirementsIgnored(t *testing.T) {
	// Inactive requirements never touch values, even absent ones.
	alts := []*store.Alternative{
		alt("sparse", map[string]interface{}{}),
	}
	criteria := []Criterion{
		numericCriterion("tps", store.DirectionCost, store.Requirement{Active: false, Threshold: 100}),
	}

	considered, _, err := Filter(alts, criteria, nil)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(considered) != 1 {
		t.Errorf("expected sparse alternative to survive, got %d considered", len(considered))
	}
}

func TestFilterShortCircuits(t *testing.T) {
	// The alternative fails the first active requirement; the second
	// attribute is missing but must never be evaluated.
	alts := []*store.Alternative{
		alt("fails-first", map[string]interface{}{"tps": 1.0}),
	}
	criteria := []Criterion{
		numericCriterion("tps", store.DirectionCost, store.Requirement{Active: true, Threshold: 5}),
		numericCriterion("absent", store.DirectionCost, store.Requirement{Active: true, Threshold: 1}),
	}

	considered, disqualified, err := Filter(alts, criteria, nil)
	if err != nil {
		t.Fatalf("expected short-circuit before missing attribute, got error: %v", err)
	}
	if len(considered) != 0 || len(disqualified) != 1 {
		t.Errorf("expected 0 considered / 1 disqualified, got %d / %d",
			len(considered), len(disqualified))
	}
}

func TestFilterMissingAttribute(t *testing.T) {
	alts := []*store.Alternative{
		alt("incomplete", map[string]interface{}{}),
	}
	criteria := []Criterion{
		numericCriterion("tps", store.DirectionCost, store.Requirement{Active: true, Threshold: 5}),
	}

	_, _, err := Filter(alts, criteria, nil)
	var missing *MissingAttributeError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingAttributeError, got %v", err)
	}
	if missing.Alternative != "incomplete" || missing.Attribute != "tps" {
		t.Errorf("unexpected error detail: %+v", missing)
	}
}

func TestFilterCategoricalResolution(t *testing.T) {
	lookup := store.CategoricalLookup{"High": 3, "Low": 1}
	alts := []*store.Alternative{
		alt("a", map[string]interface{}{"security": "High"}),
		alt("b", map[string]interface{}{"security": "Low"}),
	}
	criteria := []Criterion{
		numericCriterion("security", store.DirectionCost, store.Requirement{Active: true, Threshold: 2}),
	}

	considered, disqualified, err := Filter(alts, criteria, lookup)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(considered) != 1 || considered[0].Name != "a" {
		t.Errorf("expected 'a' considered, got %v", alternativeNames(considered))
	}
	if len(disqualified) != 1 || disqualified[0].Name != "b" {
		t.Errorf("expected 'b' disqualified, got %v", alternativeNames(disqualified))
	}
}

func TestFilterMonotonicity(t *testing.T) {
	// Tightening a cost-attribute threshold can only shrink the considered
	// set, never grow it.
	alts := []*store.Alternative{
		alt("a", map[string]interface{}{"tps": 2.0}),
		alt("b", map[string]interface{}{"tps": 5.0}),
		alt("c", map[string]interface{}{"tps": 9.0}),
	}

	prev := len(alts) + 1
	for _, threshold := range []float64{0, 3, 6, 10} {
		criteria := []Criterion{
			numericCriterion("tps", store.DirectionCost, store.Requirement{Active: true, Threshold: threshold}),
		}
		considered, _, err := Filter(alts, criteria, nil)
		if err != nil {
			t.Fatalf("Filter failed at threshold %f: %v", threshold, err)
		}
		if len(considered) > prev {
			t.Errorf("considered set grew from %d to %d when tightening threshold to %f",
				prev, len(considered), threshold)
		}
		prev = len(considered)
	}
}

func TestFilterPreservesInputOrder(t *testing.T) {
	alts := []*store.Alternative{
		alt("z", map[string]interface{}{"tps": 9.0}),
		alt("m", map[string]interface{}{"tps": 1.0}),
		alt("a", map[string]interface{}{"tps": 8.0}),
	}
	criteria := []Criterion{
		numericCriterion("tps", store.DirectionCost, store.Requirement{Active: true, Threshold: 5}),
	}

	considered, _, err := Filter(alts, criteria, nil)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	names := alternativeNames(considered)
	if len(names) != 2 || names[0] != "z" || names[1] != "a" {
		t.Errorf("expected input order [z a], got %v", names)
	}
}
