package store

import (
	"testing"
)

func TestDirectionAndDatatypeValues(t *testing.T) {
	if DirectionBenefit != "benefit" || DirectionCost != "cost" {
		t.Error("direction constants changed; persisted rows depend on these strings")
	}
	datatypes := []Datatype{DatatypeNumeric, DatatypeBoolean, DatatypeCategorical}
	expected := []string{"numeric", "boolean", "categorical"}
	for i, d := range datatypes {
		if string(d) != expected[i] {
			t.Errorf("expected %s, got %s", expected[i], d)
		}
	}
}

func TestDecisionOutcomeValues(t *testing.T) {
	outcomes := []DecisionOutcome{
		OutcomeNoCompatible, OutcomeSingle, OutcomeUnranked, OutcomeRanked, OutcomeFaulted,
	}
	expected := []string{"no_compatible", "single", "unranked", "ranked", "faulted"}
	for i, o := range outcomes {
		if string(o) != expected[i] {
			t.Errorf("expected %s, got %s", expected[i], o)
		}
	}
}

func TestDecisionFilterDefaults(t *testing.T) {
	f := DecisionFilter{}
	if f.Limit != 0 {
		t.Errorf("expected 0 default limit, got %d", f.Limit)
	}
	if f.Outcome != nil {
		t.Error("expected nil outcome filter")
	}
}
