package engine

import "github.com/blade-dss/blade/internal/store"

// Filter partitions the alternatives into those that satisfy every active
// requirement and those that fail at least one. Input order is preserved
// within each partition and every alternative lands in exactly one of them.
//
// For a cost attribute an active requirement disqualifies values below the
// threshold; for a benefit attribute, values above it. Evaluation
// short-circuits on the first failing requirement, so later attributes of a
// disqualified alternative are never resolved.
func Filter(alts []*store.Alternative, criteria []Criterion, lookup store.CategoricalLookup) (considered, disqualified []*store.Alternative, err error) {
	considered = []*store.Alternative{}
	disqualified = []*store.Alternative{}

	for _, alt := range alts {
		qualified := true

		for _, c := range criteria {
			if !c.Requirement.Active {
				continue
			}
			raw, ok := alt.Attributes[c.Definition.Name]
			if !ok {
				return nil, nil, &MissingAttributeError{Alternative: alt.Name, Attribute: c.Definition.Name}
			}
			v, rerr := resolveValue(lookup, alt.Name, c.Definition.Name, raw)
			if rerr != nil {
				return nil, nil, rerr
			}

			if c.Direction == store.DirectionCost {
				if v < c.Requirement.Threshold {
					qualified = false
					break
				}
			} else {
				if v > c.Requirement.Threshold {
					qualified = false
					break
				}
			}
		}

		if qualified {
			considered = append(considered, alt)
		} else {
			disqualified = append(disqualified, alt)
		}
	}

	return considered, disqualified, nil
}
