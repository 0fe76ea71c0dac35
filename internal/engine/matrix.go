package engine

import "github.com/blade-dss/blade/internal/store"

// BuildValueMatrix converts the considered alternatives into a dense numeric
// decision matrix: one row per alternative in partition order, one column per
// criterion in catalog order. A missing attribute key is a
// MissingAttributeError, never a silent default.
func BuildValueMatrix(considered []*store.Alternative, criteria []Criterion, lookup store.CategoricalLookup) ([][]float64, error) {
	matrix := make([][]float64, len(considered))

	for i, alt := range considered {
		row := make([]float64, len(criteria))
		for j, c := range criteria {
			raw, ok := alt.Attributes[c.Definition.Name]
			if !ok {
				return nil, &MissingAttributeError{Alternative: alt.Name, Attribute: c.Definition.Name}
			}
			v, err := resolveValue(lookup, alt.Name, c.Definition.Name, raw)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		matrix[i] = row
	}

	return matrix, nil
}
