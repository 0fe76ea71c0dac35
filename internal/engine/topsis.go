package engine

import (
	"fmt"
	"math"

	"github.com/blade-dss/blade/internal/store"
)

// Rank scores an m×n decision matrix with TOPSIS and returns the closeness
// score per row plus the index of the best row. It is a pure function: same
// inputs, same outputs, no retained state.
//
// Weights are applied raw, not normalized to sum 1. That distorts absolute
// distances but not the rank order as long as the weights share a scale.
//
// Two guarded degeneracies:
//   - a column whose Euclidean norm is zero normalizes to all zeros and
//     contributes no discrimination;
//   - a row equidistant from ideal and anti-ideal with D+ + D- == 0 (all
//     rows identical on every column) scores 0.5.
//
// Ties on the top score resolve to the lowest row index.
func Rank(matrix [][]float64, weights []float64, directions []store.Direction) ([]float64, int, error) {
	m := len(matrix)
	if m == 0 {
		return nil, 0, fmt.Errorf("topsis: empty matrix")
	}
	n := len(matrix[0])
	if n == 0 {
		return nil, 0, fmt.Errorf("topsis: matrix has no columns")
	}
	if len(weights) != n || len(directions) != n {
		return nil, 0, fmt.Errorf("topsis: %d columns but %d weights and %d directions",
			n, len(weights), len(directions))
	}
	for i := range matrix {
		if len(matrix[i]) != n {
			return nil, 0, fmt.Errorf("topsis: ragged matrix at row %d", i)
		}
	}

	// Column-wise vector normalization, then weighting.
	norms := make([]float64, n)
	for j := 0; j < n; j++ {
		var ss float64
		for i := 0; i < m; i++ {
			ss += matrix[i][j] * matrix[i][j]
		}
		norms[j] = math.Sqrt(ss)
	}

	weighted := make([][]float64, m)
	for i := 0; i < m; i++ {
		weighted[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if norms[j] == 0 {
				continue
			}
			weighted[i][j] = matrix[i][j] / norms[j] * weights[j]
		}
	}

	// Ideal and anti-ideal points over the weighted matrix.
	ideal := make([]float64, n)
	antiIdeal := make([]float64, n)
	for j := 0; j < n; j++ {
		lo, hi := weighted[0][j], weighted[0][j]
		for i := 1; i < m; i++ {
			lo = math.Min(lo, weighted[i][j])
			hi = math.Max(hi, weighted[i][j])
		}
		if directions[j] == store.DirectionCost {
			ideal[j], antiIdeal[j] = lo, hi
		} else {
			ideal[j], antiIdeal[j] = hi, lo
		}
	}

	// Closeness to the ideal.
	scores := make([]float64, m)
	optimum := 0
	for i := 0; i < m; i++ {
		var dPlus, dMinus float64
		for j := 0; j < n; j++ {
			dPlus += (weighted[i][j] - ideal[j]) * (weighted[i][j] - ideal[j])
			dMinus += (weighted[i][j] - antiIdeal[j]) * (weighted[i][j] - antiIdeal[j])
		}
		dPlus = math.Sqrt(dPlus)
		dMinus = math.Sqrt(dMinus)

		if dPlus+dMinus == 0 {
			scores[i] = 0.5
		} else {
			scores[i] = dMinus / (dPlus + dMinus)
		}

		if scores[i] > scores[optimum] {
			optimum = i
		}
	}

	return scores, optimum, nil
}
