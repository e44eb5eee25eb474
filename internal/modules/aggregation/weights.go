package aggregation

import (
	"math"

	"github.com/aristath/fundfolio/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// Allocation is a selected fund with its weight rescaled so that all
// allocations of a portfolio sum to 1.
type Allocation struct {
	Fund   domain.SelectedFund
	Weight float64
}

// NormalizeWeights divides every raw weight by the total. Input order is
// preserved. Weights are scaled by the largest one before summing so that
// any positive finite scale is accepted without overflowing the total.
func NormalizeWeights(selected []domain.SelectedFund) ([]Allocation, error) {
	if len(selected) == 0 {
		return nil, domain.InvalidPortfolio("no funds selected")
	}

	raw := make([]float64, len(selected))
	for i, sf := range selected {
		if math.IsNaN(sf.Weight) || math.IsInf(sf.Weight, 0) || sf.Weight <= 0 {
			return nil, domain.InvalidPortfolio("fund %q has non-positive weight %v", sf.Name, sf.Weight)
		}
		raw[i] = sf.Weight
	}

	// Every scaled weight is in [0, 1] and the largest is exactly 1, so the
	// total lies in [1, n].
	largest := floats.Max(raw)
	for i := range raw {
		raw[i] /= largest
	}
	total := floats.Sum(raw)

	allocations := make([]Allocation, len(selected))
	for i, sf := range selected {
		allocations[i] = Allocation{Fund: sf, Weight: raw[i] / total}
	}
	return allocations, nil
}
