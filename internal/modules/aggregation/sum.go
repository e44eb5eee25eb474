package aggregation

import (
	"fmt"
	"sort"

	"github.com/aristath/fundfolio/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SumBuilder accumulates a weighted average per metric. Funds that do not
// report a metric must not call Add for it; they are left out of that
// metric's average instead of counting as zero.
type SumBuilder struct {
	values  map[domain.Metric][]float64
	weights map[domain.Metric][]float64
}

// NewSumBuilder returns an empty builder.
func NewSumBuilder() *SumBuilder {
	return &SumBuilder{
		values:  make(map[domain.Metric][]float64),
		weights: make(map[domain.Metric][]float64),
	}
}

// Add records value with the given weight for metric m.
func (b *SumBuilder) Add(m domain.Metric, value, weight float64) {
	b.values[m] = append(b.values[m], value)
	b.weights[m] = append(b.weights[m], weight)
}

// Build computes the weighted average of every metric. A metric whose
// weights sum to zero is a caller bug and fails the build.
func (b *SumBuilder) Build() (*Sum, error) {
	averages := make(map[domain.Metric]float64, len(b.values))
	for m, values := range b.values {
		weights := b.weights[m]
		if floats.Sum(weights) == 0 {
			return nil, fmt.Errorf("%w: metric %s", domain.ErrZeroWeight, m)
		}
		averages[m] = stat.Mean(values, weights)
	}
	return &Sum{averages: averages}, nil
}

// Sum is a compiled, read-only set of weighted averages.
type Sum struct {
	averages map[domain.Metric]float64
}

// Get returns the average for m, or 0 when no fund reported it.
func (s *Sum) Get(m domain.Metric) float64 {
	return s.averages[m]
}

// Has reports whether any fund reported m.
func (s *Sum) Has(m domain.Metric) bool {
	_, ok := s.averages[m]
	return ok
}

// Lookup returns the average for m and whether any fund reported it.
func (s *Sum) Lookup(m domain.Metric) (float64, bool) {
	v, ok := s.averages[m]
	return v, ok
}

// Metrics returns the reported metrics in canonical order.
func (s *Sum) Metrics() []domain.Metric {
	out := make([]domain.Metric, 0, len(s.averages))
	for m := range s.averages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
