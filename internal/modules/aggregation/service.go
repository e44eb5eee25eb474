// Package aggregation combines weighted fund records into portfolio-level
// statistics.
package aggregation

import (
	"context"
	"fmt"
	"math"

	"github.com/aristath/fundfolio/internal/domain"
	"github.com/aristath/fundfolio/internal/modules/funds"
	"github.com/aristath/fundfolio/internal/modules/geography"
	"github.com/aristath/fundfolio/internal/utils"
	"github.com/rs/zerolog"
)

// percentageTolerance is how far PercentageSum may drift from 100 before
// it is logged.
const percentageTolerance = 1e-6

// Options tune portfolio aggregation.
type Options struct {
	// DomesticRegion scales the domestic company-size buckets.
	DomesticRegion geography.Region
	// IncludeCompanySize enables company-size buckets for funds that carry them.
	IncludeCompanySize bool
}

// DefaultOptions returns Sweden as domestic region with company sizes enabled.
func DefaultOptions() Options {
	return Options{
		DomesticRegion:     geography.RegionSweden,
		IncludeCompanySize: true,
	}
}

// Service aggregates portfolios.
type Service struct {
	lookup   domain.FundLookup
	resolver geography.Resolver
	opts     Options
	log      zerolog.Logger
}

// NewService creates a new aggregation service
func NewService(lookup domain.FundLookup, resolver geography.Resolver, opts Options, log zerolog.Logger) *Service {
	if opts.DomesticRegion == "" {
		opts.DomesticRegion = geography.RegionSweden
	}
	return &Service{
		lookup:   lookup,
		resolver: resolver,
		opts:     opts,
		log:      log.With().Str("service", "aggregation").Logger(),
	}
}

// Options returns the options the service was created with.
func (s *Service) Options() Options {
	return s.opts
}

// Aggregate builds the snapshot of one portfolio. Any error aborts the whole
// aggregation and no snapshot is returned.
func (s *Service) Aggregate(ctx context.Context, name string, selected []domain.SelectedFund) (*Snapshot, error) {
	defer utils.OperationTimer("aggregate_portfolio", s.log)()

	allocations, err := NormalizeWeights(selected)
	if err != nil {
		return nil, err
	}

	weighted := make([]WeightedFund, 0, len(allocations))
	for _, a := range allocations {
		record, err := s.lookup.LookupFund(ctx, a.Fund.Name, a.Fund.Aliases)
		if err != nil {
			return nil, fmt.Errorf("portfolio %q: %w", name, err)
		}
		fund, err := funds.Compile(record, s.resolver)
		if err != nil {
			return nil, fmt.Errorf("portfolio %q: %w", name, err)
		}
		sel := a.Fund
		sel.Aliases = append([]string(nil), sel.Aliases...)
		weighted = append(weighted, WeightedFund{Selected: sel, Fund: fund, Weight: a.Weight})
	}

	snap, err := s.accumulate(name, weighted)
	if err != nil {
		return nil, fmt.Errorf("portfolio %q: %w", name, err)
	}

	if math.Abs(snap.percentageSum-100) > percentageTolerance {
		s.log.Warn().
			Str("portfolio", name).
			Float64("percentage_sum", snap.percentageSum).
			Msg("Normalized weights do not sum to 100%")
	}

	s.log.Info().
		Str("portfolio", name).
		Int("funds", snap.FundCount()).
		Float64("avg_fee", snap.avgFee).
		Float64("avg_risk", snap.avgRisk).
		Msg("Aggregated portfolio")

	return snap, nil
}

// accumulate makes the single pass over the weighted funds.
func (s *Service) accumulate(name string, weighted []WeightedFund) (*Snapshot, error) {
	snap := &Snapshot{name: name, funds: weighted}

	metrics := NewSumBuilder()
	countries := NewValuesBuilder()
	regions := NewValuesBuilder()
	sectors := NewValuesBuilder()
	companySizes := NewValuesBuilder()

	for _, wf := range weighted {
		w := wf.Weight
		record := wf.Fund.Record()

		s.log.Debug().
			Str("portfolio", name).
			Str("fund", record.Name).
			Float64("weight", w).
			Msg("Accumulating fund")

		snap.percentageSum += w * 100
		snap.avgFee += record.ProductFee * w
		snap.avgRisk += float64(record.Risk) * w

		// A weight that underflowed to zero carries no share of any average.
		if w > 0 {
			if record.SharpeRatio != nil {
				metrics.Add(domain.MetricSharpe, *record.SharpeRatio, w)
			}
			for _, window := range domain.Windows() {
				if v, ok := wf.Fund.Development(window); ok {
					metrics.Add(window.Metric(), v, w)
				}
			}
		}

		for _, c := range wf.Fund.Countries() {
			countries.Add(c.Country.Name(), c.Value*w)
		}
		for _, r := range wf.Fund.Regions() {
			regions.Add(string(r.Region), r.Value*w)
		}
		for _, e := range record.Sectors {
			sectors.Add(e.Name, e.Value*w)
		}

		if s.opts.IncludeCompanySize && record.CompanySize != nil {
			domestic := wf.Fund.Region(s.opts.DomesticRegion) / 100
			for _, size := range domain.CompanySizes() {
				companySizes.Add(size.String(), record.CompanySize.Get(size)*w)
			}
			for _, size := range domain.CompanySizes() {
				companySizes.Add(size.DomesticKey(), record.CompanySize.Get(size)*w*domestic)
			}
		}
	}

	sum, err := metrics.Build()
	if err != nil {
		return nil, err
	}

	developments := NewValuesBuilder()
	for _, window := range domain.Windows() {
		if v, ok := sum.Lookup(window.Metric()); ok {
			developments.Add(window.String(), v)
		}
	}

	snap.metrics = sum
	snap.countries = countries.Build(true)
	snap.regions = regions.Build(true)
	snap.sectors = sectors.Build(true)
	snap.companySizes = companySizes.Build(false)
	snap.developments = developments.Build(false)

	return snap, nil
}
