// Package funds turns provider fund records into canonical per-fund rollups
// and provides the fund lookup used by portfolio aggregation.
package funds

import (
	"fmt"
	"sort"

	"github.com/aristath/fundfolio/internal/domain"
	"github.com/aristath/fundfolio/internal/modules/geography"
)

// CountryShare is a fund's exposure to one canonical country, in percent.
type CountryShare struct {
	Country geography.Country
	Value   float64
}

// RegionShare is a fund's exposure to one region, in percent.
type RegionShare struct {
	Region geography.Region
	Value  float64
}

// Fund is a FundRecord with its country exposure resolved and rolled up
// into regions and markets.
type Fund struct {
	record    domain.FundRecord
	countries []CountryShare
	country   map[geography.Country]int
	regions   []RegionShare
	region    map[geography.Region]float64
	market    map[geography.Market]float64
}

// Compile resolves every country entry of the record. An unresolvable label
// fails the whole rollup, since dropping it would understate exposure.
func Compile(record domain.FundRecord, resolver geography.Resolver) (*Fund, error) {
	f := &Fund{
		record:  record.Clone(),
		country: make(map[geography.Country]int),
		region:  make(map[geography.Region]float64),
		market:  make(map[geography.Market]float64),
	}

	var regionOrder []geography.Region
	for _, entry := range record.Countries {
		c, err := resolver.Resolve(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("fund %q: %w", record.Name, err)
		}

		if i, ok := f.country[c]; ok {
			f.countries[i].Value += entry.Value
		} else {
			f.country[c] = len(f.countries)
			f.countries = append(f.countries, CountryShare{Country: c, Value: entry.Value})
		}

		if _, ok := f.region[c.Region()]; !ok {
			regionOrder = append(regionOrder, c.Region())
		}
		f.region[c.Region()] += entry.Value
		f.market[c.Market()] += entry.Value
	}

	f.regions = make([]RegionShare, 0, len(regionOrder))
	for _, r := range regionOrder {
		f.regions = append(f.regions, RegionShare{Region: r, Value: f.region[r]})
	}
	sort.SliceStable(f.regions, func(i, j int) bool {
		return f.regions[i].Value > f.regions[j].Value
	})

	return f, nil
}

// Record returns a copy of the underlying provider record.
func (f *Fund) Record() domain.FundRecord {
	return f.record.Clone()
}

// Name returns the fund name.
func (f *Fund) Name() string {
	return f.record.Name
}

// Countries returns resolved country exposure in first-seen order.
// Duplicate labels for the same country are summed.
func (f *Fund) Countries() []CountryShare {
	out := make([]CountryShare, len(f.countries))
	copy(out, f.countries)
	return out
}

// Regions returns region totals ranked by value, descending. Ties keep the
// order in which the regions were first seen.
func (f *Fund) Regions() []RegionShare {
	out := make([]RegionShare, len(f.regions))
	copy(out, f.regions)
	return out
}

// HasCountry reports whether the fund has any exposure entry for c.
func (f *Fund) HasCountry(c geography.Country) bool {
	_, ok := f.country[c]
	return ok
}

// Country returns the exposure to c, or 0.
func (f *Fund) Country(c geography.Country) float64 {
	if i, ok := f.country[c]; ok {
		return f.countries[i].Value
	}
	return 0
}

// HasRegion reports whether any country of the fund belongs to r.
func (f *Fund) HasRegion(r geography.Region) bool {
	_, ok := f.region[r]
	return ok
}

// Region returns the total exposure to r, or 0.
func (f *Fund) Region(r geography.Region) float64 {
	return f.region[r]
}

// HasMarket reports whether any country of the fund belongs to m.
func (f *Fund) HasMarket(m geography.Market) bool {
	_, ok := f.market[m]
	return ok
}

// Market returns the total exposure to m, or 0.
func (f *Fund) Market(m geography.Market) float64 {
	return f.market[m]
}

// Development returns the fund's return over w, if reported.
func (f *Fund) Development(w domain.Window) (float64, bool) {
	return f.record.Developments.Get(w)
}
