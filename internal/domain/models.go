// Package domain provides core domain models and types.
package domain

// ChartEntry is one categorical exposure reported for a fund, as a percentage.
// Entries of one group (countries, sectors) are not guaranteed to sum to 100.
type ChartEntry struct {
	Name  string  `json:"name" msgpack:"name"`
	Value float64 `json:"y" msgpack:"y"`
}

// CompanySizeExposure is the split of a fund's equity holdings by company size,
// in percent. It comes from a secondary data provider and is often missing.
type CompanySizeExposure struct {
	Large  float64 `json:"large" msgpack:"large"`
	Medium float64 `json:"medium" msgpack:"medium"`
	Small  float64 `json:"small" msgpack:"small"`
}

// Get returns the exposure for a single size bucket.
func (c CompanySizeExposure) Get(size CompanySize) float64 {
	switch size {
	case CompanySizeLarge:
		return c.Large
	case CompanySizeMedium:
		return c.Medium
	case CompanySizeSmall:
		return c.Small
	}
	return 0
}

// FundRecord holds the facts published for a fund by the data provider.
// Records are read-only once fetched.
type FundRecord struct {
	Name              string               `json:"name" msgpack:"name"`
	ISIN              string               `json:"isin,omitempty" msgpack:"isin"`
	ProductFee        float64              `json:"productFee" msgpack:"product_fee"`
	Risk              int                  `json:"risk" msgpack:"risk"`
	SharpeRatio       *float64             `json:"sharpeRatio,omitempty" msgpack:"sharpe_ratio"`
	StandardDeviation *float64             `json:"standardDeviation,omitempty" msgpack:"standard_deviation"`
	Categories        []string             `json:"categories,omitempty" msgpack:"categories"`
	Developments      Developments         `json:"developments" msgpack:"developments"`
	Countries         []ChartEntry         `json:"countryChartData" msgpack:"countries"`
	Sectors           []ChartEntry         `json:"sectorChartData" msgpack:"sectors"`
	CompanySize       *CompanySizeExposure `json:"companySize,omitempty" msgpack:"company_size"`
}

// Clone returns a deep copy of the record. Slices and optional fields of
// the copy share no memory with r.
func (r FundRecord) Clone() FundRecord {
	out := r
	out.SharpeRatio = cloneFloat(r.SharpeRatio)
	out.StandardDeviation = cloneFloat(r.StandardDeviation)
	out.Categories = cloneSlice(r.Categories)
	out.Developments = r.Developments.Clone()
	out.Countries = cloneSlice(r.Countries)
	out.Sectors = cloneSlice(r.Sectors)
	if r.CompanySize != nil {
		cs := *r.CompanySize
		out.CompanySize = &cs
	}
	return out
}

// Developments holds the historical return of a fund over each time window.
// A nil field means the provider did not report that window.
type Developments struct {
	OneDay      *float64 `json:"oneDay,omitempty" msgpack:"one_day"`
	OneMonth    *float64 `json:"oneMonth,omitempty" msgpack:"one_month"`
	ThreeMonths *float64 `json:"threeMonths,omitempty" msgpack:"three_months"`
	SixMonths   *float64 `json:"sixMonths,omitempty" msgpack:"six_months"`
	ThisYear    *float64 `json:"thisYear,omitempty" msgpack:"this_year"`
	OneYear     *float64 `json:"oneYear,omitempty" msgpack:"one_year"`
	ThreeYears  *float64 `json:"threeYears,omitempty" msgpack:"three_years"`
	FiveYears   *float64 `json:"fiveYears,omitempty" msgpack:"five_years"`
}

// Get returns the development for a window and whether it was reported.
func (d Developments) Get(w Window) (float64, bool) {
	var v *float64
	switch w {
	case WindowOneDay:
		v = d.OneDay
	case WindowOneMonth:
		v = d.OneMonth
	case WindowThreeMonths:
		v = d.ThreeMonths
	case WindowSixMonths:
		v = d.SixMonths
	case WindowThisYear:
		v = d.ThisYear
	case WindowOneYear:
		v = d.OneYear
	case WindowThreeYears:
		v = d.ThreeYears
	case WindowFiveYears:
		v = d.FiveYears
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Clone returns a copy whose reported windows share no memory with d.
func (d Developments) Clone() Developments {
	return Developments{
		OneDay:      cloneFloat(d.OneDay),
		OneMonth:    cloneFloat(d.OneMonth),
		ThreeMonths: cloneFloat(d.ThreeMonths),
		SixMonths:   cloneFloat(d.SixMonths),
		ThisYear:    cloneFloat(d.ThisYear),
		OneYear:     cloneFloat(d.OneYear),
		ThreeYears:  cloneFloat(d.ThreeYears),
		FiveYears:   cloneFloat(d.FiveYears),
	}
}

// SelectedFund is a caller's pick for a portfolio: a fund identifier, the
// alternative names it may be published under, and a raw allocation weight
// on any positive scale.
type SelectedFund struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Weight  float64  `json:"weight"`
}

// Float returns a pointer to v. Used for optional record fields.
func Float(v float64) *float64 {
	return &v
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(*v)
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
