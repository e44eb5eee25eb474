package aggregation

import (
	"github.com/aristath/fundfolio/internal/domain"
	"github.com/aristath/fundfolio/internal/modules/funds"
)

// WeightedFund is one fund of a portfolio with its normalized weight.
type WeightedFund struct {
	Selected domain.SelectedFund
	Fund     *funds.Fund
	Weight   float64
}

// Snapshot is the compiled result of aggregating one portfolio. It is
// immutable and safe to share between goroutines.
type Snapshot struct {
	name          string
	funds         []WeightedFund
	percentageSum float64
	avgFee        float64
	avgRisk       float64
	metrics       *Sum
	countries     *Values
	regions       *Values
	sectors       *Values
	companySizes  *Values
	developments  *Values
}

// Name returns the portfolio name.
func (s *Snapshot) Name() string { return s.name }

// Funds returns the weighted funds in input order. The returned slice and
// the selected aliases are copies; Fund is read-only and hands out copies
// of its record.
func (s *Snapshot) Funds() []WeightedFund {
	out := make([]WeightedFund, len(s.funds))
	copy(out, s.funds)
	for i := range out {
		out[i].Selected.Aliases = append([]string(nil), out[i].Selected.Aliases...)
	}
	return out
}

// FundCount returns the number of funds in the portfolio.
func (s *Snapshot) FundCount() int { return len(s.funds) }

// PercentageSum is the sum of normalized weights in percent. Always 100
// within floating point tolerance.
func (s *Snapshot) PercentageSum() float64 { return s.percentageSum }

// AvgFee returns the weighted average product fee.
func (s *Snapshot) AvgFee() float64 { return s.avgFee }

// AvgRisk returns the weighted average risk score.
func (s *Snapshot) AvgRisk() float64 { return s.avgRisk }

// Sharpe returns the weighted average Sharpe ratio over the funds that
// report one.
func (s *Snapshot) Sharpe() (float64, bool) {
	return s.metrics.Lookup(domain.MetricSharpe)
}

// Development returns the weighted average development over w across the
// funds that report w.
func (s *Snapshot) Development(w domain.Window) (float64, bool) {
	return s.metrics.Lookup(w.Metric())
}

// Metrics returns the compiled scalar metrics.
func (s *Snapshot) Metrics() *Sum { return s.metrics }

// Countries returns country exposure in percent, ranked.
func (s *Snapshot) Countries() *Values { return s.countries }

// Regions returns region exposure in percent, ranked.
func (s *Snapshot) Regions() *Values { return s.regions }

// Sectors returns sector exposure in percent, ranked.
func (s *Snapshot) Sectors() *Values { return s.sectors }

// CompanySizes returns company-size exposure in canonical bucket order.
// Empty when no fund carried company-size data.
func (s *Snapshot) CompanySizes() *Values { return s.companySizes }

// Developments returns the reported development windows in canonical order,
// keyed by window label.
func (s *Snapshot) Developments() *Values { return s.developments }

// FundView is the JSON form of a weighted fund.
type FundView struct {
	Name       string  `json:"name"`
	ISIN       string  `json:"isin,omitempty"`
	Weight     float64 `json:"weight"`
	Percentage float64 `json:"percentage"`
}

// SnapshotView is the JSON form of a snapshot.
type SnapshotView struct {
	Name          string     `json:"name"`
	Funds         []FundView `json:"funds"`
	FundCount     int        `json:"fundCount"`
	PercentageSum float64    `json:"percentageSum"`
	AvgFee        float64    `json:"avgFee"`
	AvgRisk       float64    `json:"avgRisk"`
	Sharpe        *float64   `json:"sharpe,omitempty"`
	Countries     *Values    `json:"countries"`
	Regions       *Values    `json:"regions"`
	Sectors       *Values    `json:"sectors"`
	CompanySizes  *Values    `json:"companySizes"`
	Developments  *Values    `json:"developments"`
}

// ToView converts the snapshot for encoding.
func (s *Snapshot) ToView() SnapshotView {
	view := SnapshotView{
		Name:          s.name,
		Funds:         make([]FundView, 0, len(s.funds)),
		FundCount:     len(s.funds),
		PercentageSum: s.percentageSum,
		AvgFee:        s.avgFee,
		AvgRisk:       s.avgRisk,
		Countries:     s.countries,
		Regions:       s.regions,
		Sectors:       s.sectors,
		CompanySizes:  s.companySizes,
		Developments:  s.developments,
	}
	if v, ok := s.Sharpe(); ok {
		view.Sharpe = &v
	}
	for _, wf := range s.funds {
		record := wf.Fund.Record()
		view.Funds = append(view.Funds, FundView{
			Name:       record.Name,
			ISIN:       record.ISIN,
			Weight:     wf.Weight,
			Percentage: wf.Weight * 100,
		})
	}
	return view
}
