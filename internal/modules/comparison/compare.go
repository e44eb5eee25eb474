// Package comparison aligns two portfolio snapshots into before/after/diff rows.
package comparison

import (
	"github.com/aristath/fundfolio/internal/domain"
	"github.com/aristath/fundfolio/internal/modules/aggregation"
)

// DefaultLimit is the number of category rows kept when no limit is given.
const DefaultLimit = 10

// Row is one aligned category. Diff is B minus A.
type Row struct {
	Key  string  `json:"key"`
	A    float64 `json:"a"`
	B    float64 `json:"b"`
	Diff float64 `json:"diff"`
}

func newRow(key string, a, b float64) Row {
	return Row{Key: key, A: a, B: b, Diff: b - a}
}

// Compare merges two compiled category sets. Keys of a come first in a's
// order, then keys only in b in b's order. The sequence is cut to limit rows,
// so categories unique to b are dropped first when a already fills it.
func Compare(a, b *aggregation.Values, limit int) []Row {
	if limit <= 0 {
		limit = DefaultLimit
	}

	keys := a.Keys()
	for _, k := range b.Keys() {
		if !a.Has(k) {
			keys = append(keys, k)
		}
	}
	if len(keys) > limit {
		keys = keys[:limit]
	}

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, newRow(k, a.Get(k), b.Get(k)))
	}
	return rows
}

// Bundle is the full comparison of two snapshots.
type Bundle struct {
	NameA         string `json:"nameA"`
	NameB         string `json:"nameB"`
	FundCountA    int    `json:"fundCountA"`
	FundCountB    int    `json:"fundCountB"`
	FundCountDiff int    `json:"fundCountDiff"`
	Scalars       []Row  `json:"scalars"`
	Countries     []Row  `json:"countries"`
	Regions       []Row  `json:"regions"`
	Sectors       []Row  `json:"sectors"`
	CompanySizes  []Row  `json:"companySizes"`
	Developments  []Row  `json:"developments"`
}

// CompareSnapshots compares every metric group of a and b. Scalar metrics
// are emitted only when both snapshots carry them, in fixed order and
// without truncation.
func CompareSnapshots(a, b *aggregation.Snapshot, limit int) Bundle {
	bundle := Bundle{
		NameA:         a.Name(),
		NameB:         b.Name(),
		FundCountA:    a.FundCount(),
		FundCountB:    b.FundCount(),
		FundCountDiff: b.FundCount() - a.FundCount(),
		Countries:     Compare(a.Countries(), b.Countries(), limit),
		Regions:       Compare(a.Regions(), b.Regions(), limit),
		Sectors:       Compare(a.Sectors(), b.Sectors(), limit),
		CompanySizes:  []Row{},
		Developments:  []Row{},
	}

	bundle.Scalars = []Row{
		newRow("percentage", a.PercentageSum(), b.PercentageSum()),
		newRow("fee", a.AvgFee(), b.AvgFee()),
		newRow("risk", a.AvgRisk(), b.AvgRisk()),
	}
	if sa, ok := a.Sharpe(); ok {
		if sb, ok := b.Sharpe(); ok {
			bundle.Scalars = append(bundle.Scalars, newRow("sharpe", sa, sb))
		}
	}

	if !a.CompanySizes().IsEmpty() && !b.CompanySizes().IsEmpty() {
		bundle.CompanySizes = Compare(a.CompanySizes(), b.CompanySizes(), limit)
	}

	for _, w := range domain.Windows() {
		da, okA := a.Development(w)
		db, okB := b.Development(w)
		if okA && okB {
			bundle.Developments = append(bundle.Developments, newRow(w.String(), da, db))
		}
	}

	return bundle
}
