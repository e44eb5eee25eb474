package comparison

import (
	"context"
	"testing"

	"github.com/aristath/fundfolio/internal/domain"
	"github.com/aristath/fundfolio/internal/modules/aggregation"
	testingpkg "github.com/aristath/fundfolio/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(rank bool, entries ...aggregation.Entry) *aggregation.Values {
	b := aggregation.NewValuesBuilder()
	for _, e := range entries {
		b.Add(e.Key, e.Value)
	}
	return b.Build(rank)
}

func TestCompare_AlignsMismatchedKeys(t *testing.T) {
	a := values(true, aggregation.Entry{Key: "X", Value: 10}, aggregation.Entry{Key: "Y", Value: 5})
	b := values(true, aggregation.Entry{Key: "Y", Value: 8}, aggregation.Entry{Key: "Z", Value: 20})

	rows := Compare(a, b, 10)
	assert.Equal(t, []Row{
		{Key: "X", A: 10, B: 0, Diff: -10},
		{Key: "Y", A: 5, B: 8, Diff: 3},
		{Key: "Z", A: 0, B: 20, Diff: 20},
	}, rows)
}

func TestCompare_SelfIsZeroDiff(t *testing.T) {
	a := values(true, aggregation.Entry{Key: "Sweden", Value: 68}, aggregation.Entry{Key: "USA", Value: 32})

	for _, row := range Compare(a, a, 0) {
		assert.Equal(t, row.A, row.B)
		assert.Equal(t, 0.0, row.Diff)
	}
}

func TestCompare_Truncation(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected []string
	}{
		{"first portfolio fills the limit", 2, []string{"a1", "a2"}},
		{"one slot for second portfolio", 3, []string{"a1", "a2", "b1"}},
		{"default limit keeps everything", 0, []string{"a1", "a2", "b1", "b2"}},
	}

	a := values(true, aggregation.Entry{Key: "a1", Value: 5}, aggregation.Entry{Key: "a2", Value: 4})
	// b1 ranks far above anything in a but is still crowded out.
	b := values(true, aggregation.Entry{Key: "b1", Value: 90}, aggregation.Entry{Key: "b2", Value: 10})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Compare(a, b, tt.limit)
			keys := make([]string, len(rows))
			for i, r := range rows {
				keys[i] = r.Key
			}
			assert.Equal(t, tt.expected, keys)
		})
	}
}

func TestCompare_DefaultLimit(t *testing.T) {
	b := aggregation.NewValuesBuilder()
	for i := 0; i < 15; i++ {
		b.Add(string(rune('a'+i)), float64(i))
	}
	v := b.Build(true)

	assert.Len(t, Compare(v, aggregation.EmptyValues(), -1), DefaultLimit)
	assert.Len(t, Compare(v, aggregation.EmptyValues(), 20), 15)
}

func TestCompare_BothEmpty(t *testing.T) {
	assert.Empty(t, Compare(aggregation.EmptyValues(), aggregation.EmptyValues(), 10))
}

func aggregate(t *testing.T, name string, selected ...domain.SelectedFund) *aggregation.Snapshot {
	t.Helper()
	svc := aggregation.NewService(
		testingpkg.NewMockFundLookup(testingpkg.NewFundFixtures()...),
		testingpkg.NewGeographyFixture(t),
		aggregation.DefaultOptions(),
		zerolog.Nop(),
	)
	snap, err := svc.Aggregate(context.Background(), name, selected)
	require.NoError(t, err)
	return snap
}

func TestCompareSnapshots(t *testing.T) {
	a := aggregate(t, "Home",
		domain.SelectedFund{Name: testingpkg.FundSwedenUSA, Weight: 60},
		domain.SelectedFund{Name: testingpkg.FundSwedenGermany, Weight: 40},
	)
	b := aggregate(t, "Away",
		domain.SelectedFund{Name: testingpkg.FundSwedenUSA, Weight: 50},
		domain.SelectedFund{Name: testingpkg.FundEmerging, Weight: 30},
		domain.SelectedFund{Name: testingpkg.FundSwedenGermany, Weight: 20},
	)

	bundle := CompareSnapshots(a, b, 10)
	assert.Equal(t, "Home", bundle.NameA)
	assert.Equal(t, "Away", bundle.NameB)
	assert.Equal(t, 1, bundle.FundCountDiff)

	scalarKeys := make([]string, len(bundle.Scalars))
	for i, r := range bundle.Scalars {
		scalarKeys[i] = r.Key
	}
	assert.Equal(t, []string{"percentage", "fee", "risk", "sharpe"}, scalarKeys)
	assert.InDelta(t, 0.0, bundle.Scalars[0].Diff, 1e-9)
	assert.InDelta(t, 0.78, bundle.Scalars[1].A, 1e-9)

	// Countries of a come first, then those only in b.
	require.Len(t, bundle.Countries, 5)
	assert.Equal(t, "Sweden", bundle.Countries[0].Key)
	assert.Equal(t, "China", bundle.Countries[3].Key)
	assert.Equal(t, 0.0, bundle.Countries[3].A)

	assert.Len(t, bundle.CompanySizes, 6)

	devKeys := make([]string, len(bundle.Developments))
	for i, r := range bundle.Developments {
		devKeys[i] = r.Key
	}
	assert.Equal(t, []string{"1m", "1y", "3y"}, devKeys)
}

func TestCompareSnapshots_OptionalGroups(t *testing.T) {
	a := aggregate(t, "Sharpe", domain.SelectedFund{Name: testingpkg.FundSwedenUSA, Weight: 1})
	b := aggregate(t, "NoSharpe", domain.SelectedFund{Name: testingpkg.FundSwedenGermany, Weight: 1})

	bundle := CompareSnapshots(a, b, 10)

	for _, r := range bundle.Scalars {
		assert.NotEqual(t, "sharpe", r.Key)
	}
	assert.Empty(t, bundle.CompanySizes)

	require.Len(t, bundle.Developments, 1)
	assert.Equal(t, Row{Key: "1m", A: 2, B: -1, Diff: -3}, bundle.Developments[0])
}

func TestCompareSnapshots_Self(t *testing.T) {
	a := aggregate(t, "Same",
		domain.SelectedFund{Name: testingpkg.FundSwedenUSA, Weight: 1},
		domain.SelectedFund{Name: testingpkg.FundEmerging, Weight: 1},
	)

	bundle := CompareSnapshots(a, a, 10)
	groups := [][]Row{bundle.Scalars, bundle.Countries, bundle.Regions, bundle.Sectors, bundle.CompanySizes, bundle.Developments}
	for _, group := range groups {
		for _, r := range group {
			assert.Equal(t, 0.0, r.Diff, r.Key)
		}
	}
}
