package testing

import (
	"testing"

	"github.com/aristath/fundfolio/internal/domain"
	"github.com/aristath/fundfolio/internal/modules/geography"
)

// NewGeographyFixture returns a small geography table covering the countries
// used by NewFundFixtures.
func NewGeographyFixture(t *testing.T) *geography.Table {
	t.Helper()

	table, err := geography.NewTable([]geography.CountryDefinition{
		{Name: "Sweden", Aliases: []string{"Sverige"}, Region: "Sweden", Market: "Developed"},
		{Name: "Norway", Aliases: []string{"Norge"}, Region: "Nordic", Market: "Developed"},
		{Name: "Germany", Aliases: []string{"Tyskland"}, Region: "Europe", Market: "Developed"},
		{Name: "USA", Aliases: []string{"United States"}, Region: "North America", Market: "Developed"},
		{Name: "China", Aliases: []string{"Kina"}, Region: "Asia", Market: "Emerging"},
		{Name: "Japan", Region: "Asia", Market: "Developed"},
		{Name: "Brazil", Region: "South America", Market: "Emerging"},
	})
	if err != nil {
		t.Fatalf("Failed to build geography fixture: %v", err)
	}
	return table
}

// Fund fixture names.
const (
	FundSwedenUSA     = "Sweden USA Index"
	FundSwedenGermany = "Sweden Germany Mix"
	FundEmerging      = "Emerging Markets"
)

// NewFundFixtures returns three fund records with distinct exposure profiles.
func NewFundFixtures() []domain.FundRecord {
	return []domain.FundRecord{
		{
			Name:        FundSwedenUSA,
			ISIN:        "SE0000000001",
			ProductFee:  0.5,
			Risk:        3,
			SharpeRatio: domain.Float(1.2),
			Categories:  []string{"Index", "Global"},
			Developments: domain.Developments{
				OneMonth: domain.Float(2),
				OneYear:  domain.Float(10),
			},
			Countries: []domain.ChartEntry{
				{Name: "Sweden", Value: 80},
				{Name: "USA", Value: 20},
			},
			Sectors: []domain.ChartEntry{
				{Name: "Technology", Value: 40},
				{Name: "Industrials", Value: 60},
			},
			CompanySize: &domain.CompanySizeExposure{Large: 70, Medium: 20, Small: 10},
		},
		{
			Name:       FundSwedenGermany,
			ISIN:       "SE0000000002",
			ProductFee: 1.2,
			Risk:       5,
			Categories: []string{"Europe"},
			Developments: domain.Developments{
				OneMonth:   domain.Float(-1),
				ThreeYears: domain.Float(25),
			},
			Countries: []domain.ChartEntry{
				{Name: "Sweden", Value: 50},
				{Name: "Germany", Value: 50},
			},
			Sectors: []domain.ChartEntry{
				{Name: "Industrials", Value: 30},
				{Name: "Finance", Value: 70},
			},
		},
		{
			Name:        FundEmerging,
			ISIN:        "LU0000000003",
			ProductFee:  1.6,
			Risk:        6,
			SharpeRatio: domain.Float(0.4),
			Developments: domain.Developments{
				OneYear: domain.Float(-4),
			},
			Countries: []domain.ChartEntry{
				{Name: "Kina", Value: 60},
				{Name: "Brazil", Value: 40},
			},
			Sectors: []domain.ChartEntry{
				{Name: "Technology", Value: 55},
				{Name: "Materials", Value: 45},
			},
			CompanySize: &domain.CompanySizeExposure{Large: 50, Medium: 30, Small: 20},
		},
	}
}

// FundAtlantis names a fund whose only country is missing from the geography fixture.
const FundAtlantis = "Atlantis Fund"

// NewAtlantisFundFixture returns a fund that cannot be rolled up.
func NewAtlantisFundFixture() domain.FundRecord {
	return domain.FundRecord{
		Name:       FundAtlantis,
		ProductFee: 1,
		Risk:       4,
		Countries:  []domain.ChartEntry{{Name: "Atlantis", Value: 100}},
	}
}
