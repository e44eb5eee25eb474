// Package geography maps the country labels published by fund providers to
// canonical countries, each classified into one region and one market.
package geography

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aristath/fundfolio/internal/domain"
	"github.com/aristath/fundfolio/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// Region is a coarse geographic bucket.
type Region string

const (
	RegionSweden       Region = "Sweden"
	RegionNordic       Region = "Nordic"
	RegionEurope       Region = "Europe"
	RegionNorthAmerica Region = "North America"
	RegionSouthAmerica Region = "South America"
	RegionAsia         Region = "Asia"
	RegionMiddleEast   Region = "Middle East"
	RegionAfrica       Region = "Africa"
	RegionOceania      Region = "Oceania"
)

// Regions returns all known regions.
func Regions() []Region {
	return []Region{
		RegionSweden,
		RegionNordic,
		RegionEurope,
		RegionNorthAmerica,
		RegionSouthAmerica,
		RegionAsia,
		RegionMiddleEast,
		RegionAfrica,
		RegionOceania,
	}
}

// Market is the development classification of a country.
type Market string

const (
	MarketDeveloped Market = "Developed"
	MarketEmerging  Market = "Emerging"
	MarketFrontier  Market = "Frontier"
)

// Markets returns all known markets.
func Markets() []Market {
	return []Market{MarketDeveloped, MarketEmerging, MarketFrontier}
}

// ParseRegion returns the region with the given name, ignoring case.
func ParseRegion(s string) (Region, error) {
	for _, r := range Regions() {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown region %q", s)
}

// ParseMarket returns the market with the given name, ignoring case.
func ParseMarket(s string) (Market, error) {
	for _, m := range Markets() {
		if strings.EqualFold(string(m), strings.TrimSpace(s)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown market %q", s)
}

// Country is a canonical country. Values are created by a Table and compare
// equal when they name the same country, so they can be used as map keys.
type Country struct {
	name   string
	region Region
	market Market
}

// Name returns the canonical name.
func (c Country) Name() string { return c.name }

// Region returns the region the country belongs to.
func (c Country) Region() Region { return c.region }

// Market returns the market the country belongs to.
func (c Country) Market() Market { return c.market }

func (c Country) String() string { return c.name }

// Resolver resolves raw country labels.
type Resolver interface {
	Resolve(label string) (Country, error)
}

// CountryDefinition is one row of a geography table file.
type CountryDefinition struct {
	Name    string   `json:"name" yaml:"name"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Region  string   `json:"region" yaml:"region"`
	Market  string   `json:"market" yaml:"market"`
}

// Table is an immutable country lookup built once at startup.
type Table struct {
	byLabel   map[string]Country
	countries []Country
}

// NewTable builds a table from definitions. Every name and alias must be
// unique (case-insensitive) and every region and market must be known.
func NewTable(defs []CountryDefinition) (*Table, error) {
	t := &Table{
		byLabel:   make(map[string]Country, len(defs)*2),
		countries: make([]Country, 0, len(defs)),
	}

	for _, def := range defs {
		if strings.TrimSpace(def.Name) == "" {
			return nil, fmt.Errorf("country definition without name")
		}
		region, err := ParseRegion(def.Region)
		if err != nil {
			return nil, fmt.Errorf("country %q: %w", def.Name, err)
		}
		market, err := ParseMarket(def.Market)
		if err != nil {
			return nil, fmt.Errorf("country %q: %w", def.Name, err)
		}

		c := Country{name: strings.TrimSpace(def.Name), region: region, market: market}
		for _, label := range append([]string{def.Name}, def.Aliases...) {
			key := normalizeLabel(label)
			if existing, ok := t.byLabel[key]; ok {
				return nil, fmt.Errorf("label %q of %q already maps to %q", label, c.name, existing.name)
			}
			t.byLabel[key] = c
		}
		t.countries = append(t.countries, c)
	}

	return t, nil
}

// Load reads a JSON array of country definitions.
func Load(r io.Reader) (*Table, error) {
	var defs []CountryDefinition
	if err := json.NewDecoder(r).Decode(&defs); err != nil {
		return nil, fmt.Errorf("failed to decode geography table: %w", err)
	}
	return NewTable(defs)
}

// LoadYAML reads a YAML sequence of country definitions.
func LoadYAML(r io.Reader) (*Table, error) {
	var defs []CountryDefinition
	if err := yaml.NewDecoder(r).Decode(&defs); err != nil {
		return nil, fmt.Errorf("failed to decode geography table: %w", err)
	}
	return NewTable(defs)
}

// LoadFile reads a geography table from a file. Files ending in .yaml or
// .yml are decoded as YAML, anything else as JSON.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open geography table: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return Load(f)
	}
}

// LoadDefault returns the table embedded in the binary.
func LoadDefault() (*Table, error) {
	return Load(bytes.NewReader(embedded.Geography))
}

// Resolve returns the country for a label, matching names and aliases
// without regard to case or surrounding whitespace.
func (t *Table) Resolve(label string) (Country, error) {
	if c, ok := t.byLabel[normalizeLabel(label)]; ok {
		return c, nil
	}
	return Country{}, &domain.UnknownCountryError{Label: label}
}

// Countries returns all countries in definition order.
func (t *Table) Countries() []Country {
	out := make([]Country, len(t.countries))
	copy(out, t.countries)
	return out
}

// Size returns the number of countries in the table.
func (t *Table) Size() int {
	return len(t.countries)
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
