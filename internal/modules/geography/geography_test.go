package geography

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aristath/fundfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	table, err := LoadDefault()
	require.NoError(t, err)
	assert.Greater(t, table.Size(), 50)

	tests := []struct {
		label  string
		name   string
		region Region
		market Market
	}{
		{"Sweden", "Sweden", RegionSweden, MarketDeveloped},
		{"Sverige", "Sweden", RegionSweden, MarketDeveloped},
		{"usa", "USA", RegionNorthAmerica, MarketDeveloped},
		{"  United States ", "USA", RegionNorthAmerica, MarketDeveloped},
		{"Tyskland", "Germany", RegionEurope, MarketDeveloped},
		{"Kina", "China", RegionAsia, MarketEmerging},
		{"Vietnam", "Vietnam", RegionAsia, MarketFrontier},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			c, err := table.Resolve(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.name, c.Name())
			assert.Equal(t, tt.region, c.Region())
			assert.Equal(t, tt.market, c.Market())
		})
	}
}

func TestResolve_UnknownCountry(t *testing.T) {
	table, err := LoadDefault()
	require.NoError(t, err)

	_, err = table.Resolve("Atlantis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownCountry))

	var unknown *domain.UnknownCountryError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Atlantis", unknown.Label)
}

func TestResolve_SameCountryIsEqual(t *testing.T) {
	table, err := NewTable([]CountryDefinition{
		{Name: "Sweden", Aliases: []string{"Sverige"}, Region: "Sweden", Market: "Developed"},
	})
	require.NoError(t, err)

	a, err := table.Resolve("Sweden")
	require.NoError(t, err)
	b, err := table.Resolve("SVERIGE")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	m := map[Country]float64{a: 1}
	m[b] += 2
	assert.Len(t, m, 1)
	assert.Equal(t, 3.0, m[a])
}

func TestNewTable_Validation(t *testing.T) {
	tests := []struct {
		name string
		defs []CountryDefinition
		msg  string
	}{
		{
			name: "missing name",
			defs: []CountryDefinition{{Region: "Europe", Market: "Developed"}},
			msg:  "without name",
		},
		{
			name: "unknown region",
			defs: []CountryDefinition{{Name: "Mars", Region: "Space", Market: "Developed"}},
			msg:  "unknown region",
		},
		{
			name: "unknown market",
			defs: []CountryDefinition{{Name: "Mars", Region: "Europe", Market: "Red"}},
			msg:  "unknown market",
		},
		{
			name: "duplicate alias",
			defs: []CountryDefinition{
				{Name: "Austria", Region: "Europe", Market: "Developed"},
				{Name: "Australia", Aliases: []string{"austria"}, Region: "Oceania", Market: "Developed"},
			},
			msg: "already maps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.defs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad_FromReader(t *testing.T) {
	table, err := Load(strings.NewReader(`[
		{"name": "Sweden", "region": "sweden", "market": "developed"},
		{"name": "Brazil", "aliases": ["Brasilien"], "region": "South America", "market": "Emerging"}
	]`))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Size())

	c, err := table.Resolve("brasilien")
	require.NoError(t, err)
	assert.Equal(t, RegionSouthAmerica, c.Region())
	assert.Equal(t, "Sweden", table.Countries()[0].Name())

	_, err = Load(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestLoadYAML(t *testing.T) {
	table, err := LoadYAML(strings.NewReader(`
- name: Sweden
  aliases: [Sverige]
  region: Sweden
  market: Developed
- name: Chile
  region: South America
  market: Emerging
`))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Size())

	c, err := table.Resolve("sverige")
	require.NoError(t, err)
	assert.Equal(t, RegionSweden, c.Region())
}

func TestLoadFile_PicksDecoderByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "geo.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"name": "Peru", "region": "South America", "market": "Emerging"}]`), 0644))
	yamlPath := filepath.Join(dir, "geo.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- name: Peru\n  region: South America\n  market: Emerging\n"), 0644))

	for _, path := range []string{jsonPath, yamlPath} {
		table, err := LoadFile(path)
		require.NoError(t, err, path)
		c, err := table.Resolve("PERU")
		require.NoError(t, err)
		assert.Equal(t, MarketEmerging, c.Market())
	}

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
