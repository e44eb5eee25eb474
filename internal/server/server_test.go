package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aristath/fundfolio/internal/config"
	"github.com/aristath/fundfolio/internal/di"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	catalog := `[
		{"name": "Home Fund", "productFee": 0.4, "risk": 3,
		 "countryChartData": [{"name": "Sweden", "y": 100}],
		 "sectorChartData": [{"name": "Finance", "y": 100}]},
		{"name": "World Fund", "productFee": 1.0, "risk": 5,
		 "countryChartData": [{"name": "USA", "y": 60}, {"name": "Japan", "y": 40}],
		 "sectorChartData": [{"name": "Technology", "y": 100}]}
	]`
	catalogPath := filepath.Join(dir, "funds.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalog), 0644))

	cfg := &config.Config{
		DataDir:            dir,
		Port:               8080,
		DomesticRegion:     "Sweden",
		CompareLimit:       10,
		IncludeCompanySize: true,
		FundCatalogFile:    catalogPath,
	}

	container, err := di.Wire(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { container.Close() })

	return New(Config{Log: zerolog.Nop(), Port: cfg.Port, DevMode: true, Container: container})
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "fundfolio", body["service"])
	assert.Equal(t, float64(0), body["portfolios"])
	assert.Greater(t, body["countries"], float64(0))
}

func TestServer_CreateAndCompareThroughAPI(t *testing.T) {
	s := newTestServer(t)
	router := s.Router()

	create := func(body string) string {
		req := httptest.NewRequest("POST", "/api/portfolios", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp.ID
	}

	idA := create(`{"name": "Home", "funds": [{"name": "home fund", "weight": 100}]}`)
	idB := create(`{"name": "Blend", "funds": [{"name": "Home Fund", "weight": 1}, {"name": "World Fund", "weight": 1}]}`)

	body, _ := json.Marshal(map[string]interface{}{"a": idA, "b": idB})
	req := httptest.NewRequest("POST", "/api/comparisons", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var bundle struct {
		Countries []struct {
			Key  string  `json:"key"`
			A    float64 `json:"a"`
			B    float64 `json:"b"`
			Diff float64 `json:"diff"`
		} `json:"countries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))
	require.Len(t, bundle.Countries, 3)
	assert.Equal(t, "Sweden", bundle.Countries[0].Key)
	assert.InDelta(t, -50.0, bundle.Countries[0].Diff, 1e-9)
	assert.Equal(t, "USA", bundle.Countries[1].Key)
	assert.Equal(t, "Japan", bundle.Countries[2].Key)

	health := httptest.NewRecorder()
	router.ServeHTTP(health, httptest.NewRequest("GET", "/health", nil))
	assert.Contains(t, health.Body.String(), `"portfolios":2`)
}

func TestServer_FundLookupNotFound(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/funds/Missing", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_CORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("OPTIONS", "/api/portfolios", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/api/nothing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t)
	router := s.Router()

	req := httptest.NewRequest("POST", "/api/portfolios", bytes.NewBufferString(`{"name": "P", "funds": [{"name": "Home Fund", "weight": 1}]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fundfolio_aggregations_total{result="ok"} 1`)
	assert.Contains(t, rec.Body.String(), "fundfolio_registered_snapshots 1")
}
