package funds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aristath/fundfolio/internal/utils"
)

// LoadCatalog decodes a JSON array of catalog entries.
func LoadCatalog(r io.Reader) ([]CatalogEntry, error) {
	var entries []CatalogEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode fund catalog: %w", err)
	}
	return entries, nil
}

// LoadCatalogFile reads catalog entries from a JSON file.
func LoadCatalogFile(path string) ([]CatalogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fund catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// Seed writes every entry into the repository. It returns the number of
// entries written before the first failure.
func (r *Repository) Seed(ctx context.Context, entries []CatalogEntry) (int, error) {
	timer := utils.NewTimer("seed_fund_catalog", 5*time.Second, r.log)
	defer timer.Stop()

	for i, e := range entries {
		if err := r.Upsert(ctx, e); err != nil {
			return i, err
		}
	}
	r.log.Info().Int("funds", len(entries)).Msg("Seeded fund catalog")
	return len(entries), nil
}
