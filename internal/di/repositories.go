// Package di provides dependency injection for repository implementations.
package di

import (
	"context"
	"fmt"

	"github.com/aristath/fundfolio/internal/config"
	"github.com/aristath/fundfolio/internal/modules/funds"
	"github.com/rs/zerolog"
)

// InitializeRepositories creates the fund repository and seeds it from the
// configured catalog file, if any
func InitializeRepositories(ctx context.Context, container *Container, cfg *config.Config, log zerolog.Logger) error {
	if container == nil || container.CatalogDB == nil {
		return fmt.Errorf("catalog database not initialized")
	}

	container.FundRepo = funds.NewRepository(container.CatalogDB.Conn(), log)

	if cfg.FundCatalogFile != "" {
		entries, err := funds.LoadCatalogFile(cfg.FundCatalogFile)
		if err != nil {
			return fmt.Errorf("failed to load fund catalog: %w", err)
		}
		n, err := container.FundRepo.Seed(ctx, entries)
		if err != nil {
			return fmt.Errorf("failed to seed fund catalog: %w", err)
		}
		log.Info().Str("file", cfg.FundCatalogFile).Int("funds", n).Msg("Fund catalog seeded")
	}

	count, err := container.FundRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count catalog funds: %w", err)
	}
	if count == 0 {
		log.Warn().Msg("Fund catalog is empty, every portfolio will fail fund lookup")
	}

	log.Info().Int("funds", count).Msg("All repositories initialized")

	return nil
}
