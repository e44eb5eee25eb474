// Package di provides dependency injection for service implementations.
package di

import (
	"fmt"

	"github.com/aristath/fundfolio/internal/config"
	"github.com/aristath/fundfolio/internal/metrics"
	"github.com/aristath/fundfolio/internal/modules/aggregation"
	"github.com/aristath/fundfolio/internal/modules/geography"
	"github.com/aristath/fundfolio/internal/modules/portfolio"
	"github.com/rs/zerolog"
)

// InitializeServices loads the geography table and builds the aggregation
// and portfolio services
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) error {
	if container == nil || container.FundRepo == nil {
		return fmt.Errorf("repositories not initialized")
	}

	var (
		table *geography.Table
		err   error
	)
	if cfg.GeographyFile != "" {
		table, err = geography.LoadFile(cfg.GeographyFile)
	} else {
		table, err = geography.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("failed to load geography table: %w", err)
	}
	container.Geography = table

	domestic, err := geography.ParseRegion(cfg.DomesticRegion)
	if err != nil {
		return fmt.Errorf("invalid domestic region: %w", err)
	}

	container.AggregationService = aggregation.NewService(
		container.FundRepo,
		table,
		aggregation.Options{
			DomesticRegion:     domestic,
			IncludeCompanySize: cfg.IncludeCompanySize,
		},
		log,
	)

	container.Metrics = metrics.NewRegistry()
	container.PortfolioRegistry = portfolio.NewRegistry()
	container.PortfolioService = portfolio.NewService(
		container.AggregationService,
		container.PortfolioRegistry,
		cfg.CompareLimit,
		container.Metrics,
		log,
	)

	log.Info().
		Int("countries", table.Size()).
		Str("domestic_region", string(domestic)).
		Msg("All services initialized")

	return nil
}
