/**
 * Package di provides dependency injection type definitions.
 *
 * This package defines the Container type which holds all application dependencies.
 * The Container is the single source of truth for all service instances and is
 * passed to the server for access to services.
 */
package di

import (
	"github.com/aristath/fundfolio/internal/database"
	"github.com/aristath/fundfolio/internal/metrics"
	"github.com/aristath/fundfolio/internal/modules/aggregation"
	"github.com/aristath/fundfolio/internal/modules/funds"
	"github.com/aristath/fundfolio/internal/modules/geography"
	"github.com/aristath/fundfolio/internal/modules/portfolio"
)

// Container holds all application dependencies
type Container struct {
	// Databases
	CatalogDB *database.DB // catalog.db - fund records and aliases

	// Reference data
	Geography *geography.Table

	// Repositories
	FundRepo *funds.Repository

	// Services
	AggregationService *aggregation.Service
	PortfolioRegistry  *portfolio.Registry
	PortfolioService   *portfolio.Service

	// Observability
	Metrics *metrics.Registry
}

// Close releases the container's databases
func (c *Container) Close() error {
	if c == nil || c.CatalogDB == nil {
		return nil
	}
	return c.CatalogDB.Close()
}
