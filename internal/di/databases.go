// Package di provides dependency injection for database connections.
package di

import (
	"fmt"
	"path/filepath"

	"github.com/aristath/fundfolio/internal/config"
	"github.com/aristath/fundfolio/internal/database"
	"github.com/rs/zerolog"
)

// InitializeDatabases opens catalog.db and applies its schema
func InitializeDatabases(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	container := &Container{}

	catalogDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "catalog.db"),
		Profile: database.ProfileCache,
		Name:    "catalog",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog database: %w", err)
	}

	if err := catalogDB.Migrate(); err != nil {
		catalogDB.Close()
		return nil, fmt.Errorf("failed to migrate catalog database: %w", err)
	}
	container.CatalogDB = catalogDB

	log.Info().Str("path", catalogDB.Path()).Msg("Catalog database initialized")

	return container, nil
}
