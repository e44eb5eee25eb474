package funds

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aristath/fundfolio/internal/database"
	"github.com/aristath/fundfolio/internal/domain"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// Repository is a SQLite-backed fund lookup over catalog.db.
// Records are stored as msgpack blobs next to the indexed name columns.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new fund repository
// db parameter should be catalog.db connection
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "funds").Logger(),
	}
}

// LookupFund implements domain.FundLookup. The name is tried first against
// fund names and then against aliases, followed by each given alias.
func (r *Repository) LookupFund(ctx context.Context, name string, aliases []string) (domain.FundRecord, error) {
	for _, candidate := range candidates(name, aliases) {
		rec, err := r.get(ctx, fundKey(candidate))
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return domain.FundRecord{}, err
		}
	}

	r.log.Debug().Str("name", name).Strs("aliases", aliases).Msg("Fund not in catalog")
	return domain.FundRecord{}, &domain.FundNotFoundError{Name: name, Aliases: aliases}
}

func (r *Repository) get(ctx context.Context, key string) (domain.FundRecord, error) {
	// A direct name match wins over an alias of another fund.
	query := `
		SELECT data FROM (
			SELECT f.data AS data, 0 AS priority FROM funds f WHERE f.name_key = ?
			UNION ALL
			SELECT f.data AS data, 1 AS priority FROM fund_aliases a
			JOIN funds f ON f.name_key = a.fund_key WHERE a.alias_key = ?
		)
		ORDER BY priority
		LIMIT 1
	`

	var data []byte
	if err := r.db.QueryRowContext(ctx, query, key, key).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.FundRecord{}, err
		}
		return domain.FundRecord{}, fmt.Errorf("failed to query fund %q: %w", key, err)
	}

	var rec domain.FundRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return domain.FundRecord{}, fmt.Errorf("failed to decode fund %q: %w", key, err)
	}
	return rec, nil
}

// Upsert inserts or replaces a catalog entry and its aliases.
func (r *Repository) Upsert(ctx context.Context, entry CatalogEntry) error {
	if fundKey(entry.Name) == "" {
		return fmt.Errorf("fund name is required")
	}

	data, err := msgpack.Marshal(&entry.FundRecord)
	if err != nil {
		return fmt.Errorf("failed to encode fund %q: %w", entry.Name, err)
	}

	key := fundKey(entry.Name)
	now := time.Now().Unix()

	return database.WithTransaction(r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO funds (name_key, name, isin, data, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(name_key) DO UPDATE SET
				name = excluded.name,
				isin = excluded.isin,
				data = excluded.data,
				updated_at = excluded.updated_at
		`, key, entry.Name, entry.ISIN, data, now)
		if err != nil {
			return fmt.Errorf("failed to upsert fund %q: %w", entry.Name, err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM fund_aliases WHERE fund_key = ?", key); err != nil {
			return fmt.Errorf("failed to clear aliases of %q: %w", entry.Name, err)
		}

		for _, alias := range entry.Aliases {
			aliasKey := fundKey(alias)
			if aliasKey == "" || aliasKey == key {
				continue
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO fund_aliases (alias_key, alias, fund_key) VALUES (?, ?, ?)
				ON CONFLICT(alias_key) DO UPDATE SET alias = excluded.alias, fund_key = excluded.fund_key
			`, aliasKey, alias, key)
			if err != nil {
				return fmt.Errorf("failed to insert alias %q of %q: %w", alias, entry.Name, err)
			}
		}
		return nil
	})
}

// Names returns all fund names in the catalog, sorted.
func (r *Repository) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM funds ORDER BY name_key")
	if err != nil {
		return nil, fmt.Errorf("failed to query fund names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan fund name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund names: %w", err)
	}

	return names, nil
}

// Count returns the number of funds in the catalog.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM funds").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count funds: %w", err)
	}
	return n, nil
}
