package funds

import (
	"context"
	"strings"

	"github.com/aristath/fundfolio/internal/domain"
)

// CatalogEntry is a fund record together with the extra names it is known by.
type CatalogEntry struct {
	domain.FundRecord
	Aliases []string `json:"aliases,omitempty"`
}

// Catalog is an in-memory fund lookup. It is read-only after construction
// and safe for concurrent use.
type Catalog struct {
	byName  map[string]domain.FundRecord
	byAlias map[string]domain.FundRecord
	names   []string
}

// NewCatalog indexes entries by name and alias. A direct name always wins
// over another fund's alias; among equal keys of the same kind the later
// entry wins.
func NewCatalog(entries []CatalogEntry) *Catalog {
	c := &Catalog{
		byName:  make(map[string]domain.FundRecord, len(entries)),
		byAlias: make(map[string]domain.FundRecord),
	}
	for _, e := range entries {
		key := fundKey(e.Name)
		if _, ok := c.byName[key]; !ok {
			c.names = append(c.names, e.Name)
		}
		c.byName[key] = e.FundRecord
		for _, alias := range e.Aliases {
			if aliasKey := fundKey(alias); aliasKey != "" {
				c.byAlias[aliasKey] = e.FundRecord
			}
		}
	}
	return c
}

// LookupFund implements domain.FundLookup. Each candidate is tried against
// fund names first and then against aliases, like Repository.
func (c *Catalog) LookupFund(_ context.Context, name string, aliases []string) (domain.FundRecord, error) {
	for _, candidate := range candidates(name, aliases) {
		key := fundKey(candidate)
		if rec, ok := c.byName[key]; ok {
			return rec, nil
		}
		if rec, ok := c.byAlias[key]; ok {
			return rec, nil
		}
	}
	return domain.FundRecord{}, &domain.FundNotFoundError{Name: name, Aliases: aliases}
}

// Names returns the primary fund names in insertion order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func candidates(name string, aliases []string) []string {
	return append([]string{name}, aliases...)
}

func fundKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
