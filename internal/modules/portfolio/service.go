// Package portfolio builds, stores and compares portfolio snapshots.
package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/aristath/fundfolio/internal/domain"
	"github.com/aristath/fundfolio/internal/metrics"
	"github.com/aristath/fundfolio/internal/modules/aggregation"
	"github.com/aristath/fundfolio/internal/modules/comparison"
	"github.com/rs/zerolog"
)

// Aggregator builds a snapshot from selected funds.
type Aggregator interface {
	Aggregate(ctx context.Context, name string, selected []domain.SelectedFund) (*aggregation.Snapshot, error)
}

// Service orchestrates aggregation and comparison of stored portfolios.
//
// Responsibilities:
//   - Aggregate a portfolio and register the compiled snapshot
//   - Look up registered snapshots by id
//   - Compare two registered snapshots
type Service struct {
	aggregator   Aggregator
	registry     *Registry
	compareLimit int
	metrics      *metrics.Registry
	log          zerolog.Logger
}

// NewService creates a new portfolio service. m may be nil.
func NewService(aggregator Aggregator, registry *Registry, compareLimit int, m *metrics.Registry, log zerolog.Logger) *Service {
	if compareLimit <= 0 {
		compareLimit = comparison.DefaultLimit
	}
	return &Service{
		aggregator:   aggregator,
		registry:     registry,
		compareLimit: compareLimit,
		metrics:      m,
		log:          log.With().Str("service", "portfolio").Logger(),
	}
}

// Create aggregates a portfolio and stores it. Nothing is stored when
// aggregation fails.
func (s *Service) Create(ctx context.Context, name string, selected []domain.SelectedFund) (string, *aggregation.Snapshot, error) {
	start := time.Now()
	snap, err := s.aggregator.Aggregate(ctx, name, selected)
	s.metrics.RecordAggregation(err, len(selected), time.Since(start))
	if err != nil {
		return "", nil, err
	}

	id := s.registry.Put(snap)
	s.metrics.SetSnapshots(s.registry.Len())
	s.log.Info().
		Str("id", id).
		Str("portfolio", name).
		Int("funds", snap.FundCount()).
		Msg("Registered portfolio snapshot")

	return id, snap, nil
}

// Get returns a registered snapshot.
func (s *Service) Get(id string) (*aggregation.Snapshot, error) {
	snap, err := s.registry.Get(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, id)
	}
	return snap, nil
}

// Compare compares two registered snapshots. A non-positive limit falls back
// to the configured default.
func (s *Service) Compare(idA, idB string, limit int) (comparison.Bundle, error) {
	a, err := s.Get(idA)
	if err != nil {
		return comparison.Bundle{}, err
	}
	b, err := s.Get(idB)
	if err != nil {
		return comparison.Bundle{}, err
	}

	if limit <= 0 {
		limit = s.compareLimit
	}

	s.log.Debug().
		Str("a", idA).
		Str("b", idB).
		Int("limit", limit).
		Msg("Comparing portfolio snapshots")

	bundle := comparison.CompareSnapshots(a, b, limit)
	s.metrics.RecordComparison()
	return bundle, nil
}

// List returns the ids of all registered snapshots in creation order.
func (s *Service) List() []string {
	return s.registry.IDs()
}
