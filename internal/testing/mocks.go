package testing

import (
	"context"
	"strings"
	"sync"

	"github.com/aristath/fundfolio/internal/domain"
)

// MockFundLookup is an in-memory domain.FundLookup for testing
type MockFundLookup struct {
	mu      sync.RWMutex
	records map[string]domain.FundRecord
	err     error
	calls   []string
}

// NewMockFundLookup creates a mock lookup serving the given records by exact name
func NewMockFundLookup(records ...domain.FundRecord) *MockFundLookup {
	m := &MockFundLookup{records: make(map[string]domain.FundRecord)}
	for _, r := range records {
		m.records[strings.ToLower(r.Name)] = r
	}
	return m
}

// SetError makes every lookup fail with err
func (m *MockFundLookup) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns the names looked up so far
func (m *MockFundLookup) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// LookupFund implements domain.FundLookup
func (m *MockFundLookup) LookupFund(_ context.Context, name string, aliases []string) (domain.FundRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)

	if m.err != nil {
		return domain.FundRecord{}, m.err
	}
	for _, candidate := range append([]string{name}, aliases...) {
		if r, ok := m.records[strings.ToLower(candidate)]; ok {
			return r, nil
		}
	}
	return domain.FundRecord{}, &domain.FundNotFoundError{Name: name, Aliases: aliases}
}
