package domain

import "context"

// FundLookup resolves a fund by name, trying each alias in order when the
// name itself is unknown. Implementations return a *FundNotFoundError when
// nothing matches.
type FundLookup interface {
	LookupFund(ctx context.Context, name string, aliases []string) (FundRecord, error)
}
