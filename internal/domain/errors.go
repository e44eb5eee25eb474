package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPortfolio is returned for an empty portfolio or non-positive weights.
	ErrInvalidPortfolio = errors.New("invalid portfolio")
	// ErrFundNotFound is returned when no fund matches a name or any alias.
	ErrFundNotFound = errors.New("fund not found")
	// ErrUnknownCountry is returned when a country label is not in the geography table.
	ErrUnknownCountry = errors.New("unknown country")
	// ErrIndexOutOfRange is returned by positional accessors on compiled accumulators.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrZeroWeight is returned when a scalar metric accumulated no weight.
	ErrZeroWeight = errors.New("zero weight sum")
)

// FundNotFoundError reports the identifiers that were tried.
type FundNotFoundError struct {
	Name    string
	Aliases []string
}

func (e *FundNotFoundError) Error() string {
	if len(e.Aliases) == 0 {
		return fmt.Sprintf("fund not found: %q", e.Name)
	}
	return fmt.Sprintf("fund not found: %q (aliases: %s)", e.Name, strings.Join(e.Aliases, ", "))
}

func (e *FundNotFoundError) Unwrap() error {
	return ErrFundNotFound
}

// UnknownCountryError reports the label that failed to resolve.
type UnknownCountryError struct {
	Label string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country: %q", e.Label)
}

func (e *UnknownCountryError) Unwrap() error {
	return ErrUnknownCountry
}

// InvalidPortfolio builds an ErrInvalidPortfolio with a reason.
func InvalidPortfolio(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidPortfolio, fmt.Sprintf(format, args...))
}
