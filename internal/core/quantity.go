// Package core provides the emission record domain types and parsing
// utilities shared by the loader, the aggregator and the chart renderer.
package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseEmissions converts a decimal string into an exact quantity of kg CO2e.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. An empty
// cell counts as zero so that sparse exports aggregate cleanly. Negative
// quantities are rejected; an emission record describes something released,
// not removed.
//
// Examples:
//
//	ParseEmissions("12.34") -> 12.34, nil
//	ParseEmissions("12,34") -> 12.34, nil
//	ParseEmissions("")      -> 0, nil
//	ParseEmissions("-3")    -> error
func ParseEmissions(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidEmissions, s)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrNegativeEmissions, s)
	}
	return d, nil
}

// FormatEmissions renders a quantity with a fixed two-decimal scale for
// tables and chart labels.
func FormatEmissions(d decimal.Decimal) string {
	return d.StringFixed(2)
}
