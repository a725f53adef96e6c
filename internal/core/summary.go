package core

import "github.com/shopspring/decimal"

// BusinessTotal is the emissions aggregate for one business.
type BusinessTotal struct {
	Business string
	Total    decimal.Decimal
	Count    int64
}

// Summary is the per-business totals, sorted by Total descending.
type Summary []BusinessTotal

// GrandTotal sums every business total.
func (s Summary) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, bt := range s {
		total = total.Add(bt.Total)
	}
	return total
}
