package services

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"emissioni/internal/core"
)

var oneHundred = decimal.NewFromInt(100)

// WriteSummary prints the summary as an aligned table with each business's
// total, record count and share of the grand total.
func WriteSummary(w io.Writer, s core.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BUSINESS\tTOTAL KG CO2E\tRECORDS\tSHARE")

	grand := s.GrandTotal()
	for _, bt := range s {
		share := "-"
		if grand.IsPositive() {
			share = bt.Total.Div(grand).Mul(oneHundred).StringFixed(1) + "%"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			bt.Business, core.FormatEmissions(bt.Total), bt.Count, share)
	}
	fmt.Fprintf(tw, "TOTAL\t%s\t\t\n", core.FormatEmissions(grand))
	return tw.Flush()
}
