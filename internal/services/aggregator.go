// Package services holds the pipeline operations over loaded record sets:
// aggregation into per-business totals, the session object that owns the
// current state, and the textual summary report.
package services

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"emissioni/internal/core"
)

// Aggregate partitions records by business, sums emissions within each
// partition with exact decimal arithmetic, and returns the totals sorted by
// emissions descending. Ties break by business name ascending so that
// re-aggregation over the same records is stable.
func Aggregate(rs *core.RecordSet) (core.Summary, error) {
	records, err := rs.Records()
	if err != nil {
		return nil, fmt.Errorf("extract records: %w", err)
	}

	totals := make(map[string]*core.BusinessTotal)
	order := make([]string, 0)
	for _, r := range records {
		bt, ok := totals[r.Business]
		if !ok {
			bt = &core.BusinessTotal{Business: r.Business, Total: decimal.Zero}
			totals[r.Business] = bt
			order = append(order, r.Business)
		}
		bt.Total = bt.Total.Add(r.Emissions)
		bt.Count++
	}

	summary := make(core.Summary, 0, len(order))
	for _, name := range order {
		summary = append(summary, *totals[name])
	}
	sort.SliceStable(summary, func(i, j int) bool {
		if c := summary[i].Total.Cmp(summary[j].Total); c != 0 {
			return c > 0
		}
		return summary[i].Business < summary[j].Business
	})
	return summary, nil
}
