package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Logical columns of the input table. Presence is checked when typed
// records are extracted, not at load time.
const (
	ColumnBusiness  = "Business"
	ColumnActivity  = "Activity"
	ColumnEmissions = "Emissions"
)

var (
	ErrEmptyFile         = errors.New("input file is empty")
	ErrMissingColumn     = errors.New("required column missing")
	ErrInvalidEmissions  = errors.New("invalid emissions value")
	ErrNegativeEmissions = errors.New("negative emissions value")
	ErrNoRecords         = errors.New("no records loaded")
	ErrNoSummary         = errors.New("no summary computed")
	ErrEmptySummary      = errors.New("totals are empty")
)

// Record is one observation of a business's emissions for an activity,
// in kg CO2e.
type Record struct {
	Business  string
	Activity  string
	Emissions decimal.Decimal
}

// RecordSet is the full loaded table: the header row plus data rows in file
// order. Rows stay untyped until Records is called, so a missing column
// surfaces at aggregation time rather than at load time.
type RecordSet struct {
	header []string
	rows   [][]string
}

// NewRecordSet builds a RecordSet from a parsed header and data rows.
func NewRecordSet(header []string, rows [][]string) *RecordSet {
	return &RecordSet{header: header, rows: rows}
}

// Len returns the number of data rows.
func (rs *RecordSet) Len() int {
	return len(rs.rows)
}

// Column returns the index of the named header column, or -1 when absent.
// Header cells are compared after trimming surrounding whitespace.
func (rs *RecordSet) Column(name string) int {
	for i, h := range rs.header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// Records extracts typed records from the raw rows. It fails with
// ErrMissingColumn when the Business or Emissions column is absent, and
// with a row-level parse error when an Emissions cell is negative or not
// numeric. The Activity column is optional; aggregation never reads it.
func (rs *RecordSet) Records() ([]Record, error) {
	bi := rs.Column(ColumnBusiness)
	if bi < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnBusiness)
	}
	ei := rs.Column(ColumnEmissions)
	if ei < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnEmissions)
	}
	ai := rs.Column(ColumnActivity)

	records := make([]Record, 0, len(rs.rows))
	for n, row := range rs.rows {
		r := Record{Business: strings.TrimSpace(row[bi])}
		if ai >= 0 {
			r.Activity = strings.TrimSpace(row[ai])
		}
		q, err := ParseEmissions(row[ei])
		if err != nil {
			// +2: one for the header row, one for 1-based numbering.
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		r.Emissions = q
		records = append(records, r)
	}
	return records, nil
}
