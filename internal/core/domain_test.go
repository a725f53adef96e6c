package core

import (
	"errors"
	"testing"
)

func TestRecordSetColumn(t *testing.T) {
	rs := NewRecordSet([]string{"Business", " Activity ", "Emissions"}, nil)
	if got := rs.Column("Business"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := rs.Column("Activity"); got != 1 {
		t.Fatalf("expected 1 for padded header, got %d", got)
	}
	if got := rs.Column("Missing"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func TestRecordSetRecords(t *testing.T) {
	rs := NewRecordSet(
		[]string{"Business", "Activity", "Emissions"},
		[][]string{
			{"A", "travel", "10"},
			{"B", "energy", "5"},
			{"A", "energy", "7"},
		},
	)
	records, err := rs.Records()
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Business != "A" || records[0].Activity != "travel" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[2].Emissions.String() != "7" {
		t.Fatalf("expected 7, got %s", records[2].Emissions)
	}
}

func TestRecordSetRecordsMissingColumns(t *testing.T) {
	cases := []struct {
		name   string
		header []string
	}{
		{"no business", []string{"Company", "Activity", "Emissions"}},
		{"no emissions", []string{"Business", "Activity", "CO2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rs := NewRecordSet(tc.header, [][]string{{"A", "travel", "10"}})
			if _, err := rs.Records(); !errors.Is(err, ErrMissingColumn) {
				t.Fatalf("expected ErrMissingColumn, got %v", err)
			}
		})
	}
}

func TestRecordSetRecordsWithoutActivity(t *testing.T) {
	// Activity is unused by aggregation and therefore optional.
	rs := NewRecordSet(
		[]string{"Business", "Emissions"},
		[][]string{{"A", "3"}},
	)
	records, err := rs.Records()
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if records[0].Activity != "" {
		t.Fatalf("expected empty activity, got %q", records[0].Activity)
	}
}

func TestRecordSetRecordsBadValue(t *testing.T) {
	rs := NewRecordSet(
		[]string{"Business", "Activity", "Emissions"},
		[][]string{
			{"A", "travel", "10"},
			{"B", "energy", "-4"},
		},
	)
	_, err := rs.Records()
	if !errors.Is(err, ErrNegativeEmissions) {
		t.Fatalf("expected ErrNegativeEmissions, got %v", err)
	}
}
