package services

import (
	"strings"
	"testing"

	"emissioni/internal/core"
)

func TestWriteSummary(t *testing.T) {
	rs := frame(
		[]string{"A", "travel", "10"},
		[]string{"B", "energy", "5"},
		[]string{"A", "energy", "7"},
	)
	summary, err := Aggregate(rs)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	var out strings.Builder
	if err := WriteSummary(&out, summary); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	got := out.String()
	for _, want := range []string{"BUSINESS", "A", "17.00", "B", "5.00", "TOTAL", "22.00"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestWriteSummaryEmpty(t *testing.T) {
	var out strings.Builder
	if err := WriteSummary(&out, core.Summary{}); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if !strings.Contains(out.String(), "0.00") {
		t.Fatalf("expected zero grand total line:\n%s", out.String())
	}
}
