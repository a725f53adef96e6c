package chart

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"emissioni/internal/core"
	applog "emissioni/internal/log"
)

func newTestRenderer() *Renderer {
	return NewRenderer(applog.New(slog.LevelError, applog.ComponentChart), 6, 4)
}

func testSummary() core.Summary {
	return core.Summary{
		{Business: "Acme Logistics", Total: decimal.NewFromInt(185), Count: 2},
		{Business: "Borealis Foods", Total: decimal.NewFromInt(100), Count: 2},
		{Business: "Cobalt Works", Total: decimal.NewFromInt(25), Count: 1},
	}
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := newTestRenderer().Render(testSummary(), path); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("chart file is empty")
	}
}

func TestRenderCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "chart.png")
	if err := newTestRenderer().Render(testSummary(), path); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("chart file: %v", err)
	}
}

func TestRenderEmptySummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	err := newTestRenderer().Render(core.Summary{}, path)
	if !errors.Is(err, core.ErrEmptySummary) {
		t.Fatalf("expected ErrEmptySummary, got %v", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("empty summary must not produce a file")
	}
}
