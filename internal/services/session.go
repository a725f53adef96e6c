package services

import (
	"fmt"

	"emissioni/internal/chart"
	"emissioni/internal/core"
	"emissioni/internal/ingest"
	applog "emissioni/internal/log"
)

// Session owns the pipeline state: the current record set and the summary
// derived from it. Operations replace state wholesale on success and leave
// it untouched on failure, so a failed call is always retryable.
type Session struct {
	log      *applog.Logger
	loader   *ingest.Loader
	renderer *chart.Renderer

	records *core.RecordSet
	summary core.Summary
}

// NewSession creates an empty session. Nothing is loaded until Load.
func NewSession(logger *applog.Logger, loader *ingest.Loader, renderer *chart.Renderer) *Session {
	return &Session{
		log:      logger.WithComponent(applog.ComponentSession),
		loader:   loader,
		renderer: renderer,
	}
}

// Load replaces the current record set with the contents of path. On
// failure any previously loaded records are preserved.
func (s *Session) Load(path string) error {
	rs, err := s.loader.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	s.records = rs
	return nil
}

// RecordSet returns the currently loaded records, nil before the first
// successful Load.
func (s *Session) RecordSet() *core.RecordSet {
	return s.records
}

// Aggregate derives a fresh summary from the current record set and retains
// it for Visualize. On failure the previously retained summary, if any, is
// left as it was.
func (s *Session) Aggregate() (core.Summary, error) {
	if s.records == nil {
		return nil, core.ErrNoRecords
	}
	summary, err := Aggregate(s.records)
	if err != nil {
		return nil, err
	}
	s.summary = summary
	s.log.Info("Aggregation complete",
		applog.FieldBusinesses, len(summary),
		applog.FieldTotal, core.FormatEmissions(summary.GrandTotal()))
	return summary, nil
}

// Summary returns the most recently computed summary, nil before the first
// successful Aggregate.
func (s *Session) Summary() core.Summary {
	return s.summary
}

// Visualize renders the most recently computed summary as a bar chart at
// path. An absent or empty summary is a reported failure, not a crash.
func (s *Session) Visualize(path string) error {
	if s.summary == nil {
		return core.ErrNoSummary
	}
	if len(s.summary) == 0 {
		return core.ErrEmptySummary
	}
	if err := s.renderer.Render(s.summary, path); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	s.log.Info("Chart written", applog.FieldPath, path)
	return nil
}
