// Package ingest reads delimited emission exports into record sets.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"emissioni/internal/core"
	applog "emissioni/internal/log"
)

// Loader parses comma-delimited files with a header row.
type Loader struct {
	log *applog.Logger
}

// NewLoader creates a loader logging under the ingest component.
func NewLoader(logger *applog.Logger) *Loader {
	return &Loader{log: logger.WithComponent(applog.ComponentIngest)}
}

// Load reads the file at path into a RecordSet, rows in file order. The
// expected columns are Business, Activity and Emissions, but presence is
// not checked here; the aggregator validates columns when it extracts typed
// records. Ragged rows are a parse fault.
func (l *Loader) Load(path string) (*core.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, core.ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	rs := core.NewRecordSet(header, rows)
	l.log.Info("Input file loaded", applog.FieldPath, path, applog.FieldRows, rs.Len())
	return rs, nil
}
