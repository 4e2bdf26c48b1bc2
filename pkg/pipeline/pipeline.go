// Package pipeline provides the core ingest → parse → validate → layout
// pipeline.
//
// This package implements the complete processing path that can be used by
// CLI and API components. By centralizing this logic, we ensure consistent
// behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Ingest: Read the tabular input (CSV, TSV, XLSX) into raw rows
//  2. Parse: Convert raw cells into typed rooms with per-field findings
//  3. Validate: Run geometric and referential checks, produce verdicts
//  4. Layout: Compute positioned geometry for every accepted room
//
// Layout results are cached by (config hash, room hash), so re-running a
// batch after editing one row only recomputes that row's room.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:  "rooms.csv",
//	    Strict: true,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, l := range result.Layouts {
//	    ...
//	}
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/draftline/draftline/pkg/config"
	"github.com/draftline/draftline/pkg/errors"
	"github.com/draftline/draftline/pkg/layout"
	"github.com/draftline/draftline/pkg/schema"
	"github.com/draftline/draftline/pkg/validate"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input is the path of the file to ingest. Leave empty when Rows are
	// supplied directly (API requests).
	Input string `json:"input,omitempty"`

	// Rows is in-memory input: raw cell values keyed by column name, one
	// map per room. Used instead of Input.
	Rows []map[string]string `json:"rows,omitempty"`

	// Strict elevates warnings to errors before the accept/reject verdict.
	Strict bool `json:"strict,omitempty"`

	// Refresh bypasses the layout cache and overwrites it with fresh results.
	Refresh bool `json:"refresh,omitempty"`

	// ConfigPath is an optional TOML file layered over the built-in defaults.
	ConfigPath string `json:"config_path,omitempty"`

	// Runtime options (not serialized)
	Config        *config.Config  `json:"-"`
	Logger        *log.Logger     `json:"-"`
	EngineOptions []layout.Option `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Input == "" && len(o.Rows) == 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"either an input file or inline rows are required")
	}
	if o.Input != "" && len(o.Rows) > 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"an input file and inline rows are mutually exclusive")
	}

	if o.Config == nil {
		if o.ConfigPath != "" {
			cfg, err := config.LoadFile(o.ConfigPath)
			if err != nil {
				return err
			}
			o.Config = cfg
		} else {
			o.Config = config.Default()
		}
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// =============================================================================
// Result - Pipeline Outputs
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Header carries file-level findings from ingestion (unknown columns).
	Header schema.Result

	// Batch is the full validation outcome, one verdict per row.
	Batch validate.BatchResult

	// Layouts are the computed layouts for accepted rooms, in input order.
	Layouts []*layout.Layout

	// ConfigHash fingerprints the configuration the run used.
	ConfigHash string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks layout cache effectiveness.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RowCount     int
	IngestTime   time.Duration
	ValidateTime time.Duration
	LayoutTime   time.Duration
}

// CacheInfo tracks cache hits for the layout stage.
type CacheInfo struct {
	LayoutHits   int
	LayoutMisses int
}
