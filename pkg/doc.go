// Package pkg provides the core libraries for Draftline millwork layout
// generation.
//
// # Overview
//
// Draftline turns tabular room specifications into validated, positioned
// casework layouts ready for shop-drawing production. The pkg directory is
// organized into four main areas:
//
//  1. Domain logic (schema, validate, layout, geometry, config)
//  2. Infrastructure (cache, observability, errors, buildinfo)
//  3. Ingestion and output (source, report)
//  4. Orchestration (pipeline)
//
// # Architecture
//
// The typical data flow through Draftline:
//
//	CSV / TSV / XLSX room table
//	         ↓
//	    [source] package (ingest raw rows, check the header)
//	         ↓
//	    [schema] package (parse cells into typed rooms + findings)
//	         ↓
//	    [validate] package (geometric + referential checks, verdicts)
//	         ↓
//	    [layout] package (positioned modules, fillers, countertop, ADA boxes)
//	         ↓
//	    layout JSON / findings report
//
// # Quick Start
//
// Validate a batch and compute layouts:
//
//	import (
//	    "context"
//	    "github.com/draftline/draftline/pkg/cache"
//	    "github.com/draftline/draftline/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Input: "rooms.csv",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, l := range result.Layouts {
//	    layout.WriteFile(l, l.RoomID+".layout.json")
//	}
//
// # Main Packages
//
// [schema] - The room-specification schema: field definitions with
// constraints, the typed Room record, and the pure field parser that turns
// raw cells into typed values and findings.
//
// [validate] - Post-parse checks: geometric consistency (module widths plus
// fillers vs total length, counter heights vs the accessible range),
// referential integrity against configured catalogs, and batch processing
// with per-row verdicts.
//
// [layout] - The layout engine: positions modules left to right, closes the
// run with fillers, spans the countertop, and places the ADA knee/toe
// clearance envelopes declared by the accessibility profile.
//
// [geometry] - Rectangles, unions, tolerance comparisons, and the clearance
// callout grammar (`27" H x 30" W x 17" D`).
//
// [config] - Engine configuration with TOML overrides: standard dimensions,
// accessibility parameters, tolerances, and reference catalogs.
//
// [source] - Tabular ingestion for CSV, TSV, and XLSX inputs.
//
// [report] - Findings and summary JSON artifacts for batch runs.
//
// [pipeline] - The complete ingest → parse → validate → layout pipeline
// shared by CLI and API, with layout caching.
//
// [cache] - Layout caching backends: file (CLI), Redis (API), null (tests).
//
// [observability] - Optional instrumentation hooks with no-op defaults.
//
// [errors] - Structured errors with machine-readable codes.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/layout/... # Specific package
//
// [schema]: https://pkg.go.dev/github.com/draftline/draftline/pkg/schema
// [validate]: https://pkg.go.dev/github.com/draftline/draftline/pkg/validate
// [layout]: https://pkg.go.dev/github.com/draftline/draftline/pkg/layout
// [geometry]: https://pkg.go.dev/github.com/draftline/draftline/pkg/geometry
// [config]: https://pkg.go.dev/github.com/draftline/draftline/pkg/config
// [source]: https://pkg.go.dev/github.com/draftline/draftline/pkg/source
// [report]: https://pkg.go.dev/github.com/draftline/draftline/pkg/report
// [pipeline]: https://pkg.go.dev/github.com/draftline/draftline/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/draftline/draftline/pkg/cache
// [observability]: https://pkg.go.dev/github.com/draftline/draftline/pkg/observability
// [errors]: https://pkg.go.dev/github.com/draftline/draftline/pkg/errors
package pkg
