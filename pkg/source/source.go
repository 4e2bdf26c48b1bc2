// Package source ingests tabular room specifications from CSV and XLSX
// files into raw string tables. It checks the header against the room schema
// but leaves cell parsing to the schema package, so the same downstream path
// handles every input format.
package source

import (
	"path/filepath"
	"strings"

	"github.com/draftline/draftline/pkg/errors"
	"github.com/draftline/draftline/pkg/schema"
)

// Row is one raw data row, keyed by header name. Number is the 1-based
// position in the source file, so with a header in row 1 the first data row
// is 2. Findings reference it directly.
type Row struct {
	Number int
	Values map[string]string
}

// Table is a raw ingested file.
type Table struct {
	File   string
	Header []string
	Rows   []Row
}

// Read ingests a file, dispatching on its extension. The returned Result
// carries header findings: a missing required column is an error, an
// unrecognized column a warning. Row-level problems are left to the parser.
func Read(path string) (*Table, schema.Result, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".tsv", ".txt":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, schema.Result{}, errors.New(errors.ErrCodeUnsupported,
			"unsupported input format %q (expected .csv, .tsv, or .xlsx)", ext)
	}
}

// checkHeader validates column names against the room schema.
func checkHeader(header []string) schema.Result {
	var result schema.Result
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
		if !schema.Rooms().Has(name) {
			result.AddWarning(name, "unrecognized column, values will be ignored", nil, 1)
		}
	}
	for _, name := range schema.Rooms().RequiredFields() {
		if !present[name] {
			result.AddError(name, "required column is missing from the header", nil, 1)
		}
	}
	return result
}

// buildTable assembles a Table from a header and raw cell rows, dropping
// rows that are entirely blank. firstDataRow is the file row number of the
// first data row.
func buildTable(file string, header []string, records [][]string, firstDataRow int) *Table {
	t := &Table{File: file, Header: header}
	for i, record := range records {
		values := make(map[string]string, len(header))
		blank := true
		for j, name := range header {
			if j >= len(record) {
				break
			}
			cell := strings.TrimSpace(record[j])
			values[name] = cell
			if cell != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		t.Rows = append(t.Rows, Row{Number: firstDataRow + i, Values: values})
	}
	return t
}

func normalizeHeader(raw []string) []string {
	header := make([]string, len(raw))
	for i, name := range raw {
		header[i] = strings.ToLower(strings.TrimSpace(name))
	}
	return header
}
