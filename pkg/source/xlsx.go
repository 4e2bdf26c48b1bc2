package source

import (
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/draftline/draftline/pkg/errors"
	"github.com/draftline/draftline/pkg/schema"
)

// ReadXLSX ingests the first sheet of an XLSX workbook. The first row is the
// header; excelize returns cells as display strings, which is exactly what
// the field parser expects.
func ReadXLSX(path string) (*Table, schema.Result, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, schema.Result{}, errors.Wrap(errors.ErrCodeFileNotFound, err,
			"input file not found: %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, schema.Result{}, errors.Wrap(errors.ErrCodeInvalidFormat, err,
			"failed to open workbook %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, schema.Result{}, errors.New(errors.ErrCodeInvalidFormat,
			"%s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, schema.Result{}, errors.Wrap(errors.ErrCodeInvalidFormat, err,
			"failed to read sheet %q from %s", sheets[0], path)
	}
	if len(rows) == 0 {
		return nil, schema.Result{}, errors.New(errors.ErrCodeInvalidFormat,
			"%s is empty", path)
	}

	header := normalizeHeader(rows[0])
	result := checkHeader(header)
	return buildTable(path, header, rows[1:], 2), result, nil
}
