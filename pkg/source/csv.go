package source

import (
	"bufio"
	"encoding/csv"
	"os"
	"strings"

	"github.com/draftline/draftline/pkg/errors"
	"github.com/draftline/draftline/pkg/schema"
)

// ReadCSV ingests a delimiter-separated file. The delimiter is sniffed from
// the header line: a tab wins over a comma, so exports from spreadsheet
// tools work without flags.
func ReadCSV(path string) (*Table, schema.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, schema.Result{}, errors.Wrap(errors.ErrCodeFileNotFound, err,
				"input file not found: %s", path)
		}
		return nil, schema.Result{}, errors.Wrap(errors.ErrCodeInvalidInput, err,
			"failed to open %s", path)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	delim, err := sniffDelimiter(br)
	if err != nil {
		return nil, schema.Result{}, errors.Wrap(errors.ErrCodeInvalidFormat, err,
			"failed to read header from %s", path)
	}

	r := csv.NewReader(br)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, schema.Result{}, errors.Wrap(errors.ErrCodeInvalidFormat, err,
			"failed to parse %s", path)
	}
	if len(records) == 0 {
		return nil, schema.Result{}, errors.New(errors.ErrCodeInvalidFormat,
			"%s is empty", path)
	}

	header := normalizeHeader(records[0])
	result := checkHeader(header)
	return buildTable(path, header, records[1:], 2), result, nil
}

// sniffDelimiter peeks at the first line without consuming it. Tab beats
// comma; comma is the fallback.
func sniffDelimiter(br *bufio.Reader) (rune, error) {
	const peekSize = 4096
	buf, err := br.Peek(peekSize)
	if err != nil && len(buf) == 0 {
		return 0, err
	}
	line := string(buf)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.ContainsRune(line, '\t') {
		return '\t', nil
	}
	return ',', nil
}
