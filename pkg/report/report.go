// Package report writes batch validation artifacts to disk: one findings
// file per room that produced findings, plus a batch summary. Artifacts are
// pretty-printed JSON so they diff cleanly under version control.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/draftline/draftline/pkg/errors"
	"github.com/draftline/draftline/pkg/validate"
)

// SummaryFile is the name of the batch summary artifact.
const SummaryFile = "summary.json"

// Writer emits report artifacts into a directory, creating it on first use.
type Writer struct {
	Dir string
}

// WriteBatch writes the findings files and the summary for one batch run.
// It returns the paths written, summary last.
func (w *Writer) WriteBatch(batch *validate.BatchResult) ([]string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"failed to create report directory %s", w.Dir)
	}

	var paths []string
	for _, outcome := range batch.Outcomes {
		if len(outcome.Result.Findings) == 0 {
			continue
		}
		path := filepath.Join(w.Dir, findingsFileName(outcome))
		if err := writeJSON(path, outcome); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	path := filepath.Join(w.Dir, SummaryFile)
	if err := writeJSON(path, batch.Summary); err != nil {
		return paths, err
	}
	return append(paths, path), nil
}

// findingsFileName names a findings artifact after the room, falling back to
// the row position when the room never got a usable ID.
func findingsFileName(outcome validate.Outcome) string {
	if outcome.Room.RoomID != "" {
		return outcome.Room.RoomID + ".findings.json"
	}
	return fmt.Sprintf("row-%d.findings.json", outcome.Room.RowNumber)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err,
			"failed to encode %s", path)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err,
			"failed to write %s", path)
	}
	return nil
}
