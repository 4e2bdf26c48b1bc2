package validate

import (
	"fmt"

	"github.com/draftline/draftline/pkg/config"
	"github.com/draftline/draftline/pkg/schema"
)

// ParsedRow pairs a parsed room with its parse findings, as produced by the
// ingestion layer for one input row.
type ParsedRow struct {
	Room   schema.Room
	Result schema.Result
}

// Outcome is the final validation verdict for one room.
type Outcome struct {
	Room     schema.Room   `json:"room"`
	Result   schema.Result `json:"result"`
	Accepted bool          `json:"accepted"`
}

// Summary aggregates a batch run.
type Summary struct {
	Total       int            `json:"total"`
	Accepted    int            `json:"accepted"`
	Rejected    int            `json:"rejected"`
	SuccessRate float64        `json:"success_rate"`
	// ErrorsByField counts error findings per field across the batch.
	ErrorsByField map[string]int `json:"errors_by_field,omitempty"`
}

// BatchResult is the full output of a batch validation pass.
type BatchResult struct {
	Outcomes []Outcome `json:"outcomes"`
	Summary  Summary   `json:"summary"`
}

// Accepted returns the rooms that passed validation, in input order.
func (b *BatchResult) Accepted() []schema.Room {
	var rooms []schema.Room
	for _, o := range b.Outcomes {
		if o.Accepted {
			rooms = append(rooms, o.Room)
		}
	}
	return rooms
}

// Reject demotes a previously accepted outcome to rejected, recording the
// finding and updating the summary. Later pipeline stages use this for
// failures scoped to one room, so the room lands in the report instead of
// sinking the whole run.
func (b *BatchResult) Reject(roomID, field, message string) {
	for i := range b.Outcomes {
		o := &b.Outcomes[i]
		if o.Room.RoomID != roomID || !o.Accepted {
			continue
		}
		o.Result.AddError(field, message, nil, o.Room.RowNumber)
		o.Accepted = false
		b.Summary.Accepted--
		b.Summary.Rejected++
		if b.Summary.ErrorsByField == nil {
			b.Summary.ErrorsByField = make(map[string]int)
		}
		b.Summary.ErrorsByField[field]++
		if b.Summary.Total > 0 {
			b.Summary.SuccessRate = float64(b.Summary.Accepted) / float64(b.Summary.Total)
		}
		return
	}
}

// Batch validates a slice of parsed rows against the configuration. Rows are
// processed in order; each gets a verdict and one bad row never blocks the
// rest. Duplicate room IDs within the batch are rejected (first occurrence
// wins). Strict mode elevates warnings to errors before the verdict.
//
// The duplicate set is local to this call, so repeated Batch invocations are
// independent and the function stays safe for concurrent use.
func Batch(rows []ParsedRow, cfg *config.Config, strict bool) BatchResult {
	result := BatchResult{
		Outcomes: make([]Outcome, 0, len(rows)),
		Summary: Summary{
			Total:         len(rows),
			ErrorsByField: make(map[string]int),
		},
	}

	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		merged := schema.Result{}
		merged.Merge(row.Result)

		// Validation checks need a structurally sound room; a row with
		// parse errors is rejected on those alone. A duplicate ID rejects
		// the row but the record checks still run, so the report lists
		// every problem the row has.
		if row.Result.Passed() {
			if _, dup := seen[row.Room.RoomID]; dup {
				merged.AddError(schema.FieldRoomID,
					fmt.Sprintf("duplicate room_id %q in batch", row.Room.RoomID),
					row.Room.RoomID, row.Room.RowNumber)
			} else {
				seen[row.Room.RoomID] = struct{}{}
			}
			merged.Merge(Record(&row.Room, cfg))
		}

		if strict {
			merged = merged.Elevate()
		}

		accepted := merged.Passed()
		if accepted {
			result.Summary.Accepted++
		} else {
			result.Summary.Rejected++
			for _, f := range merged.Errors() {
				result.Summary.ErrorsByField[f.Field]++
			}
		}
		result.Outcomes = append(result.Outcomes, Outcome{
			Room:     row.Room,
			Result:   merged,
			Accepted: accepted,
		})
	}

	if result.Summary.Total > 0 {
		result.Summary.SuccessRate = float64(result.Summary.Accepted) / float64(result.Summary.Total)
	}
	return result
}
