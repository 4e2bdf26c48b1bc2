package schema

import "fmt"

// Severity classifies a validation finding.
type Severity string

// Finding severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single validation outcome tied to a specific field, value,
// and source row. Findings never propagate as Go errors past the record
// boundary; they accumulate in a Result.
type Finding struct {
	Severity Severity `json:"severity"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Value    any      `json:"value,omitempty"`
	Row      int      `json:"row,omitempty"`
}

// String formats the finding for logs and CLI output.
func (f Finding) String() string {
	if f.Row > 0 {
		return fmt.Sprintf("[%s] row %d, %s: %s", f.Severity, f.Row, f.Field, f.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Field, f.Message)
}

// Result collects the findings for one record (or one file-level check).
// The zero value is ready to use.
type Result struct {
	Findings []Finding `json:"findings,omitempty"`
}

// AddError appends an error-severity finding.
func (r *Result) AddError(field, message string, value any, row int) {
	r.Findings = append(r.Findings, Finding{
		Severity: SeverityError,
		Field:    field,
		Message:  message,
		Value:    value,
		Row:      row,
	})
}

// AddWarning appends a warning-severity finding.
func (r *Result) AddWarning(field, message string, value any, row int) {
	r.Findings = append(r.Findings, Finding{
		Severity: SeverityWarning,
		Field:    field,
		Message:  message,
		Value:    value,
		Row:      row,
	})
}

// Add appends an existing finding.
func (r *Result) Add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// Merge appends all findings from other, preserving order.
func (r *Result) Merge(other Result) {
	r.Findings = append(r.Findings, other.Findings...)
}

// Passed reports whether the result contains no error-severity findings.
// Warnings never fail a result.
func (r *Result) Passed() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Errors returns the error-severity findings.
func (r *Result) Errors() []Finding {
	return r.bySeverity(SeverityError)
}

// Warnings returns the warning-severity findings.
func (r *Result) Warnings() []Finding {
	return r.bySeverity(SeverityWarning)
}

func (r *Result) bySeverity(s Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

// Elevate returns a copy of the result with all warnings raised to errors.
// Used by strict mode, where warnings block layout.
func (r *Result) Elevate() Result {
	out := Result{Findings: make([]Finding, len(r.Findings))}
	for i, f := range r.Findings {
		if f.Severity == SeverityWarning {
			f.Severity = SeverityError
		}
		out.Findings[i] = f
	}
	return out
}
