// Package extract turns the raw OCR transcript of a scanned registration form
// into the student's field values and subject enrollments. Nothing here is
// persisted: the result goes back to an operator for correction first.
package extract

import "strings"

// Result is the pending-review output of one extraction run.
// Missing is non-empty when the scan didn't yield every required field;
// the partial Fields map is still returned so the operator can fill the rest.
type Result struct {
	Text     string       `json:"extracted_text"`
	Fields   Fields       `json:"fields"`
	Missing  []string     `json:"missing,omitempty"`
	Subjects []SubjectRow `json:"subjects"`
}

// Complete reports whether every required label was recovered.
func (r *Result) Complete() bool { return len(r.Missing) == 0 }

// Run executes the extraction pipeline over per-page OCR text.
// Field matching works on the flattened, normalized text; the subject table
// is searched in the raw text because its rows depend on line breaks.
func Run(pages []string) *Result {
	raw := strings.Join(pages, "\n")
	text := Normalize(pages)
	fields, missing := ExtractFields(text)

	return &Result{
		Text:     text,
		Fields:   fields,
		Missing:  missing,
		Subjects: ParseSubjectTable(raw),
	}
}
