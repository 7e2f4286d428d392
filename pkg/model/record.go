// pkg/model/record.go
package model

// Dataset names used throughout the pipeline. The mail-delivery history log
// is always matched against the CRM contact export, never the reverse.
const (
	DatasetMail = "mail"
	DatasetCRM  = "crm"
)

// Dataset is an in-memory tabular dataset: one header row plus string-valued
// data rows, as read from an uploaded CSV. Nothing about it is persisted.
type Dataset struct {
	Name    string
	Headers []string
	Rows    []RawRecord
}

// RawRecord is a single data row. Index is the zero-based position of the row
// in its source file, used both for audit output and as the deterministic
// tie-breaker during match selection. Values are keyed by header name and are
// treated as immutable once read.
type RawRecord struct {
	Index  int
	Values map[string]string
}

// Get returns the raw cell value for a column, or "" if the column is absent.
func (r RawRecord) Get(column string) string {
	if r.Values == nil {
		return ""
	}
	return r.Values[column]
}

// Field returns the raw cell value for a logical field via the mapping, or ""
// when the field is unmapped.
func (r RawRecord) Field(mapping ColumnMapping, field Field) string {
	column, ok := mapping.Column(field)
	if !ok {
		return ""
	}
	return r.Get(column)
}
