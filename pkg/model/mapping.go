// pkg/model/mapping.go
package model

// Field identifies a logical address field that a dataset column can map to.
type Field string

const (
	FieldStreet Field = "street"
	FieldUnit   Field = "unit"
	FieldCity   Field = "city"
	FieldState  Field = "state"
	FieldZip    Field = "zip"
)

// RequiredFields returns the logical fields that must be mapped before
// matching can run. Unit is deliberately absent: many mail exports carry no
// unit column at all, and that is a normal state rather than an error.
func RequiredFields() []Field {
	return []Field{FieldStreet, FieldCity, FieldState, FieldZip}
}

// AllFields returns every logical field, required and optional.
func AllFields() []Field {
	return []Field{FieldStreet, FieldUnit, FieldCity, FieldState, FieldZip}
}

// ColumnMapping maps logical fields to source column names for one dataset.
// It is produced by column detection and confirmed (or overridden) by the
// user before matching proceeds.
type ColumnMapping map[Field]string

// Column returns the mapped source column for a field.
func (m ColumnMapping) Column(field Field) (string, bool) {
	if m == nil {
		return "", false
	}
	column, ok := m[field]
	if !ok || column == "" {
		return "", false
	}
	return column, true
}

// Missing returns the required fields that have no mapped column, in the
// canonical field order.
func (m ColumnMapping) Missing() []Field {
	var missing []Field
	for _, field := range RequiredFields() {
		if _, ok := m.Column(field); !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

// Complete reports whether every required field has a mapped column.
func (m ColumnMapping) Complete() bool {
	return len(m.Missing()) == 0
}
