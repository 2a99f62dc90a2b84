package resource

import "github.com/google/uuid"

// Draft is the in-progress create or edit state of a form: the values
// currently bound to inputs plus an optional reference to the record
// being edited. A nil EditingID means the draft creates a new record.
type Draft struct {
	Values    map[string]any `json:"values"`
	EditingID *uuid.UUID     `json:"editing_id,omitempty"`
}

// Set assigns a field value on the draft. Values outside the schema's
// field set are dropped at submit time, keeping the draft's field set a
// subset of the schema's.
func (d *Draft) Set(field string, value any) {
	d.Values[field] = value
}

// Editing reports whether the draft targets an existing record.
func (d *Draft) Editing() bool {
	return d.EditingID != nil
}

// NewCreateDraft builds a draft with every field set to its
// schema-declared default. The draft belongs to the caller; submit it
// through Manager.SubmitDraft.
func NewCreateDraft(schema Schema) *Draft {
	values := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		values[f.Name] = f.DefaultValue()
	}
	return &Draft{Values: values}
}

// NewEditDraft builds a caller-owned draft populated from the record's
// current values.
func NewEditDraft(schema Schema, record Record) *Draft {
	values := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		if v, ok := record.Values[f.Name]; ok {
			values[f.Name] = v
		} else {
			values[f.Name] = f.DefaultValue()
		}
	}
	id := record.ID
	return &Draft{Values: values, EditingID: &id}
}
