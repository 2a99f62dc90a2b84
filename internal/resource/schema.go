// Package resource provides the generic resource engine that drives every
// content screen of the portal: a schema declaration consumed by one
// manager implementation handling list loading, drafts, validation, and
// persistence, instead of one hand-written controller per table.
package resource

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FieldType is the semantic type of a schema field.
type FieldType string

// Field type constants.
const (
	TypeText     FieldType = "text"
	TypeLongText FieldType = "long-text"
	TypeInteger  FieldType = "integer"
	TypeDecimal  FieldType = "decimal"
	TypeDate     FieldType = "date"
	TypeBoolean  FieldType = "boolean"
	TypeEnum     FieldType = "enum"
	TypeImage    FieldType = "image"
)

// DateFormat is the wire format for date field values.
const DateFormat = "2006-01-02"

// Field describes one column of a resource: its name, semantic type,
// whether it must be present on save, and optional extras per type.
type Field struct {
	Name       string    `json:"name"`
	Type       FieldType `json:"type"`
	Required   bool      `json:"required"`
	Searchable bool      `json:"searchable,omitempty"`
	Choices    []string  `json:"choices,omitempty"`
	Default    any       `json:"default,omitempty"`
}

// Schema declares a resource: a named persistence collection plus an
// ordered list of fields. Schemas are defined once at composition time
// and treated as immutable afterward.
type Schema struct {
	Name    string  `json:"name"`
	Table   string  `json:"table"`
	Fields  []Field `json:"fields"`
	OrderBy string  `json:"order_by,omitempty"`
}

// Validate checks structural soundness of the schema declaration.
func (s Schema) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("schema name required")
	}
	if s.Table == "" {
		return fmt.Errorf("schema %s: table required", s.Name)
	}
	if len(s.Fields) == 0 {
		return fmt.Errorf("schema %s: at least one field required", s.Name)
	}

	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("schema %s: field name required", s.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("schema %s: duplicate field %s", s.Name, f.Name)
		}
		seen[f.Name] = true

		switch f.Type {
		case TypeText, TypeLongText, TypeInteger, TypeDecimal, TypeDate, TypeBoolean, TypeImage:
		case TypeEnum:
			if len(f.Choices) == 0 {
				return fmt.Errorf("schema %s: enum field %s requires choices", s.Name, f.Name)
			}
		default:
			return fmt.Errorf("schema %s: field %s has unknown type %q", s.Name, f.Name, f.Type)
		}
	}

	if s.OrderBy != "" && !seen[s.OrderBy] {
		return fmt.Errorf("schema %s: order_by references unknown field %s", s.Name, s.OrderBy)
	}

	return nil
}

// Field returns the declared field with the given name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldNames returns all field names in declaration order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// SearchFields returns the names of fields marked searchable. When no
// field is marked, every text-like field participates in search.
func (s Schema) SearchFields() []string {
	fields := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Searchable {
			fields = append(fields, f.Name)
		}
	}
	if len(fields) > 0 {
		return fields
	}

	for _, f := range s.Fields {
		switch f.Type {
		case TypeText, TypeLongText, TypeEnum:
			fields = append(fields, f.Name)
		}
	}
	return fields
}

// DefaultValue returns the value a fresh draft carries for the field:
// the declared default when set, otherwise the per-type zero (empty
// string, zero, false, or the current date).
func (f Field) DefaultValue() any {
	if f.Default != nil {
		return f.Default
	}

	switch f.Type {
	case TypeInteger:
		return int64(0)
	case TypeDecimal:
		return float64(0)
	case TypeBoolean:
		return false
	case TypeDate:
		return time.Now().Format(DateFormat)
	default:
		return ""
	}
}

// Coerce converts a raw draft value into the field's canonical Go
// representation. Numeric values that fail to parse fall back to the
// field default rather than erroring; the admin screens have always
// treated malformed numeric input this way.
func (f Field) Coerce(value any) any {
	switch f.Type {
	case TypeInteger:
		return coerceInteger(value, f)
	case TypeDecimal:
		return coerceDecimal(value, f)
	case TypeBoolean:
		return coerceBoolean(value)
	case TypeDate:
		return coerceDate(value, f)
	default:
		return coerceString(value)
	}
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func coerceInteger(value any, f Field) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n
		}
	}
	if d, ok := f.Default.(int64); ok {
		return d
	}
	if d, ok := f.Default.(int); ok {
		return int64(d)
	}
	return 0
}

func coerceDecimal(value any, f Field) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return n
		}
	}
	if d, ok := f.Default.(float64); ok {
		return d
	}
	return 0
}

func coerceBoolean(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

func coerceDate(value any, f Field) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format(DateFormat)
	case string:
		if _, err := time.Parse(DateFormat, v); err == nil {
			return v
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t.Format(DateFormat)
		}
	}
	if d, ok := f.Default.(string); ok && d != "" {
		return d
	}
	return time.Now().Format(DateFormat)
}
