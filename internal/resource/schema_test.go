package resource_test

import (
	"testing"
	"time"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/resource"
)

func TestSchema_Validate(t *testing.T) {
	valid := resource.Schema{
		Name:  "umkm",
		Table: "umkm",
		Fields: []resource.Field{
			{Name: "name", Type: resource.TypeText},
			{Name: "category", Type: resource.TypeEnum, Choices: []string{"Kuliner"}},
		},
	}

	tests := []struct {
		name    string
		mutate  func(s *resource.Schema)
		wantErr bool
	}{
		{"valid schema", func(s *resource.Schema) {}, false},
		{"missing name", func(s *resource.Schema) { s.Name = "" }, true},
		{"missing table", func(s *resource.Schema) { s.Table = "" }, true},
		{"no fields", func(s *resource.Schema) { s.Fields = nil }, true},
		{"duplicate field", func(s *resource.Schema) {
			s.Fields = append(s.Fields, resource.Field{Name: "name", Type: resource.TypeText})
		}, true},
		{"enum without choices", func(s *resource.Schema) {
			s.Fields[1].Choices = nil
		}, true},
		{"unknown type", func(s *resource.Schema) {
			s.Fields[0].Type = "blob"
		}, true},
		{"order_by unknown field", func(s *resource.Schema) {
			s.OrderBy = "missing"
		}, true},
		{"order_by known field", func(s *resource.Schema) {
			s.OrderBy = "name"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			s.Fields = append([]resource.Field(nil), valid.Fields...)
			tt.mutate(&s)

			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestField_DefaultValue(t *testing.T) {
	today := time.Now().Format(resource.DateFormat)

	tests := []struct {
		name  string
		field resource.Field
		want  any
	}{
		{"text", resource.Field{Type: resource.TypeText}, ""},
		{"long text", resource.Field{Type: resource.TypeLongText}, ""},
		{"integer", resource.Field{Type: resource.TypeInteger}, int64(0)},
		{"decimal", resource.Field{Type: resource.TypeDecimal}, float64(0)},
		{"boolean", resource.Field{Type: resource.TypeBoolean}, false},
		{"date", resource.Field{Type: resource.TypeDate}, today},
		{"declared default wins", resource.Field{Type: resource.TypeBoolean, Default: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.DefaultValue(); got != tt.want {
				t.Errorf("DefaultValue() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestField_Coerce(t *testing.T) {
	tests := []struct {
		name  string
		field resource.Field
		value any
		want  any
	}{
		{"integer from string", resource.Field{Type: resource.TypeInteger}, "42", int64(42)},
		{"integer from float", resource.Field{Type: resource.TypeInteger}, 42.0, int64(42)},
		{"integer garbage falls back to zero", resource.Field{Type: resource.TypeInteger}, "abc", int64(0)},
		{"integer garbage falls back to default", resource.Field{Type: resource.TypeInteger, Default: int64(7)}, "abc", int64(7)},
		{"decimal from string", resource.Field{Type: resource.TypeDecimal}, "3.5", 3.5},
		{"decimal garbage falls back", resource.Field{Type: resource.TypeDecimal, Default: 1.5}, "x", 1.5},
		{"boolean from string", resource.Field{Type: resource.TypeBoolean}, "true", true},
		{"boolean garbage is false", resource.Field{Type: resource.TypeBoolean}, "maybe", false},
		{"date passthrough", resource.Field{Type: resource.TypeDate}, "2026-01-15", "2026-01-15"},
		{"date from rfc3339", resource.Field{Type: resource.TypeDate}, "2026-01-15T10:30:00Z", "2026-01-15"},
		{"text from number", resource.Field{Type: resource.TypeText}, 12, "12"},
		{"text nil becomes empty", resource.Field{Type: resource.TypeText}, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.Coerce(tt.value); got != tt.want {
				t.Errorf("Coerce(%v) = %v (%T), want %v (%T)", tt.value, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestSchema_SearchFields(t *testing.T) {
	tests := []struct {
		name   string
		schema resource.Schema
		want   []string
	}{
		{
			name: "marked fields only",
			schema: resource.Schema{Fields: []resource.Field{
				{Name: "title", Type: resource.TypeText, Searchable: true},
				{Name: "content", Type: resource.TypeLongText},
			}},
			want: []string{"title"},
		},
		{
			name: "fallback to text-like fields",
			schema: resource.Schema{Fields: []resource.Field{
				{Name: "title", Type: resource.TypeText},
				{Name: "category", Type: resource.TypeEnum, Choices: []string{"a"}},
				{Name: "year", Type: resource.TypeInteger},
			}},
			want: []string{"title", "category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.schema.SearchFields()
			if len(got) != len(tt.want) {
				t.Fatalf("SearchFields() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SearchFields()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
