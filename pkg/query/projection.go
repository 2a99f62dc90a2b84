// Package query provides a fluent SQL builder with field-to-column projection
// and automatic parameter numbering for PostgreSQL.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps logical field names to table columns for one table.
// Fields are projected in declaration order, which determines scan order.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	order   []string
	columns map[string]string
}

// NewProjectionMap creates a projection for the given schema-qualified table.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		order:   make([]string, 0),
		columns: make(map[string]string),
	}
}

// Project registers a column under a logical field name. Chainable.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	if _, exists := p.columns[field]; !exists {
		p.order = append(p.order, field)
	}
	p.columns[field] = column
	return p
}

// Table returns the aliased FROM clause target.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column returns the alias-qualified column for a field, or an empty
// string when the field is not projected. Callers must treat an empty
// result as an unknown field rather than interpolating it.
func (p *ProjectionMap) Column(field string) string {
	col, ok := p.columns[field]
	if !ok {
		return ""
	}
	return p.alias + "." + col
}

// Columns returns the comma-separated select list in projection order.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.order))
	for i, field := range p.order {
		cols[i] = p.Column(field)
	}
	return strings.Join(cols, ", ")
}

// Fields returns the projected field names in declaration order.
func (p *ProjectionMap) Fields() []string {
	fields := make([]string, len(p.order))
	copy(fields, p.order)
	return fields
}
