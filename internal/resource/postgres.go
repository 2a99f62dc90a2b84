package resource

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/query"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/repository"
	"github.com/google/uuid"
)

type pgStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresStore creates a schema-driven Store backed by PostgreSQL.
// Field names map directly to column names; every resource table carries
// id, created_at, and updated_at system columns.
func NewPostgresStore(db *sql.DB, logger *slog.Logger) Store {
	return &pgStore{
		db:     db,
		logger: logger.With("system", "resource-store"),
	}
}

func (s *pgStore) Select(ctx context.Context, schema Schema) ([]Record, error) {
	qb := query.NewBuilder(projectionFor(schema), defaultSortFor(schema))

	sqlText, args := qb.Build()
	records, err := repository.QueryMany(ctx, s.db, sqlText, args, scanRecord(schema))
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", schema.Name, err)
	}

	return records, nil
}

func (s *pgStore) Insert(ctx context.Context, schema Schema, values map[string]any) (*Record, error) {
	cols := make([]string, len(schema.Fields))
	placeholders := make([]string, len(schema.Fields))
	args := make([]any, len(schema.Fields))

	for i, f := range schema.Fields {
		cols[i] = f.Name
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = argFor(f, values[f.Name])
	}

	q := fmt.Sprintf(
		"INSERT INTO public.%s (%s) VALUES (%s) RETURNING %s",
		schema.Table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		returningColumns(schema),
	)

	record, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (Record, error) {
		return repository.QueryOne(ctx, tx, q, args, scanRecord(schema))
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	s.logger.Info("record inserted", "resource", schema.Name, "id", record.ID)
	return &record, nil
}

func (s *pgStore) Update(ctx context.Context, schema Schema, id uuid.UUID, values map[string]any) (*Record, error) {
	assignments := make([]string, len(schema.Fields))
	args := make([]any, 0, len(schema.Fields)+1)

	for i, f := range schema.Fields {
		assignments[i] = fmt.Sprintf("%s = $%d", f.Name, i+1)
		args = append(args, argFor(f, values[f.Name]))
	}
	args = append(args, id)

	q := fmt.Sprintf(
		"UPDATE public.%s SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		schema.Table,
		strings.Join(assignments, ", "),
		len(schema.Fields)+1,
		returningColumns(schema),
	)

	record, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (Record, error) {
		return repository.QueryOne(ctx, tx, q, args, scanRecord(schema))
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	s.logger.Info("record updated", "resource", schema.Name, "id", record.ID)
	return &record, nil
}

func (s *pgStore) Delete(ctx context.Context, schema Schema, id uuid.UUID) error {
	q := fmt.Sprintf("DELETE FROM public.%s WHERE id = $1", schema.Table)

	if err := repository.ExecExpectOne(ctx, s.db, q, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	s.logger.Info("record deleted", "resource", schema.Name, "id", id)
	return nil
}

func projectionFor(schema Schema) *query.ProjectionMap {
	pm := query.NewProjectionMap("public", schema.Table, "r").
		Project("id", "id")

	for _, f := range schema.Fields {
		pm.Project(f.Name, f.Name)
	}

	return pm.
		Project("created_at", "created_at").
		Project("updated_at", "updated_at")
}

func defaultSortFor(schema Schema) query.SortField {
	if schema.OrderBy != "" {
		return query.SortField{Field: schema.OrderBy}
	}
	return query.SortField{Field: "id"}
}

func returningColumns(schema Schema) string {
	cols := make([]string, 0, len(schema.Fields)+3)
	cols = append(cols, "id")
	for _, f := range schema.Fields {
		cols = append(cols, f.Name)
	}
	cols = append(cols, "created_at", "updated_at")
	return strings.Join(cols, ", ")
}

// argFor converts a canonical field value into its driver representation.
func argFor(f Field, value any) any {
	if value == nil {
		return nil
	}

	if f.Type == TypeDate {
		if s, ok := value.(string); ok {
			if t, err := time.Parse(DateFormat, s); err == nil {
				return t
			}
			return nil
		}
	}

	return value
}

// scanRecord builds a row scanner for the schema. Scan targets are
// chosen per field type; SQL NULL surfaces as a nil field value.
func scanRecord(schema Schema) func(repository.Scanner) (Record, error) {
	return func(sc repository.Scanner) (Record, error) {
		var record Record

		holders := make([]any, len(schema.Fields))
		dests := make([]any, 0, len(schema.Fields)+3)
		dests = append(dests, &record.ID)

		for i, f := range schema.Fields {
			switch f.Type {
			case TypeInteger:
				holders[i] = new(sql.NullInt64)
			case TypeDecimal:
				holders[i] = new(sql.NullFloat64)
			case TypeBoolean:
				holders[i] = new(sql.NullBool)
			case TypeDate:
				holders[i] = new(sql.NullTime)
			default:
				holders[i] = new(sql.NullString)
			}
			dests = append(dests, holders[i])
		}

		dests = append(dests, &record.CreatedAt, &record.UpdatedAt)

		if err := sc.Scan(dests...); err != nil {
			return record, err
		}

		record.Values = make(map[string]any, len(schema.Fields))
		for i, f := range schema.Fields {
			record.Values[f.Name] = holderValue(holders[i])
		}

		return record, nil
	}
}

func holderValue(holder any) any {
	switch h := holder.(type) {
	case *sql.NullInt64:
		if h.Valid {
			return h.Int64
		}
	case *sql.NullFloat64:
		if h.Valid {
			return h.Float64
		}
	case *sql.NullBool:
		if h.Valid {
			return h.Bool
		}
	case *sql.NullTime:
		if h.Valid {
			return h.Time.Format(DateFormat)
		}
	case *sql.NullString:
		if h.Valid {
			return h.String
		}
	}
	return nil
}
